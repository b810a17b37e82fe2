package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path"

	"github.com/fsmod-labs/fsmod/internal/catalog"
	"github.com/fsmod-labs/fsmod/internal/debuglog"
	"github.com/fsmod-labs/fsmod/internal/platform"
	"github.com/spf13/afero"
)

// Materializer creates directories and empty files on a filesystem and
// remembers every path it ensured.
type Materializer struct {
	fs    afero.Fs
	log   *debuglog.Logger
	dirs  []string
	files []string
	seen  map[string]bool
}

// New returns a Materializer writing to fsys. logger may be nil.
func New(fsys afero.Fs, logger *debuglog.Logger) *Materializer {
	return &Materializer{fs: fsys, log: logger, seen: make(map[string]bool)}
}

// EnsureDirectoryTree makes sure root, every catalog directory below it, and
// every nested subdirectory exist. Paths that already exist as directories
// count as success. Every other failure is collected and the walk moves on
// to the next entry.
func (m *Materializer) EnsureDirectoryTree(root string, dirs []catalog.DirectoryEntry) []*PathError {
	var errs []*PathError
	if err := m.ensureRoot(root); err != nil {
		errs = append(errs, err)
	}

	for _, d := range dirs {
		dir := path.Join(root, d.Name)
		if err := m.ensureDir(dir); err != nil {
			errs = append(errs, err)
		}
		for _, sub := range d.Subdirectories {
			if err := m.ensureDir(path.Join(dir, sub)); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}

// ensureRoot creates root and any missing parents.
func (m *Materializer) ensureRoot(root string) *PathError {
	if info, err := m.fs.Stat(root); err == nil {
		if !info.IsDir() {
			return m.fail(debuglog.KindDirectory, "mkdir", root, ErrNotDirectory)
		}
		m.log.Exists(debuglog.KindDirectory, root)
		m.track(&m.dirs, root)
		return nil
	}

	if err := m.fs.MkdirAll(root, platform.DirPerm); err != nil {
		return m.fail(debuglog.KindDirectory, "mkdir", root, cause(err))
	}
	m.log.Created(debuglog.KindDirectory, root)
	m.track(&m.dirs, root)
	return nil
}

// ensureDir creates a single directory whose parent is expected to exist.
func (m *Materializer) ensureDir(dir string) *PathError {
	err := m.fs.Mkdir(dir, platform.DirPerm)
	switch {
	case err == nil:
		// Mkdir is subject to the umask.
		if err := platform.Chmod(m.fs, dir, platform.DirPerm); err != nil {
			return m.fail(debuglog.KindDirectory, "chmod", dir, cause(err))
		}
		m.log.Created(debuglog.KindDirectory, dir)
	case errors.Is(err, fs.ErrExist):
		info, statErr := m.fs.Stat(dir)
		if statErr != nil {
			return m.fail(debuglog.KindDirectory, "stat", dir, cause(statErr))
		}
		if !info.IsDir() {
			return m.fail(debuglog.KindDirectory, "mkdir", dir, ErrNotDirectory)
		}
		m.log.Exists(debuglog.KindDirectory, dir)
	default:
		return m.fail(debuglog.KindDirectory, "mkdir", dir, cause(err))
	}

	m.track(&m.dirs, dir)
	return nil
}

// createEmpty creates file, or truncates it to zero bytes if it exists.
func (m *Materializer) createEmpty(file string) *PathError {
	f, err := m.fs.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, platform.FilePerm)
	if err != nil {
		return m.fail(debuglog.KindFile, "create", file, cause(err))
	}
	if err := f.Close(); err != nil {
		return m.fail(debuglog.KindFile, "close", file, cause(err))
	}

	m.log.Created(debuglog.KindFile, file)
	m.track(&m.files, file)
	return nil
}

func (m *Materializer) fail(kind debuglog.Kind, op, p string, err error) *PathError {
	m.log.Failed(kind, p, err)
	return &PathError{Op: op, Path: p, Err: err}
}

// track appends p to list the first time p is seen.
func (m *Materializer) track(list *[]string, p string) {
	if m.seen[p] {
		return
	}
	m.seen[p] = true
	*list = append(*list, p)
}
