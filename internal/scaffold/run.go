package scaffold

import (
	"fmt"

	"github.com/fsmod-labs/fsmod/internal/catalog"
	"github.com/fsmod-labs/fsmod/internal/operation"
)

// Result describes what a run produced.
type Result struct {
	Root        string
	Directories []string
	Files       []string
	Errors      []*PathError
}

// Run dispatches cfg to the materializers. Path failures end up in
// Result.Errors; the returned error is reserved for requests that cannot be
// dispatched at all. Work done before such an error is left on disk.
func Run(m *Materializer, cat *catalog.Catalog, cfg operation.Config) (*Result, error) {
	root := cfg.Root()
	m.log.Printf("run %s root=%q tables=%s prefix=%q", cfg.Mode(), root, cfg.TableMode(), cfg.Prefix())

	var errs []*PathError
	switch cfg.Mode() {
	case operation.StandardMod:
		errs = m.EnsureDirectoryTree(root, cat.ModDirectories())
	case operation.StandardModComplex:
		errs = m.EnsureDirectoryTree(root, cat.Directories())

		switch cfg.TableMode() {
		case operation.Monolithic:
			errs = append(errs, m.CreateMonolithicTables(root, cat.Tables())...)
			errs = append(errs, m.CreateStaticTables(root, catalog.StaticTables())...)
		case operation.Modular:
			errs = append(errs, m.CreateModularTables(root, cat.Tables(), cfg.Prefix())...)
		default:
			m.log.Printf("aborted: %s is not a known table mode", cfg.TableMode())
			return m.result(root, errs), fmt.Errorf("%w: %s", ErrUnknownTableMode, cfg.TableMode())
		}
	default:
		return m.result(root, errs), fmt.Errorf("%w: %s", operation.ErrInvalidMode, cfg.Mode())
	}

	res := m.result(root, errs)
	m.log.Printf("done: %d directories, %d files, %d errors", len(res.Directories), len(res.Files), len(res.Errors))
	return res, nil
}

func (m *Materializer) result(root string, errs []*PathError) *Result {
	return &Result{
		Root:        root,
		Directories: append([]string(nil), m.dirs...),
		Files:       append([]string(nil), m.files...),
		Errors:      errs,
	}
}
