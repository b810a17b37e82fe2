package platform

import (
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// Permission bits for generated directories and files.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Chmod sets permissions on path within fsys. On Windows this is a no-op
// because Windows does not support Unix-style permission bits.
func Chmod(fsys afero.Fs, path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return fsys.Chmod(path, mode)
}
