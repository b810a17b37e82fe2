package scaffold

import (
	"errors"
	"io/fs"
)

var (
	// ErrUnknownTableMode is returned when a request reaches dispatch with a
	// table mode the materializer does not implement.
	ErrUnknownTableMode = errors.New("unknown table mode")

	// ErrNotDirectory means a non-directory already occupies a directory path.
	ErrNotDirectory = errors.New("exists but is not a directory")
)

// PathError records one filesystem operation that failed. It never stops
// the materializer; callers decide whether to surface it.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

// cause strips the *fs.PathError wrapper so the path is not repeated.
func cause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
