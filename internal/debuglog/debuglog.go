// Package debuglog is the -debug reporting channel. A Logger appends one
// line per filesystem outcome to the debug log file and echoes a tagged line
// to the console. A nil *Logger is valid and discards everything.
package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fsmod-labs/fsmod/internal/branding"
	"github.com/fsmod-labs/fsmod/internal/platform"
	"github.com/fsmod-labs/fsmod/internal/ui"
	"github.com/spf13/afero"
)

// Kind names the sort of path being reported.
type Kind string

const (
	KindDirectory Kind = "directory"
	KindFile      Kind = "file"
)

// Logger writes the debug log. It must be closed exactly once by its owner.
type Logger struct {
	file    afero.File
	log     *log.Logger
	console io.Writer
}

// Open opens path in append mode, creating it if needed. Console lines go
// to console; pass io.Discard to keep the console quiet.
func Open(fsys afero.Fs, path string, console io.Writer) (*Logger, error) {
	f, err := fsys.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, platform.FilePerm)
	if err != nil {
		return nil, fmt.Errorf("opening debug log %s: %w", path, err)
	}
	if console == nil {
		console = io.Discard
	}
	return &Logger{
		file:    f,
		log:     log.New(f, branding.CLIName()+": ", log.LstdFlags),
		console: console,
	}, nil
}

// Printf writes a free-form line to the log file only.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.file == nil {
		return
	}
	l.log.Printf(format, args...)
}

// Created records a path that did not exist before.
func (l *Logger) Created(kind Kind, path string) {
	if l == nil || l.file == nil {
		return
	}
	l.log.Printf("created %s %s", kind, path)
	fmt.Fprintf(l.console, "  %s Created %s\n", ui.OK(), path)
}

// Exists records a path that was already in place.
func (l *Logger) Exists(kind Kind, path string) {
	if l == nil || l.file == nil {
		return
	}
	l.log.Printf("exists %s %s", kind, path)
	fmt.Fprintf(l.console, "  %s %s already exists\n", ui.Skip(), path)
}

// Failed records a path that could not be created.
func (l *Logger) Failed(kind Kind, path string, err error) {
	if l == nil || l.file == nil {
		return
	}
	l.log.Printf("failed %s %s: %v", kind, path, err)
	fmt.Fprintf(l.console, "  %s %s: %v\n", ui.Fail(), path, err)
}

// Close releases the log file. Further calls are no-ops.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	if err != nil {
		return fmt.Errorf("closing debug log: %w", err)
	}
	return nil
}
