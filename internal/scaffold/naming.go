package scaffold

import (
	"fmt"

	"github.com/fsmod-labs/fsmod/internal/catalog"
	"github.com/fsmod-labs/fsmod/internal/operation"
)

// Table file extensions.
const (
	ExtMonolithic = ".tbl"
	ExtModular    = ".tbm"
)

// TableFileName returns the filename emitted for entry under the given table
// mode. In modular mode, tables without a modular suffix fall back to the
// monolithic name.
func TableFileName(entry catalog.TableEntry, mode operation.TableMode, prefix string) (string, error) {
	switch mode {
	case operation.Monolithic:
		return monolithicName(entry), nil
	case operation.Modular:
		return modularName(entry, prefix), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownTableMode, mode)
	}
}

func monolithicName(entry catalog.TableEntry) string {
	return entry.BaseName + ExtMonolithic
}

func modularName(entry catalog.TableEntry, prefix string) string {
	if !entry.IsModular {
		return monolithicName(entry)
	}
	return prefix + entry.ModularSuffix + ExtModular
}
