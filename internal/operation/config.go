package operation

import (
	"errors"
	"fmt"
)

// Mode selects how much of the mod layout is generated.
type Mode int

const (
	// StandardMod creates the directory tree only.
	StandardMod Mode = iota + 1
	// StandardModComplex creates the directory tree and the table files.
	StandardModComplex
)

func (m Mode) String() string {
	switch m {
	case StandardMod:
		return "standard-mod"
	case StandardModComplex:
		return "standard-mod-complex"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// TableMode selects the table file naming convention.
type TableMode int

const (
	// TableModeNone means no table files are generated.
	TableModeNone TableMode = iota
	// Monolithic emits one <name>.tbl per table.
	Monolithic
	// Modular emits <prefix><suffix>.tbm fragments where the table allows it.
	Modular
)

func (t TableMode) String() string {
	switch t {
	case TableModeNone:
		return "none"
	case Monolithic:
		return "tbl"
	case Modular:
		return "tbm"
	default:
		return fmt.Sprintf("TableMode(%d)", int(t))
	}
}

var (
	ErrInvalidMode      = errors.New("invalid mode")
	ErrMissingRoot      = errors.New("root path is required")
	ErrMissingTableMode = errors.New("table mode is required")
	ErrUnexpectedTables = errors.New("table mode and prefix are not allowed")
	ErrMissingPrefix    = errors.New(".tbm requires a prefix")
	ErrUnexpectedPrefix = errors.New("prefix is only used with -tbm")
)

// Config is one validated generation request. It is built once by NewConfig
// and never changes afterwards.
type Config struct {
	mode      Mode
	root      string
	tableMode TableMode
	prefix    string
	debug     bool
}

// NewConfig checks the relationships between the fields and returns the
// resulting Config. Table mode values outside the known set are accepted
// here and rejected when the request is dispatched.
func NewConfig(mode Mode, root string, tableMode TableMode, prefix string, debug bool) (Config, error) {
	if root == "" {
		return Config{}, ErrMissingRoot
	}

	switch mode {
	case StandardMod:
		if tableMode != TableModeNone || prefix != "" {
			return Config{}, fmt.Errorf("%w with %s", ErrUnexpectedTables, mode)
		}
	case StandardModComplex:
		if tableMode == TableModeNone {
			return Config{}, fmt.Errorf("%w with %s", ErrMissingTableMode, mode)
		}
		if tableMode == Modular && prefix == "" {
			return Config{}, ErrMissingPrefix
		}
		if tableMode != Modular && prefix != "" {
			return Config{}, ErrUnexpectedPrefix
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}

	return Config{
		mode:      mode,
		root:      root,
		tableMode: tableMode,
		prefix:    prefix,
		debug:     debug,
	}, nil
}

func (c Config) Mode() Mode           { return c.mode }
func (c Config) Root() string         { return c.root }
func (c Config) TableMode() TableMode { return c.tableMode }
func (c Config) Prefix() string       { return c.prefix }
func (c Config) Debug() bool          { return c.debug }
