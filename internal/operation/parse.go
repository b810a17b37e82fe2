package operation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Command-line tokens. They are single-dash words, not POSIX flags.
const (
	TokenStandardMod        = "-stdm"
	TokenStandardModComplex = "-stdmc"
	TokenHelp               = "-help"
	TokenVersion            = "-version"
	TokenMonolithic         = "-tbl"
	TokenModular            = "-tbm"
	TokenDebug              = "-debug"
)

var knownTokens = []string{
	TokenStandardMod, TokenStandardModComplex, TokenHelp, TokenVersion,
	TokenMonolithic, TokenModular, TokenDebug,
}

var (
	ErrNoArguments       = errors.New("no command given")
	ErrStandalone        = errors.New("command cannot have additional arguments")
	ErrUnknownTableToken = errors.New("table mode must be -tbl or -tbm")
	ErrInvalidPrefix     = errors.New("invalid prefix")
	ErrExtraArguments    = errors.New("too many arguments")
)

// Action is what the invocation asks the CLI to do.
type Action int

const (
	ActionGenerate Action = iota
	ActionHelp
	ActionVersion
)

// Request is a parsed command line.
type Request struct {
	Action Action
	// Config is only set for ActionGenerate.
	Config Config
	// Notices are non-fatal remarks about ignored arguments.
	Notices []string
}

// Parse turns command-line arguments (without the program name) into a
// Request. Every error it returns is a usage error; nothing has touched the
// filesystem yet.
func Parse(args []string) (*Request, error) {
	if len(args) == 0 {
		return nil, ErrNoArguments
	}

	var mode Mode
	switch args[0] {
	case TokenHelp, TokenVersion:
		if len(args) > 1 {
			return nil, fmt.Errorf("the %s %w", args[0], ErrStandalone)
		}
		if args[0] == TokenHelp {
			return &Request{Action: ActionHelp}, nil
		}
		return &Request{Action: ActionVersion}, nil
	case TokenStandardMod:
		mode = StandardMod
	case TokenStandardModComplex:
		mode = StandardModComplex
	default:
		return nil, fmt.Errorf("%w %q: want %s, %s or %s",
			ErrInvalidMode, args[0], TokenStandardMod, TokenStandardModComplex, TokenHelp)
	}

	if len(args) < 2 || args[1] == "" || slices.Contains(knownTokens, args[1]) {
		return nil, fmt.Errorf("%w for %s", ErrMissingRoot, args[0])
	}
	root := args[1]

	debug := false
	rest := make([]string, 0, len(args)-2)
	for _, a := range args[2:] {
		if a == TokenDebug {
			debug = true
			continue
		}
		rest = append(rest, a)
	}

	req := &Request{Action: ActionGenerate}
	tableMode := TableModeNone
	prefix := ""

	if mode == StandardMod {
		if len(rest) > 0 {
			return nil, fmt.Errorf("%w with %s: %s", ErrUnexpectedTables, TokenStandardMod, strings.Join(rest, " "))
		}
	} else {
		if len(rest) == 0 {
			return nil, fmt.Errorf("%w: %s needs %s or %s", ErrMissingTableMode, TokenStandardModComplex, TokenMonolithic, TokenModular)
		}
		switch rest[0] {
		case TokenMonolithic:
			tableMode = Monolithic
			if len(rest) > 1 {
				req.Notices = append(req.Notices, fmt.Sprintf("prefix %q is ignored with %s", rest[1], TokenMonolithic))
			}
		case TokenModular:
			tableMode = Modular
			if len(rest) < 2 {
				return nil, ErrMissingPrefix
			}
			prefix = rest[1]
			if err := validatePrefix(prefix); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w, got %q", ErrUnknownTableToken, rest[0])
		}
		if len(rest) > 2 {
			return nil, fmt.Errorf("%w: %s", ErrExtraArguments, strings.Join(rest[2:], " "))
		}
	}

	cfg, err := NewConfig(mode, root, tableMode, prefix, debug)
	if err != nil {
		return nil, err
	}
	req.Config = cfg
	return req, nil
}

// validatePrefix rejects prefixes that would not form a single filename.
func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return ErrMissingPrefix
	case strings.HasPrefix(prefix, "-"):
		return fmt.Errorf("%w %q: looks like an option", ErrInvalidPrefix, prefix)
	case strings.ContainsAny(prefix, `/\`):
		return fmt.Errorf("%w %q: must not contain path separators", ErrInvalidPrefix, prefix)
	}
	return nil
}
