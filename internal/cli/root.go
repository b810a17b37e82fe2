package cli

import (
	"errors"
	"fmt"

	"github.com/fsmod-labs/fsmod/internal/branding"
	"github.com/fsmod-labs/fsmod/internal/config"
	"github.com/fsmod-labs/fsmod/internal/operation"
	"github.com/fsmod-labs/fsmod/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <command> <path> [-tbl | -tbm <prefix>] [-debug]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the directory tree of a FreeSpace mod and, optionally,
the empty table files it needs in monolithic (.tbl) or modular (.tbm) form.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

// usageError marks errors caused by the command line itself.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return execute()
}

func execute() error {
	config.Load()
	if !config.ColorEnabled() {
		ui.Styled = false
	}

	err := rootCmd.Execute()
	if err != nil {
		stderr := rootCmd.ErrOrStderr()
		fmt.Fprintln(stderr, ui.Error(err.Error()))

		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(stderr, operation.ShortUsage(branding.CLIName()))
			fmt.Fprintf(stderr, "Run '%s %s' for details.\n", branding.CLIName(), operation.TokenHelp)
		}
	}
	return err
}

func runRoot(cmd *cobra.Command, args []string) error {
	req, err := operation.Parse(args)
	if err != nil {
		return &usageError{err: err}
	}

	out := cmd.OutOrStdout()
	switch req.Action {
	case operation.ActionHelp:
		fmt.Fprint(out, operation.Usage(branding.CLIName()))
		return nil
	case operation.ActionVersion:
		fmt.Fprintln(out, versionString())
		return nil
	}

	for _, n := range req.Notices {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning(n))
	}
	return generate(cmd, req.Config)
}
