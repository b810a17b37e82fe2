package cli

import (
	"fmt"

	"github.com/fsmod-labs/fsmod/internal/catalog"
	"github.com/fsmod-labs/fsmod/internal/config"
	"github.com/fsmod-labs/fsmod/internal/debuglog"
	"github.com/fsmod-labs/fsmod/internal/operation"
	"github.com/fsmod-labs/fsmod/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func generate(cmd *cobra.Command, cfg operation.Config) (err error) {
	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	out := cmd.OutOrStdout()
	fsys := afero.NewOsFs()

	var logger *debuglog.Logger
	if cfg.Debug() {
		logger, err = debuglog.Open(fsys, config.LogFile(), out)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := logger.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		fmt.Fprintf(out, "Scaffolding %s at %s\n", cfg.Mode(), cfg.Root())
	}

	result, err := scaffold.Run(scaffold.New(fsys, logger), cat, cfg)
	if err != nil {
		return err
	}

	if cfg.Debug() && len(result.Errors) > 0 {
		fmt.Fprintf(out, "\n%d paths could not be created; see %s\n", len(result.Errors), config.LogFile())
	}
	fmt.Fprintf(out, "Mod layout ready at %s\n", result.Root)
	return nil
}
