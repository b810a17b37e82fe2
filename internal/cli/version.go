package cli

import (
	"fmt"

	"github.com/fsmod-labs/fsmod/internal/branding"
)

func versionString() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", branding.CLIName(), buildVersion, buildCommit, buildDate)
}
