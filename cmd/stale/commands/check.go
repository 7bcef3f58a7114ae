package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/stale/internal/core/domain"
)

// newCheckCmd creates the pre-build hook. On Proceed it prints the
// current fingerprint on stdout so the caller can hand it to commit
// after a successful build. On Skip it prints nothing and exits 0: an
// intentional skip is not an error.
func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Decide whether the build can be skipped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			result, err := c.app.Check(configPath)
			if err != nil {
				return err
			}

			if result.Decision == domain.DecisionSkip {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Cached build is up to date. Exiting.")
				return nil
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Fingerprint)
			return nil
		},
	}
}
