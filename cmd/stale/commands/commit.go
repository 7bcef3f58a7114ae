package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stale/internal/core/domain"
)

// newCommitCmd creates the post-build hook. The host invokes it only
// after a successful build, with the fingerprint printed by check.
func (c *CLI) newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit <fingerprint>",
		Short: "Record a successful build's fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Commit(domain.Fingerprint(args[0]))
		},
	}
}
