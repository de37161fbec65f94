// Package cli provides the command-line interface for gh-activity.
package cli

import (
	"fmt"
	"io"

	"github.com/runoshun/gh-activity/internal/app"
	"github.com/runoshun/gh-activity/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for gh-activity.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "gh-activity <username>",
		Short: "Show a GitHub user's recent public activity",
		Long: `gh-activity fetches a GitHub user's recent public events and prints
one human-readable line per event.

Set the GITHUB_USER_ACTIVITY_CLI_TOKEN environment variable to authenticate
requests; without it the GitHub API applies the unauthenticated rate limit.

Examples:
  # Show recent activity for a user
  gh-activity octocat`,
		Version: version,
		Args:    cobra.ExactArgs(1),
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowActivityUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowActivityInput{
				Username: args[0],
			})
			if err != nil {
				return err
			}
			return printActivity(cmd.OutOrStdout(), out)
		},
	}

	return root
}

// printActivity writes the display lines, one flush per line, in order.
func printActivity(w io.Writer, out *usecase.ShowActivityOutput) error {
	if out.HasEvents {
		if _, err := fmt.Fprintln(w, "Output:"); err != nil {
			return err
		}
	}
	for _, line := range out.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
