package cli

import (
	"context"

	"github.com/charmbracelet/glamour/styles"
	"github.com/runoshun/issue-drafter/internal/app"
	"github.com/runoshun/issue-drafter/internal/tui"
	"github.com/spf13/cobra"
)

// runTUIFunc runs the terminal browser, allowing it to be mocked in tests.
var runTUIFunc = func(ctx context.Context, c *app.Container, opts ...tui.Option) error {
	return tui.Run(ctx, c, opts...)
}

// newBrowseCommand creates the browse command.
func newBrowseCommand(c *app.Container) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse and draft issues in the terminal",
		Long: `Open an interactive terminal browser over stored issues.

Keys:
  enter  show the selected issue
  n      draft a new issue from a request
  /      filter by title or story
  ?      show all keys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUIFunc(cmd.Context(), c, tui.WithMarkdownStyle(style))
		},
	}

	cmd.Flags().StringVar(&style, "style", styles.DarkStyle, "Markdown style: dark, light, notty, ascii, dracula")
	return cmd
}
