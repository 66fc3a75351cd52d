package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/runoshun/issue-drafter/internal/app"
	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/runoshun/issue-drafter/internal/usecase"
	"github.com/spf13/cobra"
)

// newIssueCommand creates the issue command.
func newIssueCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Inspect stored issue drafts",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newIssueListCommand(c))
	cmd.AddCommand(newIssueShowCommand(c))
	return cmd
}

// newIssueListCommand creates the issue list subcommand.
func newIssueListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		limit int
		json  bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List issues, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.limit < 0 {
				return fmt.Errorf("--limit must not be negative: %d", opts.limit)
			}
			out, err := c.ListIssuesUseCase().Execute(cmd.Context(), usecase.ListIssuesInput{Limit: opts.limit})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				items := make([]jsonIssue, len(out.Issues))
				for i, issue := range out.Issues {
					items[i] = toJSONIssue(issue)
				}
				return writeJSON(w, items)
			}
			printIssueList(w, out.Issues)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Show at most N issues (0 = all)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")
	return cmd
}

func printIssueList(w io.Writer, issues []*domain.Issue) {
	if len(issues) == 0 {
		_, _ = fmt.Fprintln(w, "No issues found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tCREATED\tTITLE")
	for _, issue := range issues {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", issue.ID, issue.CreatedAt.Local().Format(timeLayout), issue.Title)
	}
	_ = tw.Flush()
}

// newIssueShowCommand creates the issue show subcommand.
func newIssueShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		markdown bool
		json     bool
	}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show an issue draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.markdown && opts.json {
				return fmt.Errorf("--markdown and --json cannot be combined")
			}
			out, err := c.ShowIssueUseCase().Execute(cmd.Context(), usecase.ShowIssueInput{ID: args[0]})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case opts.json:
				return writeJSON(w, toJSONIssue(out.Issue))
			case opts.markdown:
				writeIssueMarkdown(w, out.Issue)
			default:
				printIssue(w, out.Issue)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "Print the GitHub issue body as Markdown")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")
	return cmd
}

func printIssue(w io.Writer, issue *domain.Issue) {
	_, _ = fmt.Fprintf(w, "Issue: %s\n", issue.ID)
	_, _ = fmt.Fprintf(w, "Title: %s\n", issue.Title)
	_, _ = fmt.Fprintf(w, "Created: %s\n", issue.CreatedAt.Local().Format(timeLayout))
	_, _ = fmt.Fprintf(w, "\nUser Story:\n  %s\n", issue.Story)
	printItems(w, "Acceptance Criteria", issue.CriteriaItems())
	printItems(w, "Technical Requirements", issue.RequirementsItems())
}

func printItems(w io.Writer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "\n%s:\n", heading)
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "  - %s\n", item)
	}
}
