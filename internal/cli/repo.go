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

// newRepoCommand creates the repo command.
func newRepoCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage repositories issues can be filed against",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newRepoAddCommand(c))
	cmd.AddCommand(newRepoListCommand(c))
	cmd.AddCommand(newRepoRemoveCommand(c))
	cmd.AddCommand(newRepoImportCommand(c))
	return cmd
}

// newRepoAddCommand creates the repo add subcommand.
func newRepoAddCommand(c *app.Container) *cobra.Command {
	var opts usecase.AddRepositoryInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a GitHub repository",
		Long: `Register a GitHub repository.

A URL without scheme gets https://. A URL that does not point at github.com
is replaced with https://github.com/<owner>/<name>.`,
		Example: `  drafter repo add --owner acme --name web
  drafter repo add --owner acme --name api --url github.com/acme/api`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.AddRepositoryUseCase().Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) as %s\n",
				out.Repository.FullName(), out.Repository.URL, out.Repository.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Repository name (required)")
	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner login (required)")
	cmd.Flags().StringVar(&opts.URL, "url", "", "Repository URL")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

// newRepoListCommand creates the repo list subcommand.
func newRepoListCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered repositories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListRepositoriesUseCase().Execute(cmd.Context(), usecase.ListRepositoriesInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				items := make([]jsonRepository, len(out.Repositories))
				for i, repo := range out.Repositories {
					items[i] = toJSONRepository(repo)
				}
				return writeJSON(w, items)
			}
			printRepoList(w, out.Repositories)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printRepoList(w io.Writer, repos []*domain.Repository) {
	if len(repos) == 0 {
		_, _ = fmt.Fprintln(w, "No repositories registered.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tREPOSITORY\tURL")
	for _, repo := range repos {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", repo.ID, repo.FullName(), repo.URL)
	}
	_ = tw.Flush()
}

// newRepoRemoveCommand creates the repo rm subcommand.
func newRepoRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a registered repository",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.DeleteRepositoryUseCase().Execute(cmd.Context(), usecase.DeleteRepositoryInput{ID: args[0]}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed repository %s\n", args[0])
			return nil
		},
	}
}

// newRepoImportCommand creates the repo import subcommand.
func newRepoImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import [path]",
		Short: "Register the GitHub origin of a local clone",
		Long: `Read the "origin" remote of the git working tree at path (default: the
current directory) and register the GitHub repository it points at.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in usecase.ImportRepositoryInput
			if len(args) == 1 {
				in.Path = args[0]
			}
			out, err := c.ImportRepositoryUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s from %s as %s\n",
				out.Repository.FullName(), out.RemoteURL, out.Repository.ID)
			return nil
		},
	}
}
