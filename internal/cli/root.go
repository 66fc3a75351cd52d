// Package cli provides the command-line interface for issue-drafter.
package cli

import (
	"fmt"

	"github.com/runoshun/issue-drafter/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupServe = "serve"
	groupData  = "data"
	groupSetup = "setup"
)

// NewRootCommand creates the root command for issue-drafter.
// The container is opened from the global flags before any subcommand
// runs; an already opened container (tests) is used as is.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "drafter",
		Short: "Turn feature requests into GitHub issue drafts",
		Long: `issue-drafter turns a free-form feature request into a structured
GitHub issue draft (title, user story, acceptance criteria and technical
requirements) using a Gemini model.

Run "drafter serve" for the web UI, or use "drafter generate" from the shell.
Drafts and registered repositories are stored as JSON files in the data directory.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return nil
			}
			opts.Stderr = cmd.ErrOrStderr()
			if err := c.Open(cmd.Context(), opts); err != nil {
				return err
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Project config file (default ./drafter.toml)")
	root.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "Directory holding issues.json and repositories.json")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupServe, Title: "Drafting:"},
		&cobra.Group{ID: groupData, Title: "Stored Data:"},
		&cobra.Group{ID: groupSetup, Title: "Setup:"},
	)

	serveCmd := newServeCommand(c)
	serveCmd.GroupID = groupServe
	generateCmd := newGenerateCommand(c)
	generateCmd.GroupID = groupServe

	browseCmd := newBrowseCommand(c)
	browseCmd.GroupID = groupData
	issueCmd := newIssueCommand(c)
	issueCmd.GroupID = groupData
	repoCmd := newRepoCommand(c)
	repoCmd.GroupID = groupData

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(serveCmd, generateCmd, browseCmd, issueCmd, repoCmd, configCmd)
	return root
}
