package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/issue-drafter/internal/app"
	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage issue-drafter configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))
	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration,
including environment overrides. The API key is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			for _, info := range []domain.ConfigInfo{
				c.ConfigManager.GetGlobalConfigInfo(),
				c.ConfigManager.GetProjectConfigInfo(),
			} {
				if info.Path == "" {
					continue
				}
				if info.Exists {
					_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
				} else {
					_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
				}
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, c.Config)
		},
	}
}

// formatEffectiveConfig writes cfg as TOML with the API key masked.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	apiKey := "(not set)"
	if cfg.Generation.APIKey != "" {
		apiKey = maskSecret(cfg.Generation.APIKey)
	}

	output := map[string]any{
		"server": map[string]any{"addr": cfg.Server.Addr},
		"store":  map[string]any{"dir": cfg.Store.Dir},
		"generation": map[string]any{
			"model":    cfg.Generation.Model,
			"language": cfg.Generation.Language,
			"timeout":  cfg.Generation.Timeout.String(),
			"api_key":  apiKey,
		},
		"log": map[string]any{"level": cfg.Log.Level, "file": cfg.Log.File},
	}

	if err := toml.NewEncoder(w).Encode(output); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// maskSecret keeps the last four characters of long secrets.
func maskSecret(s string) string {
	if len(s) <= 8 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented config template",
		Long: `Write a commented configuration template.

By default the project config (./drafter.toml or --config) is created.
With --global the user config under $XDG_CONFIG_HOME/issue-drafter is created.
Existing files are never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				path string
				err  error
			)
			if global {
				path, err = c.ConfigManager.InitGlobalConfig()
			} else {
				path, err = c.ConfigManager.InitProjectConfig()
			}
			if errors.Is(err, domain.ErrConfigExists) {
				return fmt.Errorf("%w: %s", err, path)
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Create the global config instead")
	return cmd
}
