package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/runoshun/issue-drafter/internal/app"
	"github.com/runoshun/issue-drafter/internal/web"
	"github.com/spf13/cobra"
)

// runServerFunc runs the web server, allowing it to be mocked in tests.
var runServerFunc = func(ctx context.Context, srv *web.Server, addr string) error {
	return srv.Run(ctx, addr)
}

// newServeCommand creates the serve command.
func newServeCommand(c *app.Container) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		Long: `Start the HTTP server hosting the request form, previews, history
and repository settings. Stops gracefully on Ctrl-C or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			srv, err := c.WebServer()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving on %s\n", browserURL(addr))
			return runServerFunc(ctx, srv, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from [server] addr)")
	return cmd
}

// browserURL turns a listen address into a URL to open locally.
func browserURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
