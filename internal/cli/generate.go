package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/runoshun/issue-drafter/internal/app"
	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/runoshun/issue-drafter/internal/usecase"
	"github.com/spf13/cobra"
)

// newGenerateCommand creates the generate command.
func newGenerateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		file string
		json bool
	}

	cmd := &cobra.Command{
		Use:     "generate [text...]",
		Aliases: []string{"gen"},
		Short:   "Draft an issue from a feature request",
		Long: `Send a feature request to the model and store the resulting issue draft.

The request is taken from the arguments, from --file, or from stdin when
the only argument is "-".`,
		Example: `  drafter generate "Users should be able to export reports as CSV"
  drafter generate --file request.txt
  echo "Add dark mode" | drafter generate -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readRequest(cmd.InOrStdin(), opts.file, args)
			if err != nil {
				return err
			}

			out, err := c.GenerateIssueUseCase().Execute(cmd.Context(), usecase.GenerateIssueInput{Text: text})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(w, toJSONIssue(out.Issue))
			}
			_, _ = fmt.Fprintf(w, "Created issue %s\n\n", out.Issue.ID)
			writeIssueMarkdown(w, out.Issue)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the request from a file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output the stored issue as JSON")
	return cmd
}

// readRequest resolves the request text from --file, stdin ("-") or args.
func readRequest(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", errors.New("use either --file or text arguments, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read request file: %w", err)
		}
		return string(data), nil
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case len(args) == 0:
		return "", fmt.Errorf("%w: pass the request as arguments, --file, or - for stdin", domain.ErrEmptyInput)
	default:
		return strings.Join(args, " "), nil
	}
}
