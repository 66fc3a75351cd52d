package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCompletion = `title: Add login
user_story: ["As a user, I want to log in"]
acceptance_criteria: ["Form validates", "Error shown on failure"]
`

func TestGenerateCommand_FromArgs(t *testing.T) {
	container, deps := newTestContainer(t)
	deps.completer.Response = testCompletion

	out, err := execute(newGenerateCommand(container), "I", "need", "a", "login")

	require.NoError(t, err)
	assert.Contains(t, out, "Created issue id-1")
	assert.Contains(t, out, "# Add login\n\n## User Story\n\nAs a user, I want to log in\n")
	assert.Contains(t, out, "- Error shown on failure")
	assert.Contains(t, deps.completer.GotPrompt, "I need a login")
	assert.Len(t, deps.issues.Issues, 1)
}

func TestGenerateCommand_FromStdin(t *testing.T) {
	container, deps := newTestContainer(t)
	deps.completer.Response = testCompletion

	cmd := newGenerateCommand(container)
	cmd.SetIn(strings.NewReader("login via stdin\n"))
	_, err := execute(cmd, "-")

	require.NoError(t, err)
	assert.Contains(t, deps.completer.GotPrompt, "login via stdin")
}

func TestGenerateCommand_FromFile(t *testing.T) {
	container, deps := newTestContainer(t)
	deps.completer.Response = testCompletion
	path := filepath.Join(t.TempDir(), "request.txt")
	require.NoError(t, os.WriteFile(path, []byte("login from file"), 0o600))

	out, err := execute(newGenerateCommand(container), "--file", path, "--json")

	require.NoError(t, err)
	var got jsonIssue
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, []string{"Form validates", "Error shown on failure"}, got.Criteria)
	assert.Equal(t, []string{}, got.Requirements)
	assert.Contains(t, deps.completer.GotPrompt, "login from file")
}

func TestGenerateCommand_NoInput(t *testing.T) {
	container, deps := newTestContainer(t)

	_, err := execute(newGenerateCommand(container))

	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Zero(t, deps.completer.Calls)
}

func TestGenerateCommand_FileAndArgs(t *testing.T) {
	container, _ := newTestContainer(t)

	_, err := execute(newGenerateCommand(container), "--file", "x.txt", "text")

	assert.Error(t, err)
}

func TestGenerateCommand_ValidationFailure(t *testing.T) {
	container, deps := newTestContainer(t)
	deps.completer.Response = "title: Only title\n"

	_, err := execute(newGenerateCommand(container), "something")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{domain.FieldUserStory}, verr.Fields)
	assert.Empty(t, deps.issues.Issues)
}
