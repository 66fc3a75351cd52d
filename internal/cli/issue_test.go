package cli

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueListCommand_NewestFirst(t *testing.T) {
	container, deps := newTestContainer(t)
	addTestIssue(deps, "old", "Old issue", testNow)
	addTestIssue(deps, "new", "New issue", testNow.Add(time.Hour))

	out, err := execute(newIssueCommand(container), "list")

	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TITLE")
	assert.Less(t, strings.Index(out, "New issue"), strings.Index(out, "Old issue"))
}

func TestIssueListCommand_LimitAndJSON(t *testing.T) {
	container, deps := newTestContainer(t)
	addTestIssue(deps, "a", "A", testNow)
	addTestIssue(deps, "b", "B", testNow.Add(time.Minute))
	addTestIssue(deps, "c", "C", testNow.Add(2*time.Minute))

	out, err := execute(newIssueCommand(container), "list", "--limit", "2", "--json")

	require.NoError(t, err)
	var got []jsonIssue
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, []string{"works", "is fast"}, got[0].Criteria)
}

func TestIssueListCommand_Empty(t *testing.T) {
	container, _ := newTestContainer(t)

	out, err := execute(newIssueCommand(container), "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No issues found.")
}

func TestIssueListCommand_NegativeLimit(t *testing.T) {
	container, _ := newTestContainer(t)

	_, err := execute(newIssueCommand(container), "list", "--limit", "-1")

	assert.Error(t, err)
}

func TestIssueShowCommand(t *testing.T) {
	container, deps := newTestContainer(t)
	addTestIssue(deps, "abc", "Export CSV", testNow)

	out, err := execute(newIssueCommand(container), "show", "abc")

	require.NoError(t, err)
	assert.Contains(t, out, "Issue: abc")
	assert.Contains(t, out, "Title: Export CSV")
	assert.Contains(t, out, "Acceptance Criteria:\n  - works\n  - is fast\n")
	assert.Contains(t, out, "Technical Requirements:\n  - use the store\n")
}

func TestIssueShowCommand_Markdown(t *testing.T) {
	container, deps := newTestContainer(t)
	issue := addTestIssue(deps, "abc", "Export CSV", testNow)

	out, err := execute(newIssueCommand(container), "show", "abc", "--markdown")

	require.NoError(t, err)
	assert.Equal(t, "# Export CSV\n\n"+issue.Markdown(), out)
}

func TestIssueShowCommand_NotFound(t *testing.T) {
	container, _ := newTestContainer(t)

	_, err := execute(newIssueCommand(container), "show", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIssueShowCommand_ConflictingFlags(t *testing.T) {
	container, deps := newTestContainer(t)
	addTestIssue(deps, "abc", "Export CSV", testNow)

	_, err := execute(newIssueCommand(container), "show", "abc", "--markdown", "--json")

	assert.Error(t, err)
}
