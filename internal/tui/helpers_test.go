package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour/styles"
	"github.com/runoshun/issue-drafter/internal/app"
	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/runoshun/issue-drafter/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

type testDeps struct {
	issues    *testutil.MockIssueRepository
	repos     *testutil.MockRepositoryRegistry
	completer *testutil.MockCompleter
}

// newTestModel returns a sized model backed by mocks.
func newTestModel(t *testing.T) (*Model, *testDeps) {
	t.Helper()

	deps := &testDeps{
		issues:    testutil.NewMockIssueRepository(),
		repos:     testutil.NewMockRepositoryRegistry(),
		completer: &testutil.MockCompleter{},
	}
	c := app.NewWithDeps(
		domain.NewDefaultConfig(),
		deps.issues,
		deps.repos,
		deps.completer,
		&testutil.MockRemoteReader{},
		&testutil.SequentialIDs{Prefix: "new-"},
		&testutil.MockClock{NowTime: testNow},
		nil,
	)

	m := New(context.Background(), c, WithMarkdownStyle(styles.NoTTYStyle))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, deps
}

func addIssue(deps *testDeps, id, title string, at time.Time) *domain.Issue {
	issue := domain.NewIssue(id, domain.Draft{
		Title:    title,
		Story:    "As a user, I want " + title,
		Criteria: "works",
	}, at)
	deps.issues.Issues[id] = issue
	return issue
}

// load runs the issue and repository loaders synchronously.
func load(t *testing.T, m *Model) {
	t.Helper()
	for _, cmd := range []tea.Cmd{m.loadIssues(), m.loadRepos()} {
		msg := cmd()
		_, isErr := msg.(MsgError)
		require.False(t, isErr, "load failed: %v", msg)
		m.Update(msg)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
