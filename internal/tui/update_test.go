package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIssues_NewestFirst(t *testing.T) {
	m, deps := newTestModel(t)
	addIssue(deps, "old", "Old", testNow.Add(-2 * time.Hour))
	addIssue(deps, "new", "New", testNow)

	msg := m.loadIssues()()
	loaded, ok := msg.(MsgIssuesLoaded)
	require.True(t, ok)
	require.Len(t, loaded.Issues, 2)
	assert.Equal(t, "new", loaded.Issues[0].ID)
}

func TestLoadIssues_Error(t *testing.T) {
	m, deps := newTestModel(t)
	deps.issues.ListErr = errors.New("disk gone")

	msg := m.loadIssues()()
	errMsg, ok := msg.(MsgError)
	require.True(t, ok)
	assert.ErrorContains(t, errMsg.Err, "disk gone")
}

func TestUpdate_MsgIssuesLoaded(t *testing.T) {
	m, deps := newTestModel(t)
	addIssue(deps, "a", "First", testNow)

	updated, _ := m.Update(MsgIssuesLoaded{Issues: []*domain.Issue{deps.issues.Issues["a"]}})
	result, ok := updated.(*Model)
	require.True(t, ok, "Update should return *Model")
	require.NotNil(t, result.SelectedIssue())
	assert.Equal(t, "a", result.SelectedIssue().ID)
}

func TestUpdate_MsgIssuesLoadedKeepsSelection(t *testing.T) {
	m, deps := newTestModel(t)
	a := addIssue(deps, "a", "A", testNow)
	b := addIssue(deps, "b", "B", testNow.Add(-2 * time.Hour))

	m.Update(MsgIssuesLoaded{Issues: []*domain.Issue{a, b}})
	m.issueList.Select(1)

	m.Update(MsgIssuesLoaded{Issues: []*domain.Issue{a, b}})
	assert.Equal(t, "b", m.SelectedIssue().ID)
}

func TestUpdate_MsgReposLoaded(t *testing.T) {
	m, _ := newTestModel(t)
	repos := []*domain.Repository{{ID: "r1", Owner: "acme", Name: "api", URL: "https://github.com/acme/api"}}

	m.Update(MsgReposLoaded{Repos: repos})
	assert.Equal(t, repos, m.repos)
}

func TestUpdate_EnterOpensDetail(t *testing.T) {
	m, deps := newTestModel(t)
	addIssue(deps, "a", "Dark mode", testNow)
	deps.repos.Repos["r1"] = &domain.Repository{ID: "r1", Owner: "acme", Name: "api", URL: "https://github.com/acme/api"}
	load(t, m)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeDetail, m.mode)

	content := m.detailContent(80)
	assert.Contains(t, content, "Dark mode")
	assert.Contains(t, content, "User Story")
	assert.Contains(t, content, "As a user, I want Dark mode")
	assert.Contains(t, content, "acme/api")
	assert.Contains(t, content, "https://github.com/acme/api/issues/new")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_EnterWithoutIssuesStaysNormal(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_NewRequestSubmits(t *testing.T) {
	m, deps := newTestModel(t)
	deps.completer.Response = "title: Dark mode\nuser_story: As a night owl, I want a dark theme\n"

	m.Update(keyRunes("n"))
	require.Equal(t, ModeInput, m.mode)

	m.Update(keyRunes("dark mode please"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.True(t, m.generating)
	assert.Equal(t, ModeNormal, m.mode)

	msg := m.generateIssue("dark mode please")()
	created, ok := msg.(MsgIssueCreated)
	require.True(t, ok, "got %#v", msg)
	assert.Equal(t, "Dark mode", created.Issue.Title)
	assert.Contains(t, deps.completer.GotPrompt, "dark mode please")

	m.Update(created)
	assert.False(t, m.generating)
	assert.Equal(t, ModeDetail, m.mode)
	assert.Equal(t, created.Issue.ID, m.SelectedIssue().ID)
	assert.Contains(t, m.notice, "Dark mode")
}

func TestUpdate_BlankRequestIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyRunes("n"))
	m.Update(keyRunes("   "))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, ModeInput, m.mode)
	assert.False(t, m.generating)
}

func TestUpdate_EscCancelsInput(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyRunes("n"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_QuitKeyTypedInInput(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyRunes("n"))
	m.Update(keyRunes("q"))
	assert.Equal(t, ModeInput, m.mode)
	assert.Equal(t, "q", m.input.Value())
}

func TestUpdate_GenerateError(t *testing.T) {
	m, deps := newTestModel(t)
	deps.completer.Err = errors.New("quota exceeded")

	msg := m.generateIssue("anything")()
	errMsg, ok := msg.(MsgError)
	require.True(t, ok)

	m.generating = true
	m.mode = ModeInput
	m.Update(errMsg)
	assert.False(t, m.generating)
	assert.Equal(t, ModeNormal, m.mode)
	assert.ErrorContains(t, m.err, "quota exceeded")

	m.Update(MsgClearError{})
	assert.NoError(t, m.err)
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(keyRunes("?"))
	assert.Equal(t, ModeHelp, m.mode)

	m.Update(keyRunes("?"))
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_SpinnerTickIgnoredWhenIdle(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(m.spinner.Tick())
	assert.Nil(t, cmd)
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
	assert.Nil(t, m.mdRenderer)
}

func TestUpdate_MsgIssuesLoadedKeepsSelectionWhileFiltered(t *testing.T) {
	m, deps := newTestModel(t)
	a := addIssue(deps, "a", "Alpha", testNow)
	b := addIssue(deps, "b", "Beta", testNow.Add(-time.Hour))
	c := addIssue(deps, "c", "Beta two", testNow.Add(-2*time.Hour))
	m.Update(MsgIssuesLoaded{Issues: []*domain.Issue{a, b, c}})

	m.issueList.SetFilterText("Beta")
	require.Len(t, m.issueList.VisibleItems(), 2)
	for i, item := range m.issueList.VisibleItems() {
		if item.(issueItem).issue.ID == "c" {
			m.issueList.Select(i)
		}
	}
	require.Equal(t, "c", m.SelectedIssue().ID)

	m.Update(MsgIssuesLoaded{Issues: []*domain.Issue{a, b, c}})
	require.Len(t, m.issueList.VisibleItems(), 2)
	assert.Equal(t, "c", m.SelectedIssue().ID)
}

func TestUpdate_MsgIssueCreatedClearsFilter(t *testing.T) {
	m, deps := newTestModel(t)
	a := addIssue(deps, "a", "Alpha", testNow)
	m.Update(MsgIssuesLoaded{Issues: []*domain.Issue{a}})
	m.issueList.SetFilterText("Alpha")

	created := domain.NewIssue("new-1", domain.Draft{Title: "Gamma", Story: "As a user, I want gamma"}, testNow.Add(time.Hour))
	m.Update(MsgIssueCreated{Issue: created})

	assert.Equal(t, "new-1", m.SelectedIssue().ID)
	assert.Contains(t, m.detailContent(80), "Gamma")
}
