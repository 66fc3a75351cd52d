package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/runoshun/issue-drafter/internal/app"
	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/runoshun/issue-drafter/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	ctx       context.Context
	err       error
	notice    string

	// State
	issues []*domain.Issue
	repos  []*domain.Repository

	// Components
	keys       KeyMap
	styles     Styles
	help       help.Model
	issueList  list.Model
	detail     viewport.Model
	spinner    spinner.Model
	input      textinput.Model
	mdStyle    string
	mdRenderer *glamour.TermRenderer

	// Numeric state (smaller types last)
	mode       Mode
	width      int
	height     int
	generating bool
}

// Option configures a Model.
type Option func(*Model)

// WithMarkdownStyle selects the glamour standard style used for the
// detail view ("dark", "light", "notty", ...).
func WithMarkdownStyle(style string) Option {
	return func(m *Model) {
		m.mdStyle = style
	}
}

// New creates a new TUI Model with the given container.
func New(ctx context.Context, c *app.Container, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Describe the feature you want..."
	ti.CharLimit = 2000

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	st := DefaultStyles()
	issueList := list.New([]list.Item{}, newIssueDelegate(st), 0, 0)
	issueList.SetShowTitle(false)
	issueList.SetShowStatusBar(false)
	issueList.SetShowHelp(false)
	issueList.SetFilteringEnabled(true)
	issueList.DisableQuitKeybindings()

	m := &Model{
		container: c,
		ctx:       ctx,
		mode:      ModeNormal,
		keys:      DefaultKeyMap(),
		styles:    st,
		help:      help.New(),
		issueList: issueList,
		spinner:   sp,
		input:     ti,
		mdStyle:   styles.DarkStyle,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts the TUI in the alternate screen and blocks until it exits.
func Run(ctx context.Context, c *app.Container, opts ...Option) error {
	p := tea.NewProgram(New(ctx, c, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadIssues(),
		m.loadRepos(),
	)
}

// loadIssues returns a command that loads issues, newest first.
func (m *Model) loadIssues() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListIssuesUseCase().Execute(m.ctx, usecase.ListIssuesInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgIssuesLoaded{Issues: out.Issues}
	}
}

// loadRepos returns a command that loads registered repositories.
func (m *Model) loadRepos() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListRepositoriesUseCase().Execute(m.ctx, usecase.ListRepositoriesInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgReposLoaded{Repos: out.Repositories}
	}
}

// generateIssue returns a command that drafts an issue from text.
func (m *Model) generateIssue(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.GenerateIssueUseCase().Execute(m.ctx, usecase.GenerateIssueInput{Text: text})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgIssueCreated{Issue: out.Issue}
	}
}

// SelectedIssue returns the currently selected issue, or nil if none.
func (m *Model) SelectedIssue() *domain.Issue {
	if ii, ok := m.issueList.SelectedItem().(issueItem); ok {
		return ii.issue
	}
	return nil
}

// updateIssueList replaces the list items, keeping the selection on
// selectID when it is still visible.
func (m *Model) updateIssueList(selectID string) {
	items := make([]list.Item, 0, len(m.issues))
	for _, issue := range m.issues {
		items = append(items, issueItem{issue: issue})
	}
	// With a filter active the list refilters in a command; run it now so
	// the visible items are current before selecting.
	if cmd := m.issueList.SetItems(items); cmd != nil {
		m.issueList, _ = m.issueList.Update(cmd())
	}

	selected := 0
	for i, item := range m.issueList.VisibleItems() {
		if ii, ok := item.(issueItem); ok && ii.issue.ID == selectID {
			selected = i
			break
		}
	}
	m.issueList.Select(selected)
}

func (m *Model) updateLayoutSizes() {
	listHeight := m.height - 10
	if listHeight < 3 {
		listHeight = 3
	}
	m.issueList.SetSize(m.width-4, listHeight)
	m.input.Width = m.width - 12
	m.help.Width = m.width
	m.mdRenderer = nil // wrap width changed
	if m.mode == ModeDetail {
		m.initDetailViewport()
	}
}

func (m *Model) initDetailViewport() {
	width := m.width - 6
	height := m.height - 8
	if width < 40 {
		width = 40
	}
	if height < 10 {
		height = 10
	}
	m.detail = viewport.New(width, height)
	m.detail.SetContent(m.detailContent(width))
}

// markdownRenderer returns a glamour renderer wrapping at width.
func (m *Model) markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if m.mdRenderer != nil {
		return m.mdRenderer, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.mdStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.mdRenderer = r
	return r, nil
}
