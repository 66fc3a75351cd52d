package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/issue-drafter/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		return m, nil

	case MsgIssuesLoaded:
		selectID := ""
		if issue := m.SelectedIssue(); issue != nil {
			selectID = issue.ID
		}
		m.issues = msg.Issues
		m.updateIssueList(selectID)
		return m, nil

	case MsgReposLoaded:
		m.repos = msg.Repos
		return m, nil

	case MsgIssueCreated:
		m.generating = false
		m.notice = "Created " + msg.Issue.Title
		// Newest first until the reload lands
		m.issues = append([]*domain.Issue{msg.Issue}, m.issues...)
		m.issueList.ResetFilter()
		m.updateIssueList(msg.Issue.ID)
		m.mode = ModeDetail
		m.initDetailViewport()
		return m, m.loadIssues()

	case MsgError:
		m.err = msg.Err
		m.generating = false
		if m.mode.IsInputMode() {
			m.mode = ModeNormal
		}
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Filter results and other list messages
	var cmd tea.Cmd
	m.issueList, cmd = m.issueList.Update(msg)
	return m, cmd
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear messages on any key press
	m.err = nil
	m.notice = ""

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeFilter:
		return m.handleFilterMode(msg)
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeDetail:
		return m.handleDetailMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.SelectedIssue() == nil {
			return m, nil
		}
		m.mode = ModeDetail
		m.initDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.New):
		if m.generating {
			return m, nil
		}
		m.mode = ModeInput
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.loadIssues(), m.loadRepos())

	case key.Matches(msg, m.keys.Filter):
		m.mode = ModeFilter
		var cmd tea.Cmd
		m.issueList, cmd = m.issueList.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		// Clear an applied filter
		m.issueList.ResetFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.issueList, cmd = m.issueList.Update(msg)
	return m, cmd
}

// handleFilterMode forwards keys to the list's filter until it is
// applied or cancelled.
func (m *Model) handleFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.issueList, cmd = m.issueList.Update(msg)
	if !m.issueList.SettingFilter() {
		m.mode = ModeNormal
	}
	return m, cmd
}

// handleInputMode edits the new request and submits it on enter.
func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.mode = ModeNormal
		m.input.Blur()
		m.generating = true
		return m, tea.Batch(m.generateIssue(text), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleDetailMode scrolls the detail viewport.
func (m *Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Enter):
		m.mode = ModeNormal
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}
