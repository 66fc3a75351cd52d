package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ModeDetail:
		return m.styles.App.Render(m.viewDetail())
	case ModeHelp:
		return m.styles.App.Render(m.viewHelp())
	}

	sections := []string{m.viewHeader(), m.viewList()}
	if m.mode == ModeInput {
		sections = append(sections, m.viewInput())
	}
	sections = append(sections, m.viewStatus(), m.viewFooter())
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Issue Drafts")
	count := m.styles.ItemDate.Render(fmt.Sprintf("%d issues · %d repositories", len(m.issues), len(m.repos)))
	return m.styles.Header.Render(title + "  " + count)
}

func (m *Model) viewList() string {
	if len(m.issues) == 0 {
		return m.styles.ItemDesc.Render("  No issues yet. Press n to draft one.")
	}
	return m.issueList.View()
}

func (m *Model) viewInput() string {
	prompt := m.styles.InputPrompt.Render("New request")
	return m.styles.InputBox.Width(m.width - 8).Render(prompt + "\n" + m.input.View())
}

// viewStatus shows progress, the last error or a notice.
func (m *Model) viewStatus() string {
	switch {
	case m.generating:
		return m.spinner.View() + " Generating draft..."
	case m.err != nil:
		return m.styles.ErrorMsg.Render("Error: " + m.err.Error())
	case m.notice != "":
		return m.styles.SuccessMsg.Render(m.notice)
	}
	return ""
}

func (m *Model) viewFooter() string {
	return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m *Model) viewDetail() string {
	hint := m.styles.Footer.Render("↑/↓ scroll · esc back · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.detail.View(), hint)
}

func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("Keys")
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render(title),
		m.help.FullHelpView(m.keys.FullHelp()),
		m.styles.Footer.Render("? or esc to close"),
	)
}

// detailContent renders the selected issue for the viewport.
func (m *Model) detailContent(width int) string {
	issue := m.SelectedIssue()
	if issue == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.DetailTitle.Render(issue.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.DetailLabel.Render("Created: "))
	b.WriteString(m.styles.DetailValue.Render(issue.CreatedAt.Local().Format(dateLayout)))
	b.WriteString("\n")

	body := issue.Markdown()
	if r, err := m.markdownRenderer(width); err == nil {
		if out, err := r.Render(body); err == nil {
			body = out
		}
	}
	b.WriteString(body)

	if len(m.repos) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.DetailLabel.Render("File as:"))
		b.WriteString("\n")
		for _, repo := range m.repos {
			b.WriteString("  " + m.styles.DetailValue.Render(repo.FullName()) + "  " + repo.NewIssueURL() + "\n")
		}
	}
	return b.String()
}
