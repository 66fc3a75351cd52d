package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/issue-drafter/internal/domain"
)

const dateLayout = "2006-01-02 15:04"

type issueItem struct {
	issue *domain.Issue
}

func (i issueItem) FilterValue() string {
	return i.issue.Title + " " + i.issue.Story
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	if width < 10 {
		width = 10
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "...")
	}
	return s
}

type issueDelegate struct {
	styles Styles
}

func newIssueDelegate(styles Styles) issueDelegate {
	return issueDelegate{styles: styles}
}

func (d issueDelegate) Height() int {
	return 2
}

func (d issueDelegate) Spacing() int {
	return 1
}

func (d issueDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws the date and title on the first line and the story on the second.
func (d issueDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ii, ok := item.(issueItem)
	if !ok {
		return
	}
	issue := ii.issue
	selected := index == m.Index()

	indicator, titleStyle, descStyle := " ", d.styles.ItemTitle, d.styles.ItemDesc
	if selected {
		indicator, titleStyle, descStyle = ">", d.styles.ItemTitleSelected, d.styles.ItemDescSelected
	}

	date := issue.CreatedAt.Local().Format(dateLayout)
	prefixWidth := 4 + len(date) + 2
	title := truncate(escapeNewlines(issue.Title), m.Width()-prefixWidth-2)
	story := truncate(escapeNewlines(issue.Story), m.Width()-prefixWidth-2)

	line := "  " + d.styles.SelectionIndicator.Render(indicator) + " " +
		d.styles.ItemDate.Render(date) + "  " + titleStyle.Render(title)
	_, _ = fmt.Fprintln(w, line)
	_, _ = fmt.Fprint(w, strings.Repeat(" ", prefixWidth)+descStyle.Render(story))
}
