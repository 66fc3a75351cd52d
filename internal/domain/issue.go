// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Issue is a feature request converted into a GitHub issue draft.
// Issues are never updated after creation.
// Fields are ordered to minimize memory padding.
type Issue struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"-"` // stored as map key, not in value
	Title        string    `json:"title"`
	Story        string    `json:"story"`
	Criteria     string    `json:"criteria,omitempty"`
	Requirements string    `json:"requirements,omitempty"`
}

// Draft holds the normalized text fields of an issue before it gets
// an identity.
type Draft struct {
	Title        string
	Story        string
	Criteria     string
	Requirements string
}

// NewIssue creates an issue from a draft.
func NewIssue(id string, d Draft, createdAt time.Time) *Issue {
	return &Issue{
		ID:           id,
		Title:        d.Title,
		Story:        d.Story,
		Criteria:     d.Criteria,
		Requirements: d.Requirements,
		CreatedAt:    createdAt,
	}
}

// CriteriaItems returns the non-blank acceptance criteria lines.
func (i *Issue) CriteriaItems() []string {
	return splitItems(i.Criteria)
}

// RequirementsItems returns the non-blank technical requirement lines.
func (i *Issue) RequirementsItems() []string {
	return splitItems(i.Requirements)
}

// Markdown renders the issue body as GitHub-flavored Markdown.
// The title is not included; GitHub keeps it separately.
func (i *Issue) Markdown() string {
	var b strings.Builder
	b.WriteString("## User Story\n\n")
	b.WriteString(strings.TrimSpace(i.Story))
	b.WriteString("\n")

	if items := i.CriteriaItems(); len(items) > 0 {
		b.WriteString("\n## Acceptance Criteria\n\n")
		writeBullets(&b, items)
	}
	if items := i.RequirementsItems(); len(items) > 0 {
		b.WriteString("\n## Technical Requirements\n\n")
		writeBullets(&b, items)
	}
	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}

func splitItems(s string) []string {
	var items []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, line)
		}
	}
	return items
}
