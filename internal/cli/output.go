package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/runoshun/issue-drafter/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

type jsonIssue struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Story        string    `json:"story"`
	Criteria     []string  `json:"criteria"`
	Requirements []string  `json:"requirements"`
}

type jsonRepository struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner"`
	URL       string    `json:"url"`
}

func toJSONIssue(issue *domain.Issue) jsonIssue {
	return jsonIssue{
		CreatedAt:    issue.CreatedAt,
		ID:           issue.ID,
		Title:        issue.Title,
		Story:        issue.Story,
		Criteria:     nonNil(issue.CriteriaItems()),
		Requirements: nonNil(issue.RequirementsItems()),
	}
}

func toJSONRepository(repo *domain.Repository) jsonRepository {
	return jsonRepository{
		CreatedAt: repo.CreatedAt,
		ID:        repo.ID,
		Name:      repo.Name,
		Owner:     repo.Owner,
		URL:       repo.URL,
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// writeIssueMarkdown prints the issue as a Markdown document with the
// title as top-level heading.
func writeIssueMarkdown(w io.Writer, issue *domain.Issue) {
	_, _ = fmt.Fprintf(w, "# %s\n\n%s", issue.Title, issue.Markdown())
}
