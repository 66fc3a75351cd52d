package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIssue(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issue := NewIssue("abc", Draft{
		Title:        "Add login",
		Story:        "As a user, I want to log in",
		Criteria:     "Form validates",
		Requirements: "Use sessions",
	}, now)

	assert.Equal(t, "abc", issue.ID)
	assert.Equal(t, "Add login", issue.Title)
	assert.Equal(t, "As a user, I want to log in", issue.Story)
	assert.Equal(t, "Form validates", issue.Criteria)
	assert.Equal(t, "Use sessions", issue.Requirements)
	assert.Equal(t, now, issue.CreatedAt)
}

func TestIssue_Items(t *testing.T) {
	issue := &Issue{
		Criteria:     "  first \n\n second\n",
		Requirements: "",
	}
	assert.Equal(t, []string{"first", "second"}, issue.CriteriaItems())
	assert.Nil(t, issue.RequirementsItems())
}

func TestIssue_Markdown(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "story only",
			issue: Issue{Story: "As a user, I want to log in"},
			want:  "## User Story\n\nAs a user, I want to log in\n",
		},
		{
			name: "all sections",
			issue: Issue{
				Story:        "As a user, I want to log in",
				Criteria:     "Form validates\nError shown on failure",
				Requirements: "Use bcrypt",
			},
			want: "## User Story\n\nAs a user, I want to log in\n" +
				"\n## Acceptance Criteria\n\n- Form validates\n- Error shown on failure\n" +
				"\n## Technical Requirements\n\n- Use bcrypt\n",
		},
		{
			name: "blank criteria lines skipped",
			issue: Issue{
				Story:    "s",
				Criteria: "\n  \n",
			},
			want: "## User Story\n\ns\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.Markdown())
		})
	}
}
