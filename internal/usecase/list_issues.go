package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/runoshun/issue-drafter/internal/domain"
)

// RecentIssuesLimit is the number of issues shown on the landing page.
const RecentIssuesLimit = 5

// ListIssuesInput contains the parameters for listing issues.
type ListIssuesInput struct {
	Limit int // Maximum number of issues (0 = all)
}

// ListIssuesOutput contains the result of listing issues.
type ListIssuesOutput struct {
	Issues []*domain.Issue // Newest first
}

// ListIssues is the use case for listing issues.
type ListIssues struct {
	issues domain.IssueRepository
}

// NewListIssues creates a new ListIssues use case.
func NewListIssues(issues domain.IssueRepository) *ListIssues {
	return &ListIssues{
		issues: issues,
	}
}

// Execute returns issues sorted newest first, truncated to in.Limit.
func (uc *ListIssues) Execute(_ context.Context, in ListIssuesInput) (*ListIssuesOutput, error) {
	issues, err := uc.issues.List()
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	slices.SortFunc(issues, func(a, b *domain.Issue) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	if in.Limit > 0 && len(issues) > in.Limit {
		issues = issues[:in.Limit]
	}
	return &ListIssuesOutput{Issues: issues}, nil
}
