package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/issue-drafter/internal/domain"
)

// ShowIssueInput contains the parameters for showing an issue.
type ShowIssueInput struct {
	ID string // Issue ID to show
}

// ShowIssueOutput contains the result of showing an issue.
type ShowIssueOutput struct {
	Issue *domain.Issue
}

// ShowIssue is the use case for looking up a single issue.
type ShowIssue struct {
	issues domain.IssueRepository
}

// NewShowIssue creates a new ShowIssue use case.
func NewShowIssue(issues domain.IssueRepository) *ShowIssue {
	return &ShowIssue{
		issues: issues,
	}
}

// Execute returns the issue with the given ID or a *domain.NotFoundError.
func (uc *ShowIssue) Execute(_ context.Context, in ShowIssueInput) (*ShowIssueOutput, error) {
	issue, err := uc.issues.Get(in.ID)
	if err != nil {
		return nil, fmt.Errorf("get issue: %w", err)
	}
	if issue == nil {
		return nil, &domain.NotFoundError{Kind: "issue", ID: in.ID}
	}
	return &ShowIssueOutput{Issue: issue}, nil
}
