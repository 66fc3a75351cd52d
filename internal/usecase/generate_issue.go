// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/issue-drafter/internal/domain"
	"go.uber.org/zap"
)

// GenerateIssueInput contains the parameters for drafting an issue.
type GenerateIssueInput struct {
	Text string // Free-form feature request (required)
}

// GenerateIssueOutput contains the result of drafting an issue.
type GenerateIssueOutput struct {
	Issue *domain.Issue // The stored issue
}

// GenerateIssue is the use case for turning a feature request into a
// stored issue draft.
type GenerateIssue struct {
	issues    domain.IssueRepository
	completer domain.Completer
	ids       domain.IDGenerator
	clock     domain.Clock
	logger    *zap.Logger
	language  string
}

// NewGenerateIssue creates a new GenerateIssue use case.
func NewGenerateIssue(issues domain.IssueRepository, completer domain.Completer, ids domain.IDGenerator, clock domain.Clock, logger *zap.Logger, language string) *GenerateIssue {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateIssue{
		issues:    issues,
		completer: completer,
		ids:       ids,
		clock:     clock,
		logger:    logger,
		language:  language,
	}
}

// Execute builds the prompt, calls the completion service, normalizes the
// reply and stores the resulting issue.
//
// Errors are *domain.ValidationError for blank input or a reply without
// title/user_story, *domain.FormatError for an unparseable reply and
// *domain.UpstreamError when the service call fails.
func (uc *GenerateIssue) Execute(ctx context.Context, in GenerateIssueInput) (*GenerateIssueOutput, error) {
	prompt, err := domain.BuildPrompt(in.Text, uc.language)
	if err != nil {
		return nil, err
	}

	raw, err := uc.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("completion received", zap.String("raw", raw))

	draft, err := domain.NormalizeResponse(raw)
	if err != nil {
		uc.logger.Warn("completion rejected", zap.Error(err), zap.String("raw", raw))
		return nil, err
	}
	uc.logger.Debug("completion parsed",
		zap.String("title", draft.Title),
		zap.String("story", draft.Story),
		zap.String("criteria", draft.Criteria),
		zap.String("requirements", draft.Requirements))

	issue := domain.NewIssue(uc.ids.NewID(), draft, uc.clock.Now())
	if err := uc.issues.Add(issue); err != nil {
		return nil, fmt.Errorf("save issue: %w", err)
	}

	uc.logger.Info("issue created", zap.String("id", issue.ID), zap.String("title", issue.Title))
	return &GenerateIssueOutput{Issue: issue}, nil
}
