package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/issue-drafter/internal/domain"
)

// DeleteRepositoryInput contains the parameters for removing a repository.
type DeleteRepositoryInput struct {
	ID string
}

// DeleteRepositoryOutput contains the result of removing a repository.
// Currently empty, but defined for future extensibility.
type DeleteRepositoryOutput struct{}

// DeleteRepository is the use case for removing a repository.
type DeleteRepository struct {
	repos domain.RepositoryRegistry
}

// NewDeleteRepository creates a new DeleteRepository use case.
func NewDeleteRepository(repos domain.RepositoryRegistry) *DeleteRepository {
	return &DeleteRepository{
		repos: repos,
	}
}

// Execute removes the repository or returns a *domain.NotFoundError.
func (uc *DeleteRepository) Execute(_ context.Context, in DeleteRepositoryInput) (*DeleteRepositoryOutput, error) {
	existed, err := uc.repos.Delete(in.ID)
	if err != nil {
		return nil, fmt.Errorf("delete repository: %w", err)
	}
	if !existed {
		return nil, &domain.NotFoundError{Kind: "repository", ID: in.ID}
	}
	return &DeleteRepositoryOutput{}, nil
}
