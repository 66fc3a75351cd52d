package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/runoshun/issue-drafter/internal/domain"
)

// ListRepositoriesInput contains the parameters for listing repositories.
type ListRepositoriesInput struct{}

// ListRepositoriesOutput contains the result of listing repositories.
type ListRepositoriesOutput struct {
	Repositories []*domain.Repository // Sorted by owner/name
}

// ListRepositories is the use case for listing registered repositories.
type ListRepositories struct {
	repos domain.RepositoryRegistry
}

// NewListRepositories creates a new ListRepositories use case.
func NewListRepositories(repos domain.RepositoryRegistry) *ListRepositories {
	return &ListRepositories{
		repos: repos,
	}
}

// Execute returns all repositories sorted case-insensitively by full name.
func (uc *ListRepositories) Execute(_ context.Context, _ ListRepositoriesInput) (*ListRepositoriesOutput, error) {
	repos, err := uc.repos.List()
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}

	slices.SortFunc(repos, func(a, b *domain.Repository) int {
		if c := strings.Compare(strings.ToLower(a.FullName()), strings.ToLower(b.FullName())); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return &ListRepositoriesOutput{Repositories: repos}, nil
}
