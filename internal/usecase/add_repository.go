package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/issue-drafter/internal/domain"
)

// AddRepositoryInput contains the parameters for registering a repository.
type AddRepositoryInput struct {
	Name  string // Repository name (required)
	Owner string // Owner login (required)
	URL   string // Optional URL; synthesized from owner/name when not a github.com URL
}

// AddRepositoryOutput contains the result of registering a repository.
type AddRepositoryOutput struct {
	Repository *domain.Repository
}

// AddRepository is the use case for registering a repository.
type AddRepository struct {
	repos domain.RepositoryRegistry
	ids   domain.IDGenerator
	clock domain.Clock
}

// NewAddRepository creates a new AddRepository use case.
func NewAddRepository(repos domain.RepositoryRegistry, ids domain.IDGenerator, clock domain.Clock) *AddRepository {
	return &AddRepository{
		repos: repos,
		ids:   ids,
		clock: clock,
	}
}

// Execute validates the input, normalizes the URL and stores the repository.
func (uc *AddRepository) Execute(_ context.Context, in AddRepositoryInput) (*AddRepositoryOutput, error) {
	name := strings.TrimSpace(in.Name)
	owner := strings.TrimSpace(in.Owner)

	var missing []string
	if name == "" {
		missing = append(missing, domain.FieldName)
	}
	if owner == "" {
		missing = append(missing, domain.FieldOwner)
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	repo := &domain.Repository{
		ID:        uc.ids.NewID(),
		Name:      name,
		Owner:     owner,
		URL:       domain.NormalizeRepoURL(in.URL, owner, name),
		CreatedAt: uc.clock.Now(),
	}
	if err := uc.repos.Add(repo); err != nil {
		return nil, fmt.Errorf("save repository: %w", err)
	}
	return &AddRepositoryOutput{Repository: repo}, nil
}
