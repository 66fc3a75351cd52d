package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/issue-drafter/internal/domain"
)

// ImportRepositoryInput contains the parameters for importing a repository
// from a local clone.
type ImportRepositoryInput struct {
	Path string // Path inside a git working tree
}

// ImportRepositoryOutput contains the result of importing a repository.
type ImportRepositoryOutput struct {
	Repository *domain.Repository
	RemoteURL  string // The origin URL that was read
}

// ImportRepository registers the GitHub repository behind a local clone's
// origin remote.
type ImportRepository struct {
	remotes domain.RemoteReader
	add     *AddRepository
}

// NewImportRepository creates a new ImportRepository use case.
func NewImportRepository(remotes domain.RemoteReader, add *AddRepository) *ImportRepository {
	return &ImportRepository{
		remotes: remotes,
		add:     add,
	}
}

// Execute reads the origin remote and registers owner/name from it.
func (uc *ImportRepository) Execute(ctx context.Context, in ImportRepositoryInput) (*ImportRepositoryOutput, error) {
	path := in.Path
	if path == "" {
		path = "."
	}

	remote, err := uc.remotes.OriginURL(path)
	if err != nil {
		return nil, fmt.Errorf("read origin remote: %w", err)
	}

	owner, name, err := domain.ParseGitHubRemote(remote)
	if err != nil {
		return nil, err
	}

	out, err := uc.add.Execute(ctx, AddRepositoryInput{
		Name:  name,
		Owner: owner,
		URL:   fmt.Sprintf("https://github.com/%s/%s", owner, name),
	})
	if err != nil {
		return nil, err
	}
	return &ImportRepositoryOutput{Repository: out.Repository, RemoteURL: remote}, nil
}
