package jsonstore

import (
	"slices"
	"strings"

	"github.com/runoshun/issue-drafter/internal/domain"
	"go.uber.org/zap"
)

// Ensure RepoStore implements domain.RepositoryRegistry.
var _ domain.RepositoryRegistry = (*RepoStore)(nil)

// RepoStore implements domain.RepositoryRegistry using repositories.json.
type RepoStore struct {
	m *fileMap[domain.Repository]
}

// NewRepoStore opens the repository registry at path.
// The file does not need to exist; it will be created on first write.
func NewRepoStore(path string, logger *zap.Logger) *RepoStore {
	return &RepoStore{m: openFileMap[domain.Repository](path, logger)}
}

// Add stores a repository, replacing any repository with the same ID.
func (s *RepoStore) Add(repo *domain.Repository) error {
	c := *repo
	return s.m.put(repo.ID, &c)
}

// Get retrieves a repository by ID. Returns nil if not found.
func (s *RepoStore) Get(id string) (*domain.Repository, error) {
	r, ok := s.m.get(id)
	if !ok {
		return nil, nil
	}
	c := *r
	c.ID = id
	return &c, nil
}

// List returns all repositories ordered by creation time, then ID.
func (s *RepoStore) List() ([]*domain.Repository, error) {
	var repos []*domain.Repository
	s.m.each(func(id string, r *domain.Repository) {
		c := *r
		c.ID = id
		repos = append(repos, &c)
	})

	slices.SortFunc(repos, func(a, b *domain.Repository) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return repos, nil
}

// Delete removes a repository and reports whether it existed.
func (s *RepoStore) Delete(id string) (bool, error) {
	return s.m.remove(id)
}
