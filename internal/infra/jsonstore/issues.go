package jsonstore

import (
	"slices"
	"strings"

	"github.com/runoshun/issue-drafter/internal/domain"
	"go.uber.org/zap"
)

// Ensure IssueStore implements domain.IssueRepository.
var _ domain.IssueRepository = (*IssueStore)(nil)

// IssueStore implements domain.IssueRepository using issues.json.
type IssueStore struct {
	m *fileMap[domain.Issue]
}

// NewIssueStore opens the issue store at path.
// The file does not need to exist; it will be created on first write.
func NewIssueStore(path string, logger *zap.Logger) *IssueStore {
	return &IssueStore{m: openFileMap[domain.Issue](path, logger)}
}

// Add stores an issue, replacing any issue with the same ID.
func (s *IssueStore) Add(issue *domain.Issue) error {
	c := *issue
	return s.m.put(issue.ID, &c)
}

// Get retrieves an issue by ID. Returns nil if not found.
func (s *IssueStore) Get(id string) (*domain.Issue, error) {
	r, ok := s.m.get(id)
	if !ok {
		return nil, nil
	}
	c := *r
	c.ID = id
	return &c, nil
}

// List returns all issues ordered by creation time, then ID.
func (s *IssueStore) List() ([]*domain.Issue, error) {
	var issues []*domain.Issue
	s.m.each(func(id string, r *domain.Issue) {
		c := *r
		c.ID = id
		issues = append(issues, &c)
	})

	slices.SortFunc(issues, func(a, b *domain.Issue) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return issues, nil
}
