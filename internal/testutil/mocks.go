// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/issue-drafter/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// SequentialIDs is a test double for domain.IDGenerator returning
// "<Prefix>1", "<Prefix>2", ...
type SequentialIDs struct {
	Prefix string
	n      int
}

// NewID returns the next ID in sequence.
func (s *SequentialIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%s%d", s.Prefix, s.n)
}

// MockIssueRepository is a test double for domain.IssueRepository.
// Fields are ordered to minimize memory padding.
type MockIssueRepository struct {
	Issues  map[string]*domain.Issue
	AddErr  error
	GetErr  error
	ListErr error
}

// NewMockIssueRepository creates a new MockIssueRepository with an initialized map.
func NewMockIssueRepository() *MockIssueRepository {
	return &MockIssueRepository{
		Issues: make(map[string]*domain.Issue),
	}
}

// Add stores an issue.
func (m *MockIssueRepository) Add(issue *domain.Issue) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	m.Issues[issue.ID] = issue
	return nil
}

// Get retrieves an issue by ID.
func (m *MockIssueRepository) Get(id string) (*domain.Issue, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	issue, ok := m.Issues[id]
	if !ok {
		return nil, nil
	}
	return issue, nil
}

// List returns all issues in no particular order.
func (m *MockIssueRepository) List() ([]*domain.Issue, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	issues := make([]*domain.Issue, 0, len(m.Issues))
	for _, i := range m.Issues {
		issues = append(issues, i)
	}
	return issues, nil
}

// MockRepositoryRegistry is a test double for domain.RepositoryRegistry.
// Fields are ordered to minimize memory padding.
type MockRepositoryRegistry struct {
	Repos     map[string]*domain.Repository
	AddErr    error
	DeleteErr error
	ListErr   error
}

// NewMockRepositoryRegistry creates a new MockRepositoryRegistry with an initialized map.
func NewMockRepositoryRegistry() *MockRepositoryRegistry {
	return &MockRepositoryRegistry{
		Repos: make(map[string]*domain.Repository),
	}
}

// Add stores a repository.
func (m *MockRepositoryRegistry) Add(repo *domain.Repository) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	m.Repos[repo.ID] = repo
	return nil
}

// Get retrieves a repository by ID.
func (m *MockRepositoryRegistry) Get(id string) (*domain.Repository, error) {
	repo, ok := m.Repos[id]
	if !ok {
		return nil, nil
	}
	return repo, nil
}

// List returns all repositories in no particular order.
func (m *MockRepositoryRegistry) List() ([]*domain.Repository, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	repos := make([]*domain.Repository, 0, len(m.Repos))
	for _, r := range m.Repos {
		repos = append(repos, r)
	}
	return repos, nil
}

// Delete removes a repository and reports whether it existed.
func (m *MockRepositoryRegistry) Delete(id string) (bool, error) {
	if m.DeleteErr != nil {
		return false, m.DeleteErr
	}
	if _, ok := m.Repos[id]; !ok {
		return false, nil
	}
	delete(m.Repos, id)
	return true, nil
}

// MockCompleter is a test double for domain.Completer.
type MockCompleter struct {
	Err       error
	Response  string
	GotPrompt string
	Calls     int
}

// Complete records the prompt and returns the configured response.
func (m *MockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.Calls++
	m.GotPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockRemoteReader is a test double for domain.RemoteReader.
type MockRemoteReader struct {
	Err     error
	URL     string
	GotPath string
}

// OriginURL returns the configured URL.
func (m *MockRemoteReader) OriginURL(path string) (string, error) {
	m.GotPath = path
	if m.Err != nil {
		return "", m.Err
	}
	return m.URL, nil
}
