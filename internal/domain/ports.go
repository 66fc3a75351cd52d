package domain

import (
	"context"
	"time"
)

// IssueRepository manages issue persistence.
type IssueRepository interface {
	// Add stores an issue, replacing any issue with the same ID.
	Add(issue *Issue) error

	// Get retrieves an issue by ID. Returns nil if not found.
	Get(id string) (*Issue, error)

	// List returns all issues.
	List() ([]*Issue, error)
}

// RepositoryRegistry manages the repositories known to the application.
type RepositoryRegistry interface {
	// Add stores a repository, replacing any repository with the same ID.
	Add(repo *Repository) error

	// Get retrieves a repository by ID. Returns nil if not found.
	Get(id string) (*Repository, error)

	// List returns all repositories.
	List() ([]*Repository, error)

	// Delete removes a repository and reports whether it existed.
	Delete(id string) (bool, error)
}

// Completer sends a prompt to a text generation service.
type Completer interface {
	// Complete returns the model's reply to prompt.
	Complete(ctx context.Context, prompt string) (string, error)
}

// RemoteReader resolves the origin remote URL of a local git clone.
type RemoteReader interface {
	// OriginURL returns the first URL of the "origin" remote at path.
	OriginURL(path string) (string, error)
}

// IDGenerator produces unique record identifiers.
type IDGenerator interface {
	NewID() string
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
