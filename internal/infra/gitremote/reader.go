// Package gitremote reads remote configuration from local git clones.
package gitremote

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/runoshun/issue-drafter/internal/domain"
)

// Ensure Reader implements domain.RemoteReader.
var _ domain.RemoteReader = (*Reader)(nil)

// ErrNoOrigin is returned when the clone has no "origin" remote.
var ErrNoOrigin = errors.New(`no "origin" remote`)

// Reader implements domain.RemoteReader with go-git.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// OriginURL returns the first URL of the "origin" remote of the clone
// containing path. Parent directories are searched for the .git directory.
func (r *Reader) OriginURL(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open git repository %s: %w", path, err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", ErrNoOrigin
		}
		return "", fmt.Errorf("read origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ErrNoOrigin
	}
	return urls[0], nil
}
