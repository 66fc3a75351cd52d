package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// newIssuePath is appended to a repository URL to open GitHub's issue form.
const newIssuePath = "/issues/new"

// Repository is a GitHub repository that issue drafts can be filed against.
// Fields are ordered to minimize memory padding.
type Repository struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"-"` // stored as map key, not in value
	Name      string    `json:"name"`
	Owner     string    `json:"owner"`
	URL       string    `json:"url"`
}

// FullName returns "owner/name".
func (r *Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// NewIssueURL returns the URL of the repository's new-issue form.
func (r *Repository) NewIssueURL() string {
	return strings.TrimSuffix(r.URL, "/") + newIssuePath
}

// NewIssueURLFor returns the new-issue form URL pre-filled with the
// issue's title and Markdown body.
func (r *Repository) NewIssueURLFor(issue *Issue) string {
	q := url.Values{}
	q.Set("title", issue.Title)
	q.Set("body", issue.Markdown())
	return r.NewIssueURL() + "?" + q.Encode()
}

// NormalizeRepoURL applies the registration heuristic to a user-supplied URL.
// A missing scheme becomes https://. Anything that does not point at
// github.com is replaced with https://github.com/{owner}/{name}.
func NormalizeRepoURL(raw, owner, name string) string {
	u := strings.TrimSpace(raw)
	if u != "" && !strings.Contains(u, "://") {
		u = "https://" + u
	}
	if !strings.Contains(u, "github.com") {
		return fmt.Sprintf("https://github.com/%s/%s", owner, name)
	}
	u = strings.TrimSuffix(u, "/")
	u = strings.TrimSuffix(u, ".git")
	return u
}

// ParseGitHubRemote extracts owner and name from a GitHub remote URL.
// Both https (https://github.com/o/n.git) and scp-like
// (git@github.com:o/n.git) forms are accepted.
func ParseGitHubRemote(remote string) (owner, name string, err error) {
	s := strings.TrimSpace(remote)
	idx := strings.Index(s, "github.com")
	if idx < 0 {
		return "", "", fmt.Errorf("not a github.com remote: %q", remote)
	}
	s = s[idx+len("github.com"):]
	s = strings.TrimLeft(s, ":/")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "/"), ".git")

	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot parse owner/name from remote %q", remote)
	}
	return parts[0], parts[1], nil
}
