package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"full https url", "https://github.com/acme/widgets", "https://github.com/acme/widgets"},
		{"missing scheme", "github.com/acme/widgets", "https://github.com/acme/widgets"},
		{"trailing slash and .git", "https://github.com/acme/widgets.git/", "https://github.com/acme/widgets"},
		{"surrounding spaces", "  github.com/acme/widgets  ", "https://github.com/acme/widgets"},
		{"not github", "https://gitlab.com/acme/widgets", "https://github.com/acme/widgets"},
		{"empty", "", "https://github.com/acme/widgets"},
		{"http kept", "http://github.com/acme/widgets", "http://github.com/acme/widgets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRepoURL(tt.raw, "acme", "widgets"))
		})
	}
}

func TestRepository_Views(t *testing.T) {
	repo := &Repository{Name: "widgets", Owner: "acme", URL: "https://github.com/acme/widgets"}

	assert.Equal(t, "acme/widgets", repo.FullName())
	assert.Equal(t, "https://github.com/acme/widgets/issues/new", repo.NewIssueURL())
}

func TestRepository_NewIssueURLFor(t *testing.T) {
	repo := &Repository{Name: "widgets", Owner: "acme", URL: "https://github.com/acme/widgets"}
	issue := &Issue{Title: "Add login", Story: "As a user, I want to log in"}

	u, err := url.Parse(repo.NewIssueURLFor(issue))
	require.NoError(t, err)

	assert.Equal(t, "/acme/widgets/issues/new", u.Path)
	assert.Equal(t, "Add login", u.Query().Get("title"))
	assert.Equal(t, issue.Markdown(), u.Query().Get("body"))
}

func TestParseGitHubRemote(t *testing.T) {
	tests := []struct {
		remote    string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{"https://github.com/acme/widgets.git", "acme", "widgets", false},
		{"https://github.com/acme/widgets", "acme", "widgets", false},
		{"git@github.com:acme/widgets.git", "acme", "widgets", false},
		{"ssh://git@github.com/acme/widgets", "acme", "widgets", false},
		{"https://gitlab.com/acme/widgets.git", "", "", true},
		{"https://github.com/acme", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			owner, name, err := ParseGitHubRemote(tt.remote)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
