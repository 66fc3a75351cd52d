package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/issue-drafter/internal/app"
	"github.com/runoshun/issue-drafter/internal/domain"
	"github.com/runoshun/issue-drafter/internal/infra/config"
	"github.com/runoshun/issue-drafter/internal/testutil"
	"github.com/spf13/cobra"
)

var testNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

// testDeps bundles the mocks behind a test container.
type testDeps struct {
	issues    *testutil.MockIssueRepository
	repos     *testutil.MockRepositoryRegistry
	completer *testutil.MockCompleter
	remotes   *testutil.MockRemoteReader
}

// newTestContainer creates an opened app.Container backed by mocks.
// Config commands get a real loader rooted in a temp directory.
func newTestContainer(t *testing.T) (*app.Container, *testDeps) {
	t.Helper()

	deps := &testDeps{
		issues:    testutil.NewMockIssueRepository(),
		repos:     testutil.NewMockRepositoryRegistry(),
		completer: &testutil.MockCompleter{},
		remotes:   &testutil.MockRemoteReader{},
	}
	container := app.NewWithDeps(
		domain.NewDefaultConfig(),
		deps.issues,
		deps.repos,
		deps.completer,
		deps.remotes,
		&testutil.SequentialIDs{Prefix: "id-"},
		&testutil.MockClock{NowTime: testNow},
		nil,
	)

	dir := t.TempDir()
	loader := config.NewLoaderWithGlobalDir(filepath.Join(dir, domain.ProjectConfigFileName), filepath.Join(dir, "global"))
	container.ConfigLoader = loader
	container.ConfigManager = config.NewManager(loader)
	return container, deps
}

// execute runs cmd with args and returns stdout.
func execute(cmd *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func addTestIssue(deps *testDeps, id, title string, at time.Time) *domain.Issue {
	issue := domain.NewIssue(id, domain.Draft{
		Title:        title,
		Story:        "As a user, I want " + title,
		Criteria:     "works\nis fast",
		Requirements: "use the store",
	}, at)
	deps.issues.Issues[id] = issue
	return issue
}
