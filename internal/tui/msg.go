package tui

import "github.com/runoshun/issue-drafter/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgIssuesLoaded is sent when issues are loaded from the store.
type MsgIssuesLoaded struct {
	Issues []*domain.Issue
}

func (MsgIssuesLoaded) sealed() {}

// MsgReposLoaded is sent when registered repositories are loaded.
type MsgReposLoaded struct {
	Repos []*domain.Repository
}

func (MsgReposLoaded) sealed() {}

// MsgIssueCreated is sent when a new draft was generated and stored.
type MsgIssueCreated struct {
	Issue *domain.Issue
}

func (MsgIssueCreated) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
