package model

import (
	"strings"
	"time"
)

// EventContext is the immutable view of the workflow run that triggered the invocation.
// It is built once from the runner environment and the event payload.
type EventContext struct {
	EventName  string // GITHUB_EVENT_NAME
	Ref        string // GITHUB_REF, e.g. refs/heads/main or refs/tags/v1.0.0
	SHA        string // GITHUB_SHA
	Repository string // GITHUB_REPOSITORY, "owner/repo"
	Actor      string // GITHUB_ACTOR

	Repo        *Repository  // payload.repository
	PullRequest *PullRequest // payload.pull_request, nil unless a pull request event
	HeadCommit  *HeadCommit  // payload.head_commit, nil unless a push event
}

// Repository holds the fields of the payload repository used for provenance and status updates
type Repository struct {
	Name        string
	OwnerName   string // display name, often empty for users
	OwnerLogin  string
	HTMLURL     string
	StatusesURL string // hypermedia template, e.g. https://api.github.com/repos/o/r/statuses/{sha}
}

// PullRequest holds the pull request fields used for provenance
type PullRequest struct {
	Number      int
	Title       string
	HTMLURL     string
	UserLogin   string
	UpdatedAt   time.Time
	HeadSHA     string
	HeadLabel   string
	HeadHTMLURL string // html url of the head repository
}

// HeadCommit holds the head commit fields of a push event used for provenance
type HeadCommit struct {
	ID        string
	Message   string
	Timestamp time.Time
}

// RepoOwner returns the owner part of the "owner/repo" slug
func (e *EventContext) RepoOwner() string {
	owner, _, _ := strings.Cut(e.Repository, "/")
	return owner
}

// RepoName returns the repository part of the "owner/repo" slug
func (e *EventContext) RepoName() string {
	_, name, _ := strings.Cut(e.Repository, "/")
	return name
}

// Branch returns the ref with any refs/heads/ prefix removed. Tag refs are kept as is.
func (e *EventContext) Branch() string {
	return strings.TrimPrefix(e.Ref, "refs/heads/")
}

// StatusOwner returns the owner used for commit status updates.
// The display name is preferred and the login is the fallback.
func (e *EventContext) StatusOwner() string {
	if e.Repo == nil {
		return e.RepoOwner()
	}
	if e.Repo.OwnerName != "" {
		return e.Repo.OwnerName
	}
	return e.Repo.OwnerLogin
}

// StatusRepo returns the repository name used for commit status updates
func (e *EventContext) StatusRepo() string {
	if e.Repo == nil || e.Repo.Name == "" {
		return e.RepoName()
	}
	return e.Repo.Name
}

// StatusesURL returns the statuses url template of the payload repository, if any
func (e *EventContext) StatusesURL() string {
	if e.Repo == nil {
		return ""
	}
	return e.Repo.StatusesURL
}
