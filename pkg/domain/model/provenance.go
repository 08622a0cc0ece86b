package model

import (
	"fmt"
	"time"
)

// Request body keys carrying provenance
const (
	KeyVersionID        = "vcs.version_id"
	KeyVersionLink      = "vcs.version_link"
	KeyVersionTimestamp = "vcs.version_timestamp"
	KeyVersionMessage   = "vcs.version_message"
	KeyPRLink           = "vcs.pr_link"
	KeyPRID             = "vcs.pr_id"
	KeyPRTitle          = "vcs.pr_title"
	KeyPROwner          = "vcs.pr_owner"
)

// Provenance is the commit or pull request identity attached to a triggered run.
// It is one of CommitProvenance, PullRequestProvenance or NoProvenance.
type Provenance interface {
	Fields() map[string]any
	provenance()
}

// CommitProvenance is derived from the head commit of a push event
type CommitProvenance struct {
	VersionID        string
	VersionLink      string
	VersionTimestamp string
	VersionMessage   string
}

func (CommitProvenance) provenance() {}

// Fields returns the request body fields of the provenance
func (p CommitProvenance) Fields() map[string]any {
	return map[string]any{
		KeyVersionID:        p.VersionID,
		KeyVersionLink:      p.VersionLink,
		KeyVersionTimestamp: p.VersionTimestamp,
		KeyVersionMessage:   p.VersionMessage,
	}
}

// PullRequestProvenance is derived from the pull request of a pull request event
type PullRequestProvenance struct {
	VersionID        string
	VersionLink      string
	VersionTimestamp string
	VersionMessage   string
	PRLink           string
	PRID             int
	PRTitle          string
	PROwner          string
}

func (PullRequestProvenance) provenance() {}

// Fields returns the request body fields of the provenance
func (p PullRequestProvenance) Fields() map[string]any {
	return map[string]any{
		KeyVersionID:        p.VersionID,
		KeyVersionLink:      p.VersionLink,
		KeyVersionTimestamp: p.VersionTimestamp,
		KeyVersionMessage:   p.VersionMessage,
		KeyPRLink:           p.PRLink,
		KeyPRID:             p.PRID,
		KeyPRTitle:          p.PRTitle,
		KeyPROwner:          p.PROwner,
	}
}

// NoProvenance is used when the event carries neither a pull request nor a head commit,
// e.g. workflow_dispatch runs.
type NoProvenance struct{}

func (NoProvenance) provenance() {}

// Fields returns an empty field set
func (NoProvenance) Fields() map[string]any {
	return map[string]any{}
}

// ResolveProvenance derives the provenance of the event. Pull request data always wins
// over head commit data and replaces it entirely.
func ResolveProvenance(event *EventContext) Provenance {
	if event == nil {
		return NoProvenance{}
	}

	if pr := event.PullRequest; pr != nil {
		return PullRequestProvenance{
			VersionID:        pr.HeadSHA,
			VersionLink:      fmt.Sprintf("%s/commit/%s", pr.HeadHTMLURL, pr.HeadSHA),
			VersionTimestamp: formatTimestamp(pr.UpdatedAt),
			VersionMessage:   "Pull request from " + pr.HeadLabel,
			PRLink:           pr.HTMLURL,
			PRID:             pr.Number,
			PRTitle:          pr.Title,
			PROwner:          pr.UserLogin,
		}
	}

	if commit := event.HeadCommit; commit != nil {
		var repoURL string
		if event.Repo != nil {
			repoURL = event.Repo.HTMLURL
		}
		return CommitProvenance{
			VersionID:        commit.ID,
			VersionLink:      fmt.Sprintf("%s/tree/%s", repoURL, commit.ID),
			VersionTimestamp: formatTimestamp(commit.Timestamp),
			VersionMessage:   commit.Message,
		}
	}

	return NoProvenance{}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
