package model

import (
	"context"
	"errors"

	"github.com/secmon-lab/offboard/pkg/domain/types"
)

// RepoAudit holds the access facts collected for one repository. The deploy
// key and collaborator queries fail independently, so each has its own error.
type RepoAudit struct {
	Repository       *Repository
	DeployKeys       []*DeployKey
	Collaborators    []*Collaborator
	DeployKeysErr    error
	CollaboratorsErr error
}

// Failed reports whether any sub-query of the repository failed.
func (x *RepoAudit) Failed() bool {
	return x.DeployKeysErr != nil || x.CollaboratorsErr != nil
}

// AuditResult is the outcome of one audit run. Repos follows the order of the
// organization repository listing.
type AuditResult struct {
	Org   string
	Repos []*RepoAudit
}

type DeployKeyEntry struct {
	Repo       string       `json:"repo"`
	DeployKeys []*DeployKey `json:"deploy_keys,omitempty"`
	Error      string       `json:"error,omitempty"`
}

type CollaboratorEntry struct {
	Repo          string          `json:"repo"`
	Collaborators []*Collaborator `json:"collaborators,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// DeployKeyReport lists repositories that have at least one deploy key or
// whose deploy key query failed. Clean repositories are omitted.
func (x *AuditResult) DeployKeyReport() []*DeployKeyEntry {
	var entries []*DeployKeyEntry
	for _, r := range x.Repos {
		switch {
		case r.DeployKeysErr != nil:
			entries = append(entries, &DeployKeyEntry{
				Repo:  r.Repository.Name,
				Error: FailureReason(r.DeployKeysErr),
			})
		case len(r.DeployKeys) > 0:
			entries = append(entries, &DeployKeyEntry{
				Repo:       r.Repository.Name,
				DeployKeys: r.DeployKeys,
			})
		}
	}
	return entries
}

// CollaboratorReport lists repositories that have at least one direct
// collaborator or whose collaborator query failed.
func (x *AuditResult) CollaboratorReport() []*CollaboratorEntry {
	var entries []*CollaboratorEntry
	for _, r := range x.Repos {
		switch {
		case r.CollaboratorsErr != nil:
			entries = append(entries, &CollaboratorEntry{
				Repo:  r.Repository.Name,
				Error: FailureReason(r.CollaboratorsErr),
			})
		case len(r.Collaborators) > 0:
			entries = append(entries, &CollaboratorEntry{
				Repo:          r.Repository.Name,
				Collaborators: r.Collaborators,
			})
		}
	}
	return entries
}

// FailureCount returns the number of repositories with at least one failed
// sub-query.
func (x *AuditResult) FailureCount() int {
	var n int
	for _, r := range x.Repos {
		if r.Failed() {
			n++
		}
	}
	return n
}

// FailureReason returns a short, human readable reason for a failed
// sub-query. Unclassified errors are reported with their full message.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, types.ErrRepoNotFound):
		return "repository not found"
	case errors.Is(err, types.ErrRepoForbidden):
		return "access forbidden"
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return err.Error()
	}
}
