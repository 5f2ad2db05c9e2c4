package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/secmon-lab/offboard/pkg/domain/model"
)

// GitHub is the subset of the GitHub REST API the audit needs. Implementations
// classify 404 and 403 responses as types.ErrRepoNotFound and
// types.ErrRepoForbidden.
type GitHub interface {
	// ListOrgRepos fetches one page of GET /orgs/{org}/repos.
	ListOrgRepos(ctx context.Context, input *model.ListOrgReposInput) (*model.RepositoryPage, error)
	// ListDeployKeys fetches all deploy keys of a repository.
	ListDeployKeys(ctx context.Context, ref *model.RepoRef) ([]*model.DeployKey, error)
	// ListDirectCollaborators fetches collaborators with affiliation=direct.
	ListDirectCollaborators(ctx context.Context, ref *model.RepoRef) ([]*model.Collaborator, error)
}
