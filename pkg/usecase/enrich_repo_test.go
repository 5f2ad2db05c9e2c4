package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/offboard/pkg/domain/mock"
	"github.com/secmon-lab/offboard/pkg/domain/model"
	"github.com/secmon-lab/offboard/pkg/domain/types"
	"github.com/secmon-lab/offboard/pkg/infra"
	"github.com/secmon-lab/offboard/pkg/usecase"
)

func TestEnrichRepo(t *testing.T) {
	mockGH := &mock.GitHubMock{
		ListDeployKeysFunc: func(ctx context.Context, ref *model.RepoRef) ([]*model.DeployKey, error) {
			gt.V(t, ref.Org).Equal(types.OrgName("dfds"))
			gt.V(t, ref.Repo).Equal(types.RepoName("a"))
			return []*model.DeployKey{{ID: 1, Title: "ci-bot"}}, nil
		},
		ListDirectCollaboratorsFunc: func(ctx context.Context, ref *model.RepoRef) ([]*model.Collaborator, error) {
			gt.V(t, ref.Repo).Equal(types.RepoName("a"))
			return []*model.Collaborator{{Login: "alice"}}, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

	audit := uc.EnrichRepo(context.Background(), "dfds", &model.Repository{Name: "a"})
	gt.False(t, audit.Failed())
	gt.V(t, audit.Repository.Name).Equal("a")
	gt.A(t, audit.DeployKeys).Length(1)
	gt.V(t, audit.DeployKeys[0].Title).Equal("ci-bot")
	gt.A(t, audit.Collaborators).Length(1)
	gt.V(t, audit.Collaborators[0].Login).Equal("alice")
}

func TestEnrichRepoPartialFailure(t *testing.T) {
	mockGH := &mock.GitHubMock{
		ListDeployKeysFunc: func(ctx context.Context, ref *model.RepoRef) ([]*model.DeployKey, error) {
			return nil, goerr.Wrap(types.ErrRepoForbidden, "failed to list deploy keys")
		},
		ListDirectCollaboratorsFunc: func(ctx context.Context, ref *model.RepoRef) ([]*model.Collaborator, error) {
			return []*model.Collaborator{{Login: "alice"}}, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

	audit := uc.EnrichRepo(context.Background(), "dfds", &model.Repository{Name: "a"})
	gt.True(t, audit.Failed())
	gt.True(t, errors.Is(audit.DeployKeysErr, types.ErrEnrichmentFailed))
	gt.True(t, errors.Is(audit.DeployKeysErr, types.ErrRepoForbidden))
	gt.NoError(t, audit.CollaboratorsErr)
	gt.A(t, audit.Collaborators).Length(1)
}

func TestEnrichRepoRequestTimeout(t *testing.T) {
	mockGH := &mock.GitHubMock{
		ListDeployKeysFunc: func(ctx context.Context, ref *model.RepoRef) ([]*model.DeployKey, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
		ListDirectCollaboratorsFunc: func(ctx context.Context, ref *model.RepoRef) ([]*model.Collaborator, error) {
			_, hasDeadline := ctx.Deadline()
			gt.True(t, hasDeadline)
			return nil, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)), usecase.WithRequestTimeout(10*time.Millisecond))

	audit := uc.EnrichRepo(context.Background(), "dfds", &model.Repository{Name: "slow"})
	gt.True(t, errors.Is(audit.DeployKeysErr, context.DeadlineExceeded))
	gt.V(t, model.FailureReason(audit.DeployKeysErr)).Equal("timed out")
	gt.NoError(t, audit.CollaboratorsErr)
}

func TestEnrichRepoInvalidName(t *testing.T) {
	mockGH := &mock.GitHubMock{}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

	audit := uc.EnrichRepo(context.Background(), "dfds", &model.Repository{Name: ""})
	gt.True(t, errors.Is(audit.DeployKeysErr, types.ErrInvalidOption))
	gt.True(t, errors.Is(audit.CollaboratorsErr, types.ErrInvalidOption))
	gt.A(t, mockGH.ListDeployKeysCalls()).Length(0)
	gt.A(t, mockGH.ListDirectCollaboratorsCalls()).Length(0)
}
