package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/offboard/pkg/domain/mock"
	"github.com/secmon-lab/offboard/pkg/domain/model"
	"github.com/secmon-lab/offboard/pkg/domain/types"
	"github.com/secmon-lab/offboard/pkg/infra"
	"github.com/secmon-lab/offboard/pkg/usecase"
)

func TestListOrgReposIndependentOfPageSize(t *testing.T) {
	for _, total := range []int{0, 1, 7, 100, 101} {
		names := repoNames(total)

		for _, perPage := range []int{1, 2, 3, 10, 99, 100} {
			mockGH := &mock.GitHubMock{
				ListOrgReposFunc: pagedRepos(names),
			}
			uc := usecase.New(infra.New(infra.WithGitHub(mockGH)), usecase.WithPerPage(perPage))

			repos, err := uc.ListOrgRepos(context.Background(), "dfds")
			gt.NoError(t, err)
			gt.A(t, repos).Length(total)
			for i, repo := range repos {
				gt.V(t, repo.Name).Equal(names[i])
			}

			wantCalls := (total + perPage - 1) / perPage
			if wantCalls == 0 {
				wantCalls = 1
			}
			gt.A(t, mockGH.ListOrgReposCalls()).Length(wantCalls)
			for _, call := range mockGH.ListOrgReposCalls() {
				gt.V(t, call.Input.Org).Equal(types.OrgName("dfds"))
				gt.V(t, call.Input.PerPage).Equal(perPage)
			}
		}
	}
}

func TestListOrgReposStopsWithoutNextPage(t *testing.T) {
	mockGH := &mock.GitHubMock{
		ListOrgReposFunc: func(ctx context.Context, input *model.ListOrgReposInput) (*model.RepositoryPage, error) {
			gt.V(t, input.Page).Equal(1)
			return &model.RepositoryPage{
				Repositories: []*model.Repository{{Name: "a"}, {Name: "b"}},
			}, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

	repos := gt.R1(uc.ListOrgRepos(context.Background(), "dfds")).NoError(t)
	gt.A(t, repos).Length(2)
	gt.A(t, mockGH.ListOrgReposCalls()).Length(1)
}

func TestListOrgReposPageFailure(t *testing.T) {
	mockGH := &mock.GitHubMock{
		ListOrgReposFunc: func(ctx context.Context, input *model.ListOrgReposInput) (*model.RepositoryPage, error) {
			if input.Page == 1 {
				return &model.RepositoryPage{
					Repositories: []*model.Repository{{Name: "a"}},
					NextPage:     2,
				}, nil
			}
			return nil, errors.New("malformed page")
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

	repos, err := uc.ListOrgRepos(context.Background(), "dfds")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrListingIncomplete))
	gt.S(t, err.Error()).Contains("malformed page")
	gt.V(t, len(repos)).Equal(0)
}

func TestListOrgReposCursorNotAdvancing(t *testing.T) {
	mockGH := &mock.GitHubMock{
		ListOrgReposFunc: func(ctx context.Context, input *model.ListOrgReposInput) (*model.RepositoryPage, error) {
			return &model.RepositoryPage{
				Repositories: []*model.Repository{{Name: "a"}},
				NextPage:     input.Page,
			}, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

	_, err := uc.ListOrgRepos(context.Background(), "dfds")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrListingIncomplete))
	gt.A(t, mockGH.ListOrgReposCalls()).Length(1)
}

func TestListOrgReposMalformedEntries(t *testing.T) {
	t.Run("nil page", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListOrgReposFunc: func(ctx context.Context, input *model.ListOrgReposInput) (*model.RepositoryPage, error) {
				return nil, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		_, err := uc.ListOrgRepos(context.Background(), "dfds")
		gt.True(t, errors.Is(err, types.ErrListingIncomplete))
	})

	t.Run("repository without name", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListOrgReposFunc: func(ctx context.Context, input *model.ListOrgReposInput) (*model.RepositoryPage, error) {
				return &model.RepositoryPage{Repositories: []*model.Repository{{Name: "a"}, {Name: ""}}}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		_, err := uc.ListOrgRepos(context.Background(), "dfds")
		gt.True(t, errors.Is(err, types.ErrListingIncomplete))
	})
}

func TestListOrgReposDropsDuplicates(t *testing.T) {
	// a repository created during listing shifts "b" onto the second page
	pages := map[int]*model.RepositoryPage{
		1: {Repositories: []*model.Repository{{Name: "a"}, {Name: "b"}}, NextPage: 2},
		2: {Repositories: []*model.Repository{{Name: "b"}, {Name: "c"}}},
	}
	mockGH := &mock.GitHubMock{
		ListOrgReposFunc: func(ctx context.Context, input *model.ListOrgReposInput) (*model.RepositoryPage, error) {
			return pages[input.Page], nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH)), usecase.WithPerPage(2))

	repos := gt.R1(uc.ListOrgRepos(context.Background(), "dfds")).NoError(t)
	gt.A(t, repos).Length(3)
	gt.V(t, repos[0].Name).Equal("a")
	gt.V(t, repos[1].Name).Equal("b")
	gt.V(t, repos[2].Name).Equal("c")
}

func TestListOrgReposInvalidOptions(t *testing.T) {
	t.Run("no GitHub client", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.ListOrgRepos(context.Background(), "dfds")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("per page out of range", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)), usecase.WithPerPage(0))
		_, err := uc.ListOrgRepos(context.Background(), "dfds")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
		gt.A(t, mockGH.ListOrgReposCalls()).Length(0)
	})
}
