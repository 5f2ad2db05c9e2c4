package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboard/pkg/domain/model"
	"github.com/secmon-lab/offboard/pkg/domain/types"
	"github.com/secmon-lab/offboard/pkg/utils/logging"
)

// ListOrgRepos drains the paged repository listing of the organization. Any
// page failure aborts with types.ErrListingIncomplete; a partial set is never
// returned.
func (x *UseCase) ListOrgRepos(ctx context.Context, org types.OrgName) ([]*model.Repository, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is required")
	}
	if x.perPage < 1 || x.perPage > model.MaxPerPage {
		return nil, goerr.Wrap(types.ErrInvalidOption, "per page out of range", goerr.V("per_page", x.perPage))
	}

	logger := logging.From(ctx)

	var repos []*model.Repository
	seen := make(map[string]struct{})
	page := 1

	for {
		input := &model.ListOrgReposInput{
			Org:     org,
			Page:    page,
			PerPage: x.perPage,
		}

		resp, err := callWithTimeout(ctx, x.requestTimeout, func(ctx context.Context) (*model.RepositoryPage, error) {
			return x.clients.GitHub().ListOrgRepos(ctx, input)
		})
		if err != nil {
			return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrListingIncomplete, err), "failed to list organization repos",
				goerr.V("org", org),
				goerr.V("page", page),
				goerr.V("fetched", len(repos)),
			)
		}
		if resp == nil {
			return nil, goerr.Wrap(types.ErrListingIncomplete, "empty response for repository page",
				goerr.V("org", org),
				goerr.V("page", page),
			)
		}

		for _, repo := range resp.Repositories {
			if repo == nil || repo.Name == "" {
				return nil, goerr.Wrap(types.ErrListingIncomplete, "repository without name in listing",
					goerr.V("org", org),
					goerr.V("page", page),
				)
			}
			if _, ok := seen[repo.Name]; ok {
				logger.Warn("Skipping duplicated repository in listing",
					slog.Any("org", org),
					slog.String("repo", repo.Name),
					slog.Int("page", page),
				)
				continue
			}
			seen[repo.Name] = struct{}{}
			repos = append(repos, repo)
		}

		if resp.NextPage == 0 {
			break
		}
		if resp.NextPage <= page {
			return nil, goerr.Wrap(types.ErrListingIncomplete, "next page cursor does not advance",
				goerr.V("org", org),
				goerr.V("page", page),
				goerr.V("next_page", resp.NextPage),
			)
		}
		page = resp.NextPage
	}

	logger.Info("Listed organization repositories",
		slog.Any("org", org),
		slog.Int("total_repos", len(repos)),
		slog.Int("pages", page),
	)

	return repos, nil
}
