package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboard/pkg/domain/model"
	"github.com/secmon-lab/offboard/pkg/domain/types"
	"github.com/secmon-lab/offboard/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// AuditOrg lists all repositories of the organization and collects their
// deploy keys and direct collaborators. The listing must complete, otherwise
// no result is returned. Repositories are then enriched by a bounded pool of
// workers; a failing repository is recorded in the result and does not stop
// the others. The result keeps the listing order.
//
// When ctx is done before all repositories are enriched, the remaining ones
// are marked as canceled and the partial result is returned together with an
// error.
func (x *UseCase) AuditOrg(ctx context.Context, input *model.AuditOrgInput) (*model.AuditResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.concurrency < 1 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "concurrency must be positive", goerr.V("concurrency", x.concurrency))
	}

	logger := logging.From(ctx)
	logger.Info("Starting organization audit",
		slog.Any("org", input.Org),
		slog.Int("per_page", x.perPage),
		slog.Int("concurrency", x.concurrency),
		slog.Duration("request_timeout", x.requestTimeout),
	)

	repos, err := x.ListOrgRepos(ctx, input.Org)
	if err != nil {
		return nil, err
	}

	result := &model.AuditResult{
		Org:   input.Org.String(),
		Repos: make([]*model.RepoAudit, len(repos)),
	}

	var eg errgroup.Group
	eg.SetLimit(x.concurrency)

	for i, repo := range repos {
		if err := ctx.Err(); err != nil {
			result.Repos[i] = skippedRepo(repo, err)
			continue
		}

		eg.Go(func() error {
			// ctx may have been canceled while waiting for a free worker
			if err := ctx.Err(); err != nil {
				result.Repos[i] = skippedRepo(repo, err)
				return nil
			}

			logger.Debug("Enriching repository",
				slog.Int("index", i+1),
				slog.Int("total", len(repos)),
				slog.String("repo", repo.Name),
			)
			result.Repos[i] = x.EnrichRepo(ctx, input.Org, repo)
			return nil
		})
	}
	_ = eg.Wait()

	failures := result.FailureCount()
	for _, r := range result.Repos {
		if !r.Failed() {
			continue
		}
		logger.Warn("Repository audit failure details",
			slog.Any("org", input.Org),
			slog.String("repo", r.Repository.Name),
			slog.String("deploy_keys_error", model.FailureReason(r.DeployKeysErr)),
			slog.String("collaborators_error", model.FailureReason(r.CollaboratorsErr)),
		)
	}

	logger.Info("Completed organization audit",
		slog.Any("org", input.Org),
		slog.Int("total_repos", len(repos)),
		slog.Int("success", len(repos)-failures),
		slog.Int("failure", failures),
		slog.Int("deploy_key_entries", len(result.DeployKeyReport())),
		slog.Int("collaborator_entries", len(result.CollaboratorReport())),
	)

	if err := ctx.Err(); err != nil {
		return result, goerr.Wrap(err, "organization audit interrupted",
			goerr.V("org", input.Org),
			goerr.V("failure_count", failures),
		)
	}

	return result, nil
}

func skippedRepo(repo *model.Repository, cause error) *model.RepoAudit {
	err := goerr.Wrap(cause, "repository not enriched before audit stopped", goerr.V("repo", repo.Name))
	return &model.RepoAudit{
		Repository:       repo,
		DeployKeysErr:    err,
		CollaboratorsErr: err,
	}
}
