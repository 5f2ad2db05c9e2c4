package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboard/pkg/domain/model"
	"github.com/secmon-lab/offboard/pkg/domain/types"
	"github.com/secmon-lab/offboard/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// EnrichRepo fetches deploy keys and direct collaborators of one repository.
// Failures are recorded in the returned RepoAudit instead of being returned.
func (x *UseCase) EnrichRepo(ctx context.Context, org types.OrgName, repo *model.Repository) *model.RepoAudit {
	audit := &model.RepoAudit{Repository: repo}

	ref := &model.RepoRef{Org: org, Repo: types.RepoName(repo.Name)}
	if err := ref.Validate(); err != nil {
		audit.DeployKeysErr = err
		audit.CollaboratorsErr = err
		return audit
	}
	if x.clients.GitHub() == nil {
		err := goerr.Wrap(types.ErrInvalidOption, "GitHub client is required")
		audit.DeployKeysErr = err
		audit.CollaboratorsErr = err
		return audit
	}

	logger := logging.From(ctx)

	// Both goroutines always return nil; each writes only its own fields.
	var eg errgroup.Group
	eg.Go(func() error {
		keys, err := callWithTimeout(ctx, x.requestTimeout, func(ctx context.Context) ([]*model.DeployKey, error) {
			return x.clients.GitHub().ListDeployKeys(ctx, ref)
		})
		if err != nil {
			audit.DeployKeysErr = enrichmentError(err, "failed to fetch deploy keys", ref)
			logger.Warn("Failed to fetch deploy keys",
				slog.Any("org", org),
				slog.String("repo", repo.Name),
				slog.Any("error", err),
			)
			return nil
		}
		audit.DeployKeys = keys
		return nil
	})
	eg.Go(func() error {
		collaborators, err := callWithTimeout(ctx, x.requestTimeout, func(ctx context.Context) ([]*model.Collaborator, error) {
			return x.clients.GitHub().ListDirectCollaborators(ctx, ref)
		})
		if err != nil {
			audit.CollaboratorsErr = enrichmentError(err, "failed to fetch collaborators", ref)
			logger.Warn("Failed to fetch collaborators",
				slog.Any("org", org),
				slog.String("repo", repo.Name),
				slog.Any("error", err),
			)
			return nil
		}
		audit.Collaborators = collaborators
		return nil
	})
	_ = eg.Wait()

	logger.Debug("Enriched repository",
		slog.Any("org", org),
		slog.String("repo", repo.Name),
		slog.Int("deploy_keys", len(audit.DeployKeys)),
		slog.Int("collaborators", len(audit.Collaborators)),
	)

	return audit
}

func enrichmentError(err error, msg string, ref *model.RepoRef) error {
	return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrEnrichmentFailed, err), msg,
		goerr.V("org", ref.Org),
		goerr.V("repo", ref.Repo),
	)
}
