package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/offboard/pkg/cli/config"
	"github.com/secmon-lab/offboard/pkg/domain/model"
	"github.com/secmon-lab/offboard/pkg/infra"
	"github.com/secmon-lab/offboard/pkg/infra/gh"
	"github.com/secmon-lab/offboard/pkg/usecase"
	"github.com/secmon-lab/offboard/pkg/utils/logging"
	"github.com/secmon-lab/offboard/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func auditCommand() *cli.Command {
	var (
		github config.GitHub
		audit  config.Audit
		sentry config.Sentry
	)

	return &cli.Command{
		Name:    "audit",
		Aliases: []string{"a"},
		Usage:   "Report deploy keys and direct collaborators of every repository in the organization",
		Flags: slice.Flatten(
			github.Flags(),
			audit.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = logging.WithRun(ctx)
			logging.From(ctx).Info("starting audit",
				slog.Any("GitHub", github),
				slog.Any("Audit", &audit),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			return runAudit(ctx, &github, &audit)
		},
	}
}

func runAudit(ctx context.Context, github *config.GitHub, audit *config.Audit) error {
	if err := audit.Validate(); err != nil {
		return err
	}
	if err := github.Validate(); err != nil {
		return err
	}

	writeReport, err := audit.Writer()
	if err != nil {
		return err
	}

	// Keys and collaborators pages are always fetched at the API maximum;
	// --per-page only governs the repository listing.
	ghClient, err := github.NewClient(gh.WithPerPage(model.MaxPerPage))
	if err != nil {
		return err
	}

	if timeout := audit.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	uc := usecase.New(infra.New(infra.WithGitHub(ghClient)),
		usecase.WithPerPage(audit.PerPage()),
		usecase.WithConcurrency(audit.Concurrency()),
		usecase.WithRequestTimeout(audit.RequestTimeout()),
	)

	result, runErr := uc.AuditOrg(ctx, &model.AuditOrgInput{Org: audit.Org()})
	if result == nil {
		return runErr
	}

	// The output is opened only once there is something to write, so a failed
	// listing leaves an existing report file untouched. A canceled run still
	// prints what was collected before failing.
	out, err := audit.OpenOutput()
	if err != nil {
		return err
	}
	defer safe.CloseFile(out)

	if err := writeReport(out, result); err != nil {
		return goerr.Wrap(err, "failed to write report")
	}

	return runErr
}
