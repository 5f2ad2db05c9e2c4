package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboard/pkg/controller/report"
	"github.com/secmon-lab/offboard/pkg/domain/model"
	"github.com/secmon-lab/offboard/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Audit struct {
	org            string
	perPage        int64
	concurrency    int64
	requestTimeout time.Duration
	timeout        time.Duration
	format         string
	output         string
}

func (x *Audit) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "org",
			Usage:       "GitHub organization to audit",
			Category:    "Audit",
			Value:       types.DefaultOrg.String(),
			Destination: &x.org,
			Sources:     cli.EnvVars("OFFBOARD_ORG"),
		},
		&cli.Int64Flag{
			Name:        "per-page",
			Usage:       "Page size of the repository listing [1-100]",
			Category:    "Audit",
			Value:       model.DefaultPerPage,
			Destination: &x.perPage,
			Sources:     cli.EnvVars("OFFBOARD_PER_PAGE"),
		},
		&cli.Int64Flag{
			Name:        "concurrency",
			Aliases:     []string{"c"},
			Usage:       "Maximum number of repositories inspected at once",
			Category:    "Audit",
			Value:       model.DefaultConcurrency,
			Destination: &x.concurrency,
			Sources:     cli.EnvVars("OFFBOARD_CONCURRENCY"),
		},
		&cli.DurationFlag{
			Name:        "request-timeout",
			Usage:       "Timeout of a single GitHub API call (0 to disable)",
			Category:    "Audit",
			Value:       model.DefaultRequestTimeout,
			Destination: &x.requestTimeout,
			Sources:     cli.EnvVars("OFFBOARD_REQUEST_TIMEOUT"),
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Timeout of the whole audit (0 to disable)",
			Category:    "Audit",
			Destination: &x.timeout,
			Sources:     cli.EnvVars("OFFBOARD_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Report format [text|json]",
			Category:    "Audit",
			Value:       string(report.FormatText),
			Destination: &x.format,
			Sources:     cli.EnvVars("OFFBOARD_FORMAT"),
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Report output [-|<file>]",
			Category:    "Audit",
			Value:       "-",
			Destination: &x.output,
			Sources:     cli.EnvVars("OFFBOARD_OUTPUT"),
		},
	}
}

func (x *Audit) Validate() error {
	if x.org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "organization is empty")
	}
	if x.perPage < 1 || x.perPage > model.MaxPerPage {
		return goerr.Wrap(types.ErrInvalidOption, "per-page must be between 1 and 100", goerr.V("value", x.perPage))
	}
	if x.concurrency < 1 {
		return goerr.Wrap(types.ErrInvalidOption, "concurrency must be positive", goerr.V("value", x.concurrency))
	}
	if x.requestTimeout < 0 || x.timeout < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "timeout must not be negative",
			goerr.V("request_timeout", x.requestTimeout),
			goerr.V("timeout", x.timeout),
		)
	}
	return nil
}

func (x *Audit) Org() types.OrgName {
	return types.OrgName(x.org)
}

func (x *Audit) PerPage() int {
	return int(x.perPage)
}

func (x *Audit) Concurrency() int {
	return int(x.concurrency)
}

func (x *Audit) RequestTimeout() time.Duration {
	return x.requestTimeout
}

func (x *Audit) Timeout() time.Duration {
	return x.timeout
}

func (x *Audit) Writer() (report.Writer, error) {
	return report.New(report.Format(x.format))
}

// OpenOutput returns stdout for "-" or creates the report file
func (x *Audit) OpenOutput() (*os.File, error) {
	if x.output == "" || x.output == "-" {
		return os.Stdout, nil
	}

	fd, err := os.Create(filepath.Clean(x.output))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create report file", goerr.V("path", x.output))
	}
	return fd, nil
}

func (x *Audit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("org", x.org),
		slog.Int64("perPage", x.perPage),
		slog.Int64("concurrency", x.concurrency),
		slog.Duration("requestTimeout", x.requestTimeout),
		slog.Duration("timeout", x.timeout),
		slog.String("format", x.format),
		slog.String("output", x.output),
	)
}
