package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/secmon-lab/offboard/pkg/utils/errutil"
	"github.com/secmon-lab/offboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return x.RunContext(ctx, argv)
}

// RunContext runs the application with a caller provided context. Fatal errors
// are logged, reported to Sentry when configured, and returned.
func (x *CLI) RunContext(ctx context.Context, argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	app := &cli.Command{
		Name:  "offboard",
		Usage: "Audit deploy keys and direct collaborators of GitHub organization repositories",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("OFFBOARD_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Sources:     cli.EnvVars("OFFBOARD_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Sources:     cli.EnvVars("OFFBOARD_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		},
		Commands: []*cli.Command{
			auditCommand(),
		},
		// Errors go back to RunContext instead of cli.HandleExitCoder, which
		// would call os.Exit before they are logged and reported.
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(ctx, argv); err != nil {
		errutil.HandleError(ctx, "fatal error", err)
		errutil.Flush()
		return err
	}

	return nil
}
