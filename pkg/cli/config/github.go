package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboard/pkg/domain/types"
	"github.com/secmon-lab/offboard/pkg/infra/gh"
	"github.com/urfave/cli/v3"
)

// GitHub holds the credential used against the GitHub REST API. A personal
// access token takes precedence over GitHub App credentials.
type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	baseURL    string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub REST API base URL (for GitHub Enterprise Server)",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("OFFBOARD_GITHUB_BASE_URL"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (alternative to token)",
			Category:    "GitHub App",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("OFFBOARD_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID of the organization",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("OFFBOARD_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("OFFBOARD_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHub) useApp() bool {
	return x.token == "" && (x.appID != 0 || x.installID != 0 || x.privateKey != "")
}

// Validate fails when no credential is configured at all
func (x *GitHub) Validate() error {
	if x.token == "" && !x.useApp() {
		return goerr.Wrap(types.ErrMissingCredential, "GITHUB_TOKEN environment variable is not set")
	}
	return nil
}

func (x *GitHub) NewClient(options ...gh.Option) (*gh.Client, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	if x.baseURL != "" {
		options = append(options, gh.WithBaseURL(x.baseURL))
	}

	if x.useApp() {
		return gh.NewWithApp(x.appID, x.installID, x.privateKey, options...)
	}
	return gh.NewWithToken(x.token, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("baseURL", x.baseURL),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
