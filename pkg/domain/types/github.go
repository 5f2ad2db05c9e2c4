package types

import "log/slog"

type (
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	OrgName             string
	RepoName            string
)

const (
	// DefaultOrg is the organization audited when none is given.
	DefaultOrg OrgName = "dfds"
)

func (x OrgName) String() string {
	return string(x)
}

func (x RepoName) String() string {
	return string(x)
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
