package testutil

import (
	"os"
	"testing"

	"github.com/secmon-lab/offboard/pkg/domain/types"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// GitHubEnv is the target of tests against the real GitHub API
type GitHubEnv struct {
	Token types.GitHubToken
	Org   types.OrgName
}

// GitHubEnvOrSkip reads TEST_GITHUB_TOKEN and TEST_GITHUB_ORG, skipping the
// test unless both are set.
func GitHubEnvOrSkip(t *testing.T) GitHubEnv {
	t.Helper()
	return GitHubEnv{
		Token: types.GitHubToken(GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")),
		Org:   types.OrgName(GetEnvOrSkip(t, "TEST_GITHUB_ORG")),
	}
}
