package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/offboard/pkg/domain/types"
	"github.com/secmon-lab/offboard/pkg/utils/testutil"
)

func TestGetEnvOrSkip(t *testing.T) {
	key := "TEST_ENV_VAR_SET"
	t.Setenv(key, "test_value")

	gt.V(t, testutil.GetEnvOrSkip(t, key)).Equal("test_value")
}

func TestGitHubEnvOrSkip(t *testing.T) {
	t.Setenv("TEST_GITHUB_TOKEN", "ghp_test")
	t.Setenv("TEST_GITHUB_ORG", "example")

	env := testutil.GitHubEnvOrSkip(t)
	gt.V(t, env.Token).Equal(types.GitHubToken("ghp_test"))
	gt.V(t, env.Org).Equal(types.OrgName("example"))
}
