package interfaces

import (
	"context"

	"github.com/secmon-lab/offboard/pkg/domain/model"
	"github.com/secmon-lab/offboard/pkg/domain/types"
)

type UseCase interface {
	ListOrgRepos(ctx context.Context, org types.OrgName) ([]*model.Repository, error)
	EnrichRepo(ctx context.Context, org types.OrgName, repo *model.Repository) *model.RepoAudit
	AuditOrg(ctx context.Context, input *model.AuditOrgInput) (*model.AuditResult, error)
}
