package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboard/pkg/domain/types"
)

const (
	// MaxPerPage is the largest page size accepted by the GitHub REST API
	MaxPerPage = 100

	DefaultPerPage        = 100
	DefaultConcurrency    = 8
	DefaultRequestTimeout = 30 * time.Second
)

type AuditOrgInput struct {
	Org types.OrgName
}

func (x *AuditOrgInput) Validate() error {
	if x.Org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "organization is empty")
	}
	return nil
}

type ListOrgReposInput struct {
	Org     types.OrgName
	Page    int
	PerPage int
}

func (x *ListOrgReposInput) Validate() error {
	if x.Org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "organization is empty")
	}
	if x.Page < 1 {
		return goerr.Wrap(types.ErrInvalidOption, "page must be positive", goerr.V("page", x.Page))
	}
	if x.PerPage < 1 || x.PerPage > MaxPerPage {
		return goerr.Wrap(types.ErrInvalidOption, "per page out of range",
			goerr.V("per_page", x.PerPage),
			goerr.V("max", MaxPerPage),
		)
	}
	return nil
}

type RepoRef struct {
	Org  types.OrgName
	Repo types.RepoName
}

func (x *RepoRef) Validate() error {
	if x.Org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "organization is empty")
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository name is empty", goerr.V("org", x.Org))
	}
	return nil
}
