package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrMissingCredential = goerr.New("no GitHub credential configured")

	// ErrListingIncomplete means the organization's repository listing could
	// not be drained. The audit must not proceed with a partial set.
	ErrListingIncomplete = goerr.New("repository listing incomplete")

	// ErrEnrichmentFailed marks a per-repository sub-query failure. It is
	// recorded against the repository and never aborts a run.
	ErrEnrichmentFailed = goerr.New("repository enrichment failed")

	ErrRepoNotFound  = goerr.New("repository not found")
	ErrRepoForbidden = goerr.New("access to repository forbidden")
)
