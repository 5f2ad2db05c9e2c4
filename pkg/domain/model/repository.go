package model

// Repository represents a GitHub repository in the audited organization
type Repository struct {
	ID       int64
	Name     string
	FullName string
	Archived bool
	Private  bool
}

// RepositoryPage is a single page of the organization repository listing.
// NextPage is 0 when the listing has no further page.
type RepositoryPage struct {
	Repositories []*Repository
	NextPage     int
}
