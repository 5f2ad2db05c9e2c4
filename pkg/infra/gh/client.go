package gh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboard/pkg/domain/interfaces"
	"github.com/secmon-lab/offboard/pkg/domain/model"
	"github.com/secmon-lab/offboard/pkg/domain/types"
	"github.com/secmon-lab/offboard/pkg/utils/logging"
	"golang.org/x/oauth2"
)

type Client struct {
	client  *github.Client
	perPage int
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL   string
	transport http.RoundTripper
	perPage   int
}

type Option func(*config)

// WithBaseURL sets the REST API endpoint, e.g. https://ghe.example.com/api/v3/
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithTransport sets the underlying transport that authenticated requests are sent through
func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

// WithPerPage sets the page size used to drain deploy key and collaborator listings
func WithPerPage(perPage int) Option {
	return func(cfg *config) {
		cfg.perPage = perPage
	}
}

func newConfig(options []Option) *config {
	cfg := &config{
		transport: http.DefaultTransport,
		perPage:   model.MaxPerPage,
	}
	for _, opt := range options {
		opt(cfg)
	}
	return cfg
}

// NewWithToken creates a client authenticated by a personal access token
func NewWithToken(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrMissingCredential, "token is empty")
	}

	cfg := newConfig(options)
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
			Base:   cfg.transport,
		},
	}

	return newClient(httpClient, cfg)
}

// NewWithApp creates a client authenticated as an installation of a GitHub App
func NewWithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	cfg := newConfig(options)
	itr, err := ghinstallation.New(cfg.transport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create github app transport", goerr.V("appID", appID))
	}
	if cfg.baseURL != "" {
		itr.BaseURL = strings.TrimSuffix(cfg.baseURL, "/")
	}

	return newClient(&http.Client{Transport: itr}, cfg)
}

func newClient(httpClient *http.Client, cfg *config) (*Client, error) {
	if cfg.perPage < 1 || cfg.perPage > model.MaxPerPage {
		return nil, goerr.Wrap(types.ErrInvalidOption, "per page out of range", goerr.V("per_page", cfg.perPage))
	}

	client := github.NewClient(httpClient)
	if cfg.baseURL != "" {
		baseURL := cfg.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub base URL", goerr.V("url", cfg.baseURL))
		}
		client.BaseURL = u
	}

	return &Client{
		client:  client,
		perPage: cfg.perPage,
	}, nil
}

func (x *Client) ListOrgRepos(ctx context.Context, input *model.ListOrgReposInput) (*model.RepositoryPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	opts := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{
			Page:    input.Page,
			PerPage: input.PerPage,
		},
	}

	// https://docs.github.com/en/rest/repos/repos?apiVersion=2022-11-28#list-organization-repositories
	repos, resp, err := x.client.Repositories.ListByOrg(ctx, input.Org.String(), opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list organization repos",
			goerr.V("org", input.Org),
			goerr.V("page", input.Page),
		)
	}

	page := &model.RepositoryPage{
		NextPage: resp.NextPage,
	}
	for _, repo := range repos {
		page.Repositories = append(page.Repositories, &model.Repository{
			ID:       repo.GetID(),
			Name:     repo.GetName(),
			FullName: repo.GetFullName(),
			Archived: repo.GetArchived(),
			Private:  repo.GetPrivate(),
		})
	}

	logging.From(ctx).Debug("Listed organization repos",
		slog.Any("org", input.Org),
		slog.Int("page", input.Page),
		slog.Int("count", len(page.Repositories)),
		slog.Int("next_page", page.NextPage),
	)

	return page, nil
}

func (x *Client) ListDeployKeys(ctx context.Context, ref *model.RepoRef) ([]*model.DeployKey, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	// https://docs.github.com/en/rest/deploy-keys/deploy-keys?apiVersion=2022-11-28#list-deploy-keys
	path := fmt.Sprintf("repos/%s/%s/keys", url.PathEscape(ref.Org.String()), url.PathEscape(ref.Repo.String()))
	keys, err := getAllPages[model.DeployKey](ctx, x.client, path, nil, x.perPage)
	if err != nil {
		return nil, classifyRepoError(err, "failed to list deploy keys", ref)
	}

	return keys, nil
}

func (x *Client) ListDirectCollaborators(ctx context.Context, ref *model.RepoRef) ([]*model.Collaborator, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	// https://docs.github.com/en/rest/collaborators/collaborators?apiVersion=2022-11-28#list-repository-collaborators
	path := fmt.Sprintf("repos/%s/%s/collaborators", url.PathEscape(ref.Org.String()), url.PathEscape(ref.Repo.String()))
	query := url.Values{"affiliation": []string{"direct"}}
	collaborators, err := getAllPages[model.Collaborator](ctx, x.client, path, query, x.perPage)
	if err != nil {
		return nil, classifyRepoError(err, "failed to list collaborators", ref)
	}

	return collaborators, nil
}

// getAllPages decodes every page of a list endpoint into T, following the
// Link header until no next page is given. A null element or a next page
// cursor that does not advance fails the whole listing.
func getAllPages[T any](ctx context.Context, client *github.Client, path string, query url.Values, perPage int) ([]*T, error) {
	var all []*T
	page := 1

	for {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("per_page", strconv.Itoa(perPage))
		q.Set("page", strconv.Itoa(page))

		req, err := client.NewRequest(http.MethodGet, path+"?"+q.Encode(), nil)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build request", goerr.V("path", path))
		}

		var items []*T
		resp, err := client.Do(ctx, req, &items)
		if err != nil {
			return nil, err
		}
		for i, item := range items {
			if item == nil {
				return nil, goerr.New("null element in list response",
					goerr.V("path", path),
					goerr.V("page", page),
					goerr.V("index", i),
				)
			}
		}
		all = append(all, items...)

		if resp.NextPage == 0 {
			break
		}
		if resp.NextPage <= page {
			return nil, goerr.New("next page cursor does not advance",
				goerr.V("path", path),
				goerr.V("page", page),
				goerr.V("next_page", resp.NextPage),
			)
		}
		page = resp.NextPage
	}

	return all, nil
}

func classifyRepoError(err error, msg string, ref *model.RepoRef) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return goerr.Wrap(types.ErrRepoNotFound, msg,
				goerr.V("org", ref.Org),
				goerr.V("repo", ref.Repo),
				goerr.V("message", ghErr.Message),
			)
		case http.StatusForbidden:
			return goerr.Wrap(types.ErrRepoForbidden, msg,
				goerr.V("org", ref.Org),
				goerr.V("repo", ref.Repo),
				goerr.V("message", ghErr.Message),
			)
		}
	}

	return goerr.Wrap(err, msg,
		goerr.V("org", ref.Org),
		goerr.V("repo", ref.Repo),
	)
}
