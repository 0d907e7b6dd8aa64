// Package fetch retrieves release listings from the GitHub REST API.
package fetch

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v30/github"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/codingconcepts/relstats/models"
)

const (
	// DefaultBaseURL is the public GitHub API.
	DefaultBaseURL = "https://api.github.com/"

	// MaxPerPage is the largest page size the releases endpoint accepts.
	MaxPerPage = 100

	// overFetch is how many times the requested limit is gathered before
	// tag filtering, so that filtering rarely leaves fewer than limit.
	overFetch = 3

	acceptHeader = "application/vnd.github+json"
	userAgent    = "gh-release-tables"
)

// Fetcher pages through the releases of a repository. Requests are issued
// one at a time, each following the previous response's next link.
type Fetcher struct {
	client  *github.Client
	perPage int
}

// NewHTTPClient returns a client that authenticates with token as a bearer
// credential. An empty token yields an unauthenticated client.
func NewHTTPClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return &http.Client{}
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(ctx, src)
}

// New returns a Fetcher talking to the API at baseURL.
func New(c *http.Client, baseURL string, perPage int) (*Fetcher, error) {
	if perPage < 1 || perPage > MaxPerPage {
		return nil, models.NewUsageError("per-page must be between 1 and %d, got %d", MaxPerPage, perPage)
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, models.NewUsageError("invalid api url %q: %v", baseURL, err)
	}

	client := github.NewClient(c)
	client.BaseURL = u
	client.UserAgent = userAgent

	return &Fetcher{
		client:  client,
		perPage: perPage,
	}, nil
}

// Releases returns releases for repo, newest first as the API orders them.
// Pages are requested until there is no next link or at least three times
// limit releases have been gathered. Any failure aborts the whole fetch.
func (f *Fetcher) Releases(ctx context.Context, repo models.Repo, limit int) ([]models.GitRelease, error) {
	if limit < 1 {
		return nil, models.NewUsageError("limit must be a positive integer, got %d", limit)
	}

	next := fmt.Sprintf("repos/%s/%s/releases?per_page=%d&page=1",
		url.PathEscape(repo.Owner), url.PathEscape(repo.Name), f.perPage)

	want := math.MaxInt
	if limit <= math.MaxInt/overFetch {
		want = limit * overFetch
	}

	var releases []models.GitRelease
	for page := 1; next != "" && len(releases) < want; page++ {
		batch, link, err := f.page(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("fetching releases page %d: %w", page, err)
		}

		log.Debug().Int("page", page).Int("releases", len(batch)).Msg("fetched releases page")
		releases = append(releases, batch...)
		next = link
	}

	return releases, nil
}

func (f *Fetcher) page(ctx context.Context, u string) ([]models.GitRelease, string, error) {
	req, err := f.client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating releases request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)

	log.Debug().Str("url", req.URL.String()).Msg("requesting releases")

	var batch []models.GitRelease
	resp, err := f.client.Do(ctx, req, &batch)
	if err != nil {
		if resp != nil && resp.Response != nil {
			if until, ok := models.ParseRateLimitResetTime(resp.Header, time.Now()); ok {
				return nil, "", fmt.Errorf("rate-limit exceeded, try again in %s: %w", until, err)
			}
		}
		return nil, "", err
	}

	return batch, NextLink(resp.Header.Get("Link")), nil
}
