package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/codingconcepts/relstats/aggregate"
	"github.com/codingconcepts/relstats/config"
	"github.com/codingconcepts/relstats/fetch"
	"github.com/codingconcepts/relstats/models"
	"github.com/codingconcepts/relstats/report"
)

const defaultLimit = 20

// Stats reports download counts for a repository's releases.
func Stats(cfg config.Config, color bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		repo, limit, prefix, err := parseArgs(args)
		if err != nil {
			return err
		}

		renderer, err := report.New(cfg.Format, cmd.OutOrStdout(), color)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		fetcher, err := fetch.New(fetch.NewHTTPClient(ctx, cfg.Token), cfg.APIURL, cfg.PerPage)
		if err != nil {
			return err
		}

		log.Debug().Str("repo", repo.String()).Int("limit", limit).Bool("authenticated", cfg.Token != "").Msg("fetching releases")

		// Nothing is written until every page has been fetched.
		releases, err := fetcher.Releases(ctx, repo, limit)
		if err != nil {
			return fmt.Errorf("getting releases: %w", err)
		}

		selected := selectReleases(releases, prefix, limit)
		log.Debug().Int("fetched", len(releases)).Int("selected", len(selected)).Str("prefix", prefix).Msg("selected releases")

		header := report.Header{
			Repo:     repo.String(),
			Shown:    len(selected),
			Filtered: prefix != "",
		}
		if err = renderer.Header(header); err != nil {
			return fmt.Errorf("writing report header: %w", err)
		}

		for _, r := range selected {
			summary := aggregate.Release(r.Assets)
			if err = renderer.Release(report.NewSection(r, summary.Rows, summary.Total)); err != nil {
				return fmt.Errorf("writing release %q: %w", r.TagName, err)
			}
		}

		if err = renderer.Flush(); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}

		return nil
	}
}

// parseArgs reads <owner/repo> [limit] [tag_prefix].
func parseArgs(args []string) (repo models.Repo, limit int, prefix string, err error) {
	if len(args) < 1 {
		return models.Repo{}, 0, "", models.NewUsageError("missing repository, expected owner/repo")
	}

	if repo, err = models.ParseRepo(args[0]); err != nil {
		return models.Repo{}, 0, "", err
	}

	limit = defaultLimit
	if len(args) > 1 {
		if limit, err = strconv.Atoi(args[1]); err != nil {
			return models.Repo{}, 0, "", models.NewUsageError("limit must be an integer, got %q", args[1])
		}
		if limit < 1 {
			return models.Repo{}, 0, "", models.NewUsageError("limit must be positive, got %d", limit)
		}
	}

	if len(args) > 2 {
		prefix = args[2]
	}

	return repo, limit, prefix, nil
}

// selectReleases keeps the releases whose tag starts with prefix, then
// the first limit of those.
func selectReleases(releases []models.GitRelease, prefix string, limit int) []models.GitRelease {
	if prefix != "" {
		filtered := make([]models.GitRelease, 0, len(releases))
		for _, r := range releases {
			if strings.HasPrefix(r.TagName, prefix) {
				filtered = append(filtered, r)
			}
		}
		releases = filtered
	}

	if len(releases) > limit {
		releases = releases[:limit]
	}
	return releases
}
