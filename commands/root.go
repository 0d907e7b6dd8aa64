package commands

import (
	"io"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/codingconcepts/relstats/config"
	"github.com/codingconcepts/relstats/models"
	"github.com/codingconcepts/relstats/terminal"
)

// NewRootCmd returns the relstats command.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relstats <owner/repo> [limit] [tag_prefix]",
		Short: "Tabulate release download counts by platform and package",
		Long: heredoc.Doc(`
			Fetches the latest releases of a GitHub repository and prints, for each
			release, its assets' download counts grouped by platform and packaging.

			Checksum and signature files are left out of the tables but still count
			toward each release's total.

			A token is read from $GITHUB_TOKEN or $GH_TOKEN when set, which raises
			the API rate limit.
		`),
		Example: heredoc.Doc(`
			relstats cli/cli
			relstats cli/cli 5
			relstats cli/cli 10 v2. --format console
		`),
		Version:       version,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			setupLogging(cmd.ErrOrStderr(), cfg.Verbose, cfg.NoColor)
			term := terminal.Detect(cmd.OutOrStdout(), cfg.NoColor)

			return Stats(cfg, term.ColorEnabled)(cmd, args)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return models.NewUsageError("%v", err)
	})

	return cmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(1, 3)(cmd, args); err != nil {
		return models.NewUsageError("%v", err)
	}
	return nil
}

func setupLogging(w io.Writer, verbose, noColor bool) {
	if !verbose {
		log.Logger = zerolog.Nop()
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}).Level(zerolog.DebugLevel)
}
