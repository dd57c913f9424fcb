package main

import (
	"os"

	"location-api/internal/database"
	"location-api/internal/provider"
	"location-api/internal/repository"
	"location-api/internal/service"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var backfillOpts struct {
	limit  int
	dryRun bool
}

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "resolve coordinates for listings that have none",
	Long: `
backfill resolves the address of every listing without a coordinate through
the geocoding cache and the provider, then stores the result on the listing.
Listings that cannot be resolved are left untouched.
`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		pool, err := database.Connect(cmd.Context(), cfg.DBSource)
		if err != nil {
			return err
		}
		defer pool.Close()

		maps := provider.NewGoogleMaps(cfg.GoogleMapsAPIKey,
			provider.WithBaseURL(cfg.GoogleMapsBaseURL),
			provider.WithTimeout(cfg.ProviderTimeout),
		)
		listingRepo := repository.NewListingRepository(pool)
		geocoder := service.NewGeoCodeService(repository.NewGeocodeCacheRepository(pool), maps)
		backfill := service.NewBackfillService(listingRepo, geocoder)

		listings, err := backfill.Candidates(cmd.Context(), backfillOpts.limit)
		if err != nil {
			return err
		}
		log.Info().Int("candidates", len(listings)).Msg("listings without coordinates")

		if backfillOpts.dryRun {
			for _, l := range listings {
				log.Info().Int64("listing_id", l.ID).Str("address", l.Address).Str("city", l.City).Msg("would backfill")
			}
			return nil
		}

		var progress func()
		if isatty.IsTerminal(os.Stderr.Fd()) {
			bar := progressbar.NewOptions(len(listings),
				progressbar.OptionSetDescription("Backfilling"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
			progress = func() { _ = bar.Add(1) }
		}

		report, err := backfill.Run(cmd.Context(), listings, progress)
		log.Info().
			Int("candidates", report.Candidates).
			Int("updated", report.Updated).
			Int("from_cache", report.FromCache).
			Int("failed", report.Failed).
			Msg("backfill finished")
		return err
	},
}

func init() {
	backfillCmd.Flags().IntVar(&backfillOpts.limit, "limit", 500, "maximum number of listings to process")
	backfillCmd.Flags().BoolVar(&backfillOpts.dryRun, "dry-run", false, "list candidates without resolving them")
	rootCmd.AddCommand(backfillCmd)
}
