package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"location-api/internal/database"
	"location-api/internal/geo"
	"location-api/internal/models"
	"location-api/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var importOpts struct {
	file      string
	batchSize int
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "seed the geocoding cache from a CSV file",
	Long: `
import reads rows of address,latitude,longitude[,formatted_address] (with a
header row) and stores each one under its normalized address. Addresses that
are already cached keep their existing entry.
`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if importOpts.batchSize < 1 {
			return fmt.Errorf("--batch-size must be positive, got %d", importOpts.batchSize)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		f, err := os.Open(importOpts.file)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()

		entries, err := parseSeedCSV(f, time.Now().UTC())
		if err != nil {
			return err
		}
		log.Info().Int("rows", len(entries)).Str("file", importOpts.file).Msg("parsed seed file")

		if cfg.MigrateOnStart {
			if err := database.Migrate(cfg.DBSource); err != nil {
				return err
			}
		}

		pool, err := database.Connect(cmd.Context(), cfg.DBSource)
		if err != nil {
			return err
		}
		defer pool.Close()

		repo := repository.NewGeocodeCacheRepository(pool)

		inserted := 0
		for start := 0; start < len(entries); start += importOpts.batchSize {
			end := min(start+importOpts.batchSize, len(entries))
			n, err := repo.StoreBatch(cmd.Context(), entries[start:end])
			inserted += n
			if err != nil {
				return err
			}
		}

		log.Info().Int("inserted", inserted).Int("skipped", len(entries)-inserted).Msg("seed import finished")
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importOpts.file, "file", "", "path to the CSV file to import")
	importCmd.Flags().IntVar(&importOpts.batchSize, "batch-size", 500, "rows per database round trip")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importCmd)
}

// parseSeedCSV reads seed rows. Rows whose normalized address repeats an
// earlier row are dropped so the first one wins, as in the cache itself.
func parseSeedCSV(r io.Reader, resolvedAt time.Time) ([]models.ResolvedLocation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	seen := map[string]bool{}
	var entries []models.ResolvedLocation
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: expected at least 3 columns, got %d", line, len(record))
		}

		key := geo.NormalizeAddress(record[0])
		if key == "" {
			return nil, fmt.Errorf("line %d: empty address", line)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[1])
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[2])
		}
		coord := models.Coordinate{Latitude: lat, Longitude: lng}
		if !coord.Valid() {
			return nil, fmt.Errorf("line %d: coordinate out of range: %v", line, coord)
		}

		formatted := strings.TrimSpace(record[0])
		if len(record) > 3 && strings.TrimSpace(record[3]) != "" {
			formatted = strings.TrimSpace(record[3])
		}

		if seen[key] {
			continue
		}
		seen[key] = true

		entries = append(entries, models.ResolvedLocation{
			NormalizedAddress: key,
			Latitude:          lat,
			Longitude:         lng,
			CanonicalAddress:  formatted,
			ResolvedAt:        resolvedAt,
		})
	}

	return entries, nil
}
