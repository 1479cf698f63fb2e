// export-csv builds the catalog from the configured source and writes the
// series summary list to CSV for spreadsheet triage.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"streamhub/internal/catalog"
	"streamhub/internal/source"
	"streamhub/pkg/utils"
)

func main() {
	var (
		out = flag.String("out", "data/series.csv", "output CSV path for series summaries")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := utils.LoadServerConfig()

	loader, cleanup, err := openLoader(cfg)
	if err != nil {
		log.Fatalf("open source failed: %v", err)
	}
	defer cleanup()

	recs, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("load source failed: %v", err)
	}

	cat := catalog.Build(recs)
	if err := exportSummaries(cat, *out); err != nil {
		log.Fatalf("export failed: %v", err)
	}

	log.Printf("exported %d series to %s", len(cat.Summaries), *out)
}

func openLoader(cfg utils.ServerConfig) (catalog.Loader, func(), error) {
	if cfg.SourceDriver == utils.SourceDriverSQLite {
		db, err := source.NewSQLiteDB(cfg.SourcePath)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	}
	return source.NewJSONFile(cfg.SourcePath), func() {}, nil
}

func exportSummaries(cat *catalog.Catalog, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "poster_url", "seasons", "episodes"}); err != nil {
		return err
	}

	for _, s := range cat.Summaries {
		if err := w.Write([]string{
			s.Name,
			s.PosterURL,
			strconv.Itoa(s.SeasonCount),
			strconv.Itoa(s.EpisodeCount),
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
