// import-episodes loads a JSON episode file into the sqlite source table, so
// a deployment can switch the API server to the sqlite driver.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"streamhub/internal/source"
	"streamhub/pkg/models"
)

func main() {
	var (
		in  = flag.String("in", "data/episodes.json", "input JSON path for episodes")
		out = flag.String("db", "data/episodes.db", "output sqlite path")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	records, err := source.NewJSONFile(*in).Load(ctx)
	if err != nil {
		log.Fatalf("load %s failed: %v", *in, err)
	}

	db, err := source.OpenDB(*out)
	if err != nil {
		log.Fatalf("open %s failed: %v", *out, err)
	}
	defer db.Close()

	if err := source.EnsureSchema(db); err != nil {
		log.Fatalf("schema failed: %v", err)
	}

	n, err := importEpisodes(ctx, db, records)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("imported %d episodes from %s into %s", n, *in, *out)
}

func importEpisodes(ctx context.Context, db *sql.DB, records []models.EpisodeRecord) (int, error) {
	stmt, err := db.PrepareContext(ctx, `
		INSERT INTO episodes (series, season, ep, title, url, poster_url)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(series, season, ep) DO UPDATE SET
		  title = excluded.title,
		  url = excluded.url,
		  poster_url = excluded.poster_url
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for _, r := range records {
		season := r.Season.String()
		if season == "" {
			season = "1"
		}
		ep := r.Ep
		if ep <= 0 {
			ep = 1
		}
		if _, err := stmt.ExecContext(ctx, r.Series, season, ep, r.Title, r.URL, r.PosterURL); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
