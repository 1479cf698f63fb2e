package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"streamhub/pkg/models"
)

// SQLiteDB loads records from an `episodes` table in a sqlite file. Rows are
// read in insertion order so builds stay deterministic across reloads.
type SQLiteDB struct {
	Path string
	db   *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	return &SQLiteDB{Path: path, db: db}, nil
}

// OpenDB opens a sqlite file with the pragmas every caller wants.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma foreign_keys: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma journal_mode: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the episodes table when missing. Used by the sqlite
// loader and the import tool.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS episodes (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			series     TEXT NOT NULL,
			season     TEXT NOT NULL DEFAULT '1',
			ep         INTEGER NOT NULL DEFAULT 1,
			title      TEXT,
			url        TEXT,
			poster_url TEXT,
			UNIQUE(series, season, ep)
		);
	`)
	if err != nil {
		return fmt.Errorf("create episodes table: %w", err)
	}
	return nil
}

func (s *SQLiteDB) Name() string { return "sqlite:" + s.Path }

func (s *SQLiteDB) Load(ctx context.Context) ([]models.EpisodeRecord, error) {
	if err := EnsureSchema(s.db); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT series, season, ep, title, url, poster_url
		FROM episodes
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query episodes: %w", err)
	}
	defer rows.Close()

	var records []models.EpisodeRecord
	for rows.Next() {
		var (
			series    sql.NullString
			season    sql.NullString
			ep        sql.NullInt64
			title     sql.NullString
			url       sql.NullString
			posterURL sql.NullString
		)
		if err := rows.Scan(&series, &season, &ep, &title, &url, &posterURL); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		records = append(records, models.EpisodeRecord{
			Series:    series.String,
			Season:    models.SeasonLabel(season.String),
			Ep:        int(ep.Int64),
			Title:     title.String,
			URL:       url.String,
			PosterURL: posterURL.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return records, nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
