// Package catalog turns flat episode records into the in-memory series index
// the API serves, and answers listing/lookup queries against it.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"streamhub/pkg/models"
)

const (
	defaultSeriesName  = "Unnamed"
	defaultSeasonLabel = "1"
)

// Catalog is one immutable build of the full index: every series keyed by
// name plus the name-ordered summary list used for listing queries. A rebuild
// produces a whole new Catalog; nothing in here is mutated after Build.
type Catalog struct {
	Series    map[string]*models.Series
	Summaries []models.SeriesSummary
	Episodes  int
}

// Build groups records by series name and season label, fills field defaults,
// sorts each season's episodes ascending by number (stable on ties), and
// materializes the summary list ordered by locale-aware name comparison.
func Build(records []models.EpisodeRecord) *Catalog {
	cat := &Catalog{
		Series:    make(map[string]*models.Series),
		Summaries: make([]models.SeriesSummary, 0, len(records)),
	}

	for _, r := range records {
		name := strings.TrimSpace(r.Series)
		if name == "" {
			name = defaultSeriesName
		}
		season := r.Season.String()
		if season == "" {
			season = defaultSeasonLabel
		}
		ep := r.Ep
		if ep <= 0 {
			ep = 1
		}
		title := r.Title
		if title == "" {
			title = fmt.Sprintf("Episode %d", ep)
		}

		s, ok := cat.Series[name]
		if !ok {
			s = &models.Series{
				Name:    name,
				Seasons: make(map[string][]models.Episode),
			}
			cat.Series[name] = s
		}
		if s.PosterURL == "" && r.PosterURL != "" {
			s.PosterURL = r.PosterURL
		}

		s.Seasons[season] = append(s.Seasons[season], models.Episode{
			Number: ep,
			Title:  title,
			URL:    r.URL,
		})
		s.EpisodeCount++
		cat.Episodes++
	}

	for _, s := range cat.Series {
		for label := range s.Seasons {
			eps := s.Seasons[label]
			sort.SliceStable(eps, func(i, j int) bool {
				return eps[i].Number < eps[j].Number
			})
		}
		cat.Summaries = append(cat.Summaries, models.SeriesSummary{
			Name:         s.Name,
			PosterURL:    s.PosterURL,
			SeasonCount:  len(s.Seasons),
			EpisodeCount: s.EpisodeCount,
		})
	}

	// Collators carry internal buffers, so each build gets its own.
	coll := collate.New(language.English)
	sort.Slice(cat.Summaries, func(i, j int) bool {
		return coll.CompareString(cat.Summaries[i].Name, cat.Summaries[j].Name) < 0
	})

	return cat
}
