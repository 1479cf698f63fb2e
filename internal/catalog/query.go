package catalog

import (
	"errors"
	"math/rand/v2"
	"strings"

	"streamhub/pkg/models"
)

const (
	// DefaultPageLimit is used when a request omits limit or sends garbage.
	DefaultPageLimit = 20
	// MaxPageLimit caps a single page.
	MaxPageLimit = 100
)

// ErrNotFound is returned by GetSeries for an unknown series name.
var ErrNotFound = errors.New("series not found")

// Page is one listing response slice plus its paging envelope.
type Page struct {
	Total   int                    `json:"total"`
	Page    int                    `json:"page"`
	HasMore bool                   `json:"hasMore"`
	Data    []models.SeriesSummary `json:"data"`
}

// ListSeries filters the summary list by a case-insensitive substring of the
// series name, optionally shuffles the filtered copy, and returns the
// requested page. Invalid paging input is coerced (page<0 -> 0, limit<=0 ->
// DefaultPageLimit) so the endpoint always answers with a valid page. The
// stored order is never touched; shuffle re-randomizes on every call.
func (c *Catalog) ListSeries(page, limit int, query string, shuffle bool) Page {
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	filtered := c.Summaries
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered = make([]models.SeriesSummary, 0, len(c.Summaries))
		for _, s := range c.Summaries {
			if strings.Contains(strings.ToLower(s.Name), q) {
				filtered = append(filtered, s)
			}
		}
	}

	if shuffle {
		shuffled := make([]models.SeriesSummary, len(filtered))
		copy(shuffled, filtered)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		filtered = shuffled
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]models.SeriesSummary, end-start)
	copy(data, filtered[start:end])

	return Page{
		Total:   total,
		Page:    page,
		HasMore: page*limit+limit < total,
		Data:    data,
	}
}

// GetSeries looks up a series by exact name.
func (c *Catalog) GetSeries(name string) (*models.Series, error) {
	s, ok := c.Series[name]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}
