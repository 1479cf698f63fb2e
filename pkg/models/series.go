package models

// Episode is the normalized form of one playable episode. It is owned by the
// season it was filed under and never changes after the catalog is built.
type Episode struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

// Series groups every episode that shares one series name. Seasons are keyed
// by their label; each season's episodes are sorted ascending by number.
type Series struct {
	Name         string               `json:"name"`
	PosterURL    string               `json:"posterUrl,omitempty"`
	Seasons      map[string][]Episode `json:"seasons"`
	EpisodeCount int                  `json:"episodeCount"`
}

// SeriesSummary is the listing projection of a Series: enough to render a
// catalog card without dragging the episode tree along.
type SeriesSummary struct {
	Name         string `json:"name"`
	PosterURL    string `json:"posterUrl,omitempty"`
	SeasonCount  int    `json:"seasonCount"`
	EpisodeCount int    `json:"episodeCount"`
}
