package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// EpisodeRecord is one raw entry from an episode source, before any
// normalization. Fields may be missing; the catalog builder fills defaults.
type EpisodeRecord struct {
	Series    string      `json:"series"`
	Season    SeasonLabel `json:"season"`
	Ep        int         `json:"ep"`
	Title     string      `json:"title"`
	URL       string      `json:"url"`
	PosterURL string      `json:"posterUrl"`
}

// SeasonLabel is a season key as it appears in source data. Sources write it
// either as a string ("1", "OVA") or a bare number; it stays an opaque string
// inside the catalog and is never compared numerically.
type SeasonLabel string

func (s *SeasonLabel) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = SeasonLabel(v)
		return nil
	}

	// bare number: keep its canonical decimal form
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*s = SeasonLabel(strconv.FormatInt(i, 10))
		return nil
	}
	*s = SeasonLabel(n.String())
	return nil
}

func (s SeasonLabel) String() string { return string(s) }
