package events

import "time"

const CatalogReloadType = "catalog.reload"

// CatalogEvent is pushed to connected clients when the catalog changes.
type CatalogEvent struct {
	Type     string    `json:"type"` // "catalog.reload"
	Series   int       `json:"series"`
	Episodes int       `json:"episodes"`
	At       time.Time `json:"at"`
}

func NewCatalogReload(series, episodes int) CatalogEvent {
	return CatalogEvent{
		Type:     CatalogReloadType,
		Series:   series,
		Episodes: episodes,
		At:       time.Now().UTC(),
	}
}
