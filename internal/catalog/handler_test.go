package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"streamhub/pkg/models"
)

// stubLoader serves canned records and can be flipped into a failing state
// to exercise reload recovery.
type stubLoader struct {
	records []models.EpisodeRecord
	err     error
}

func (s *stubLoader) Name() string { return "stub" }

func (s *stubLoader) Load(ctx context.Context) ([]models.EpisodeRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func setupAPI(t *testing.T, loader *stubLoader) (*gin.Engine, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := NewStore(loader)
	router := gin.New()
	NewHandler(store, nil).RegisterRoutes(router)
	return router, store
}

func doRequest(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListEndpoint(t *testing.T) {
	loader := &stubLoader{records: []models.EpisodeRecord{
		{Series: "Breaking Bad", Season: "1", Ep: 1},
		{Series: "The Wire", Season: "1", Ep: 1},
		{Series: "Better Call Saul", Season: "1", Ep: 1},
	}}
	router, store := setupAPI(t, loader)
	_, err := store.Reload(context.Background())
	assert.NoError(t, err)

	w := doRequest(router, http.MethodGet, "/series?page=0&limit=2")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status  string                 `json:"status"`
		Total   int                    `json:"total"`
		Page    int                    `json:"page"`
		HasMore bool                   `json:"hasMore"`
		Data    []models.SeriesSummary `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 3, body.Total)
	assert.Equal(t, 0, body.Page)
	assert.True(t, body.HasMore)
	assert.Len(t, body.Data, 2)
}

func TestListEndpointSearch(t *testing.T) {
	loader := &stubLoader{records: []models.EpisodeRecord{
		{Series: "Breaking Bad", Season: "1", Ep: 1},
		{Series: "The Wire", Season: "1", Ep: 1},
	}}
	router, store := setupAPI(t, loader)
	_, _ = store.Reload(context.Background())

	w := doRequest(router, http.MethodGet, "/series?q=WIRE")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total int                    `json:"total"`
		Data  []models.SeriesSummary `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "The Wire", body.Data[0].Name)
}

func TestDetailEndpoint(t *testing.T) {
	loader := &stubLoader{records: []models.EpisodeRecord{
		{Series: "My Show", Season: "1", Ep: 2, Title: "B", URL: "u2"},
		{Series: "My Show", Season: "1", Ep: 1, Title: "A", URL: "u1"},
	}}
	router, store := setupAPI(t, loader)
	_, _ = store.Reload(context.Background())

	w := doRequest(router, http.MethodGet, "/series/My%20Show")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string        `json:"status"`
		Data   models.Series `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "My Show", body.Data.Name)
	assert.Equal(t, 2, body.Data.EpisodeCount)
	assert.Equal(t, []models.Episode{
		{Number: 1, Title: "A", URL: "u1"},
		{Number: 2, Title: "B", URL: "u2"},
	}, body.Data.Seasons["1"])
}

func TestDetailEndpointNotFound(t *testing.T) {
	router, _ := setupAPI(t, &stubLoader{})

	w := doRequest(router, http.MethodGet, "/series/Nope")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestStatsEndpointBeforeLoad(t *testing.T) {
	router, _ := setupAPI(t, &stubLoader{})

	w := doRequest(router, http.MethodGet, "/stats")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status   string `json:"status"`
		Series   int    `json:"series"`
		Episodes int    `json:"episodes"`
		Loaded   bool   `json:"loaded"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Zero(t, body.Series)
	assert.False(t, body.Loaded)
}

func TestReloadEndpoint(t *testing.T) {
	loader := &stubLoader{records: []models.EpisodeRecord{
		{Series: "X", Season: "1", Ep: 1},
		{Series: "X", Season: "1", Ep: 2},
	}}
	router, _ := setupAPI(t, loader)

	w := doRequest(router, http.MethodPost, "/reload")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status   string `json:"status"`
		Series   int    `json:"series"`
		Episodes int    `json:"episodes"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 1, body.Series)
	assert.Equal(t, 2, body.Episodes)
}

func TestReloadFailureKeepsPreviousCatalog(t *testing.T) {
	loader := &stubLoader{records: []models.EpisodeRecord{
		{Series: "X", Season: "1", Ep: 1},
	}}
	router, store := setupAPI(t, loader)
	_, err := store.Reload(context.Background())
	assert.NoError(t, err)

	loader.err = errors.New("source went away")
	w := doRequest(router, http.MethodPost, "/reload")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// the prior catalog still serves
	list := doRequest(router, http.MethodGet, "/series")
	var body struct {
		Total int `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(list.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.True(t, store.Loaded())
}
