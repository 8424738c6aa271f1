package artworksapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"galleri-app/internal/artworks"
	"galleri-app/internal/pagecache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSheets struct {
	rows map[string][][]interface{}
}

func (f *fakeSheets) GetValues(_ context.Context, spreadsheetID, _ string) ([][]interface{}, error) {
	return f.rows[spreadsheetID], nil
}

func (f *fakeSheets) UpdateValues(_ context.Context, _, _ string, _ [][]interface{}) error {
	return nil
}

func (f *fakeSheets) ServiceAccountEmail() string { return "svc@example.iam.gserviceaccount.com" }

func newTestRouter() (*gin.Engine, *pagecache.Cache) {
	gin.SetMode(gin.TestMode)

	fake := &fakeSheets{rows: map[string][][]interface{}{
		"sheet-b": {
			{"id", "name", "isSecondary", "creationDate"},
			{"b1", "Havblik", "FALSE", "2024-02-01"},
			{"b2", "Lagersalg stykke", "TRUE", "2024-01-01"},
		},
		"sheet-z": {
			{"id", "name", "isSecondary", "creationDate"},
		},
	}}
	repo := artworks.NewRepository(fake, "sheet-b", "sheet-z")
	cache := pagecache.New(time.Minute)

	r := gin.New()
	h := NewHandler(repo, cache)
	r.GET("/api/artworks", h.List)
	r.GET("/api/artworks/:id", h.Get)
	return r, cache
}

func getJSON(t *testing.T, r *gin.Engine, path string) map[string]interface{} {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func artworkIDs(t *testing.T, body map[string]interface{}) []string {
	t.Helper()
	list, ok := body["artworks"].([]interface{})
	require.True(t, ok)
	ids := make([]string, 0, len(list))
	for _, item := range list {
		ids = append(ids, item.(map[string]interface{})["id"].(string))
	}
	return ids
}

func TestList_ReturnsAllArtworks(t *testing.T) {
	r, _ := newTestRouter()

	body := getJSON(t, r, "/api/artworks")
	assert.Equal(t, []string{"b1", "b2"}, artworkIDs(t, body))
}

func TestList_SecondaryFilter(t *testing.T) {
	r, _ := newTestRouter()

	body := getJSON(t, r, "/api/artworks?secondary=true")
	assert.Equal(t, []string{"b2"}, artworkIDs(t, body))
}

func TestList_FilteredViewCachedSeparately(t *testing.T) {
	r, cache := newTestRouter()

	getJSON(t, r, "/api/artworks")
	getJSON(t, r, "/api/artworks?secondary=true")

	_, ok := cache.Get("/api/artworks")
	assert.True(t, ok)
	_, ok = cache.Get("/api/artworks?secondary=true")
	assert.True(t, ok)

	cache.Invalidate("/api/artworks")
	_, ok = cache.Get("/api/artworks?secondary=true")
	assert.True(t, ok)
}

func TestGet_KnownAndUnknownID(t *testing.T) {
	r, _ := newTestRouter()

	body := getJSON(t, r, "/api/artworks/b1")
	art, ok := body["artwork"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Havblik", art["name"])

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/artworks/findes-ikke", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
