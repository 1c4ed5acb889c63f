package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/court-booking-web/internal/catalog"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/response"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, err := catalog.NewService(catalog.DefaultVenues())
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r.Group("/v1"), NewHandler(svc))
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListVenues(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantTotal  int
		wantItems  int
	}{
		{"Default page", "", http.StatusOK, 15, 15},
		{"All sports sentinel", "?sport=all", http.StatusOK, 15, 15},
		{"Sport filter", "?sport=voli", http.StatusOK, 5, 5},
		{"Name search", "?q=sintetis", http.StatusOK, 3, 3},
		{"Second page", "?sport=Futsal&page=2&page_size=4", http.StatusOK, 6, 2},
		{"Unknown sport", "?sport=tenis", http.StatusBadRequest, 0, 0},
		{"Page size too large", "?page_size=1000", http.StatusBadRequest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/v1/venues"+tt.query)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp response.PageResponse[VenueResponse]
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.Len(t, resp.Items, tt.wantItems)
		})
	}
}

func TestGetVenue(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/v1/venues/basket-indoor-1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Basket", resp.Sport)
	assert.Equal(t, "Rp200.000/jam", resp.PriceFromLabel)
	assert.Equal(t, "/v1/venues/basket-indoor-1/thumbnail", resp.ThumbnailURL)
	assert.NotEmpty(t, resp.Facilities)

	assert.Equal(t, http.StatusNotFound, get(r, "/v1/venues/nope").Code)
}

func TestSports(t *testing.T) {
	r := setupRouter(t)

	w := get(r, "/v1/sports")
	require.Equal(t, http.StatusOK, w.Code)

	var resp response.ListResponse[SportResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 5)
	assert.Equal(t, "all", resp.Items[0].Value)
	assert.Equal(t, "Futsal", resp.Items[1].Value)
}
