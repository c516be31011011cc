package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foodspot-microservice/internal/config"
	"github.com/foodspot-microservice/internal/delivery/http/handler"
	"github.com/foodspot-microservice/internal/domain"
	"github.com/foodspot-microservice/internal/usecase"
)

// stubSource реализует VenueSource без сети
type stubSource struct {
	raw []domain.RawVenue
	err error
}

func (s *stubSource) FetchRawCandidates(ctx context.Context, lat, lon float64, filters domain.SearchFilters) ([]domain.RawVenue, error) {
	return s.raw, s.err
}

func (s *stubSource) Name() string {
	return domain.SourceOverpass
}

func ptrFloat64(v float64) *float64 {
	return &v
}

func newTestApp(source *stubSource) *fiber.App {
	logger := zap.NewNop()
	uc := usecase.NewDiscoveryUseCase(source, nil, nil, nil, config.SearchConfig{
		MaxResults: 25,
		DefaultLat: 3.1408,
		DefaultLon: 101.6932,
	}, time.Minute, logger)

	h := handler.NewVenueHandler(uc, logger)

	app := fiber.New()
	app.Get("/api/v1/venues/search", h.Search)
	app.Get("/api/v1/venues/categories", h.GetCategories)
	return app
}

func TestVenueHandlerSearch(t *testing.T) {
	t.Run("returns venues with meta", func(t *testing.T) {
		source := &stubSource{raw: []domain.RawVenue{
			{NativeID: "osm-1", Name: "Kopi House", Lat: ptrFloat64(3.1478), Lon: ptrFloat64(101.7000), Category: "cafe"},
		}}
		app := newTestApp(source)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/venues/search?lat=3.1408&lng=101.6932", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data struct {
				Venues []domain.Venue `json:"venues"`
				Total  int            `json:"total"`
				Source string         `json:"source"`
			} `json:"data"`
			Meta struct {
				Total  int    `json:"total"`
				Source string `json:"source"`
			} `json:"meta"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 1, body.Data.Total)
		assert.Equal(t, domain.SourceOverpass, body.Data.Source)
		assert.Equal(t, "Kopi House", body.Data.Venues[0].Name)
		assert.Equal(t, 1, body.Meta.Total)
	})

	t.Run("validation failure gives 400", func(t *testing.T) {
		app := newTestApp(&stubSource{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/venues/search?category=bogus", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
	})

	t.Run("out of range latitude gives 400", func(t *testing.T) {
		app := newTestApp(&stubSource{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/venues/search?lat=95&lng=101", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("source failure gives 502", func(t *testing.T) {
		app := newTestApp(&stubSource{err: errors.New("overpass down")})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/venues/search?lat=3.14&lng=101.69", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "SOURCE_UNAVAILABLE", body.Error.Code)
	})

	t.Run("missing coordinates fall back to default origin", func(t *testing.T) {
		app := newTestApp(&stubSource{raw: []domain.RawVenue{}})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/venues/search", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestVenueHandlerGetCategories(t *testing.T) {
	app := newTestApp(&stubSource{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/venues/categories", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Categories []struct {
				ID    string `json:"id"`
				Label string `json:"label"`
			} `json:"categories"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Categories, 5)
	assert.Equal(t, domain.FilterCategoryAll, body.Data.Categories[0].ID)
	assert.Equal(t, domain.FilterCategoryFineDining, body.Data.Categories[4].ID)
}
