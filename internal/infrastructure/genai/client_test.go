package genai

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/foodspot-microservice/internal/domain"
)

// stubGenerator подменяет chat model в тестах
type stubGenerator struct {
	response string
	err      error
	lastReq  []*schema.Message
}

func (s *stubGenerator) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	s.lastReq = input
	if s.err != nil {
		return nil, s.err
	}
	return &schema.Message{Role: schema.Assistant, Content: s.response}, nil
}

func newTestClient(stub *stubGenerator) *client {
	return &client{
		chatModel:  stub,
		limiter:    rate.NewLimiter(rate.Inf, 1),
		logger:     zap.NewNop(),
		minResults: 6,
		maxResults: 10,
	}
}

func TestClientFetchRawCandidates(t *testing.T) {
	ctx := context.Background()

	t.Run("extracts array wrapped in prose", func(t *testing.T) {
		stub := &stubGenerator{
			response: `Here you go: [ {"id":"x","name":"Spot","latitude":3.14,"longitude":101.69} ] enjoy!`,
		}
		c := newTestClient(stub)

		raw, err := c.FetchRawCandidates(ctx, 3.1408, 101.6932, domain.SearchFilters{})
		require.NoError(t, err)
		require.Len(t, raw, 1)
		assert.Equal(t, "x", raw[0].NativeID)
		assert.Equal(t, "Spot", raw[0].Name)
		assert.Equal(t, 3.14, *raw[0].Lat)
	})

	t.Run("maps full model payload", func(t *testing.T) {
		stub := &stubGenerator{
			response: `[{
				"id": "viral-1",
				"name": "Matcha Corner",
				"description": "Famous for layered matcha drinks",
				"latitude": 3.1500,
				"longitude": 101.7100,
				"address": "Lot 10, Bukit Bintang",
				"google_rating": 4.4,
				"web_rating": 4.8,
				"review_count": 812,
				"price_level": "Moderate",
				"tags": ["viral", "dessert"],
				"must_try_item": "Matcha cloud latte",
				"is_open": true,
				"image_url": "https://cdn.example.com/matcha.jpg"
			}]`,
		}
		c := newTestClient(stub)

		raw, err := c.FetchRawCandidates(ctx, 3.1408, 101.6932, domain.SearchFilters{})
		require.NoError(t, err)
		require.Len(t, raw, 1)

		rv := raw[0]
		assert.Equal(t, "viral-1", rv.NativeID)
		assert.Equal(t, "Lot 10, Bukit Bintang", rv.Address)
		assert.Equal(t, 4.4, rv.GoogleRating)
		assert.Equal(t, 4.8, rv.WebRating)
		assert.Equal(t, 812, rv.ReviewCount)
		assert.Equal(t, domain.PriceModerate, rv.PriceLevel)
		assert.Equal(t, []string{"viral", "dessert"}, rv.Labels)
		assert.Equal(t, "Matcha cloud latte", rv.MustTryItem)
		require.NotNil(t, rv.IsOpen)
		assert.True(t, *rv.IsOpen)
		assert.Equal(t, "https://cdn.example.com/matcha.jpg", rv.ImageURL)
	})

	t.Run("no array in response degrades to empty result", func(t *testing.T) {
		stub := &stubGenerator{response: "I cannot provide food spots right now."}
		c := newTestClient(stub)

		raw, err := c.FetchRawCandidates(ctx, 3.1408, 101.6932, domain.SearchFilters{})
		require.NoError(t, err)
		assert.Empty(t, raw)
		assert.NotNil(t, raw)
	})

	t.Run("invalid json degrades to empty result", func(t *testing.T) {
		stub := &stubGenerator{response: `[{"id": "x", "name": }]`}
		c := newTestClient(stub)

		raw, err := c.FetchRawCandidates(ctx, 3.1408, 101.6932, domain.SearchFilters{})
		require.NoError(t, err)
		assert.Empty(t, raw)
	})

	t.Run("model failure is a hard error", func(t *testing.T) {
		stub := &stubGenerator{err: errors.New("upstream timeout")}
		c := newTestClient(stub)

		raw, err := c.FetchRawCandidates(ctx, 3.1408, 101.6932, domain.SearchFilters{})
		assert.Nil(t, raw)
		require.Error(t, err)
	})

	t.Run("prompt reflects filters", func(t *testing.T) {
		stub := &stubGenerator{response: "[]"}
		c := newTestClient(stub)

		_, err := c.FetchRawCandidates(ctx, 3.1408, 101.6932, domain.SearchFilters{
			Query:      "Bukit Bintang",
			Category:   domain.FilterCategoryDessert,
			PriceRange: "cheap",
			OpenNow:    true,
		})
		require.NoError(t, err)
		require.Len(t, stub.lastReq, 2)

		assert.Equal(t, schema.System, stub.lastReq[0].Role)
		user := stub.lastReq[1].Content
		assert.Contains(t, user, "6 to 10")
		assert.Contains(t, user, "in or near Bukit Bintang")
		assert.Contains(t, user, `"dessert"`)
		assert.Contains(t, user, "price range of cheap")
		assert.Contains(t, user, "currently open")
	})

	t.Run("name returns source identifier", func(t *testing.T) {
		c := newTestClient(&stubGenerator{})
		assert.Equal(t, domain.SourceGenAI, c.Name())
	})
}
