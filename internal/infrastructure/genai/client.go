package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/foodspot-microservice/internal/config"
	"github.com/foodspot-microservice/internal/domain"
	"github.com/foodspot-microservice/internal/domain/repository"
)

// systemPrompt фиксирует строгую форму ответа: массив JSON-объектов с
// заданным набором полей. Модель склонна оборачивать ответ в прозу,
// поэтому парсинг ниже ищет массив внутри текста.
const systemPrompt = `You are an expert food explorer API.
Your goal is to find viral and trending food spots.
You must return a valid JSON array of objects.

Each object must strictly follow this structure:
{
  "id": "string (unique)",
  "name": "string",
  "description": "string (short, catchy description of why it's viral)",
  "latitude": number,
  "longitude": number,
  "address": "string",
  "google_rating": number (0-5, float),
  "web_rating": number (0-5, float, aggregate score from review and social platforms),
  "review_count": number (integer estimate),
  "price_level": "Cheap" | "Moderate" | "Expensive" | "Luxury",
  "tags": ["string", "string"],
  "must_try_item": "string (the one specific viral dish to order)",
  "is_open": boolean,
  "image_url": "string (may be empty)"
}
Ensure coordinates are accurate numbers. Do not include any other top-level fields.`

// generator - узкий контракт поверх eino model.ChatModel, чтобы тесты
// могли подставить заглушку
type generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

type client struct {
	chatModel  generator
	limiter    *rate.Limiter
	logger     *zap.Logger
	minResults int
	maxResults int
}

// NewClient создает генеративный источник поверх OpenAI-совместимой модели
func NewClient(ctx context.Context, cfg *config.GenAIConfig, logger *zap.Logger) (repository.VenueSource, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init chat model: %w", err)
	}

	return &client{
		chatModel:  chatModel,
		limiter:    rate.NewLimiter(rate.Limit(float64(cfg.RPM)/60.0), 1),
		logger:     logger,
		minResults: cfg.MinResults,
		maxResults: cfg.MaxResults,
	}, nil
}

func (c *client) Name() string {
	return domain.SourceGenAI
}

// aiVenue - форма одного объекта из ответа модели
type aiVenue struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Address      string   `json:"address"`
	GoogleRating float64  `json:"google_rating"`
	WebRating    float64  `json:"web_rating"`
	ReviewCount  int      `json:"review_count"`
	PriceLevel   string   `json:"price_level"`
	Tags         []string `json:"tags"`
	MustTryItem  string   `json:"must_try_item"`
	IsOpen       *bool    `json:"is_open"`
	ImageURL     string   `json:"image_url"`
}

// FetchRawCandidates запрашивает у модели список трендовых заведений.
// Ошибка вызова модели - жёсткий сбой; неразбираемый ответ деградирует
// до пустого среза, разговорный источник ненадёжен по своей природе.
func (c *client) FetchRawCandidates(
	ctx context.Context,
	lat, lon float64,
	filters domain.SearchFilters,
) ([]domain.RawVenue, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: c.buildUserPrompt(lat, lon, filters)},
	}

	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		c.logger.Error("Chat model call failed", zap.Error(err))
		return nil, fmt.Errorf("chat model call failed: %w", err)
	}

	return c.parseResponse(resp.Content), nil
}

// buildUserPrompt кодирует состояние фильтров в инструкцию для модели
func (c *client) buildUserPrompt(lat, lon float64, filters domain.SearchFilters) string {
	categoryPrompt := "across various categories like cafes, street food, and restaurants"
	if filters.Category != "" && filters.Category != domain.FilterCategoryAll {
		categoryPrompt = fmt.Sprintf("specifically in the category of %q", filters.Category)
	}

	locationPrompt := fmt.Sprintf("near coordinate %f, %f", lat, lon)
	if filters.Query != "" {
		locationPrompt = fmt.Sprintf("in or near %s", filters.Query)
	}

	pricePrompt := ""
	if filters.PriceRange != "" && filters.PriceRange != domain.PriceAny {
		pricePrompt = fmt.Sprintf(" with a price range of %s", filters.PriceRange)
	}

	openNowPrompt := ""
	if filters.OpenNow {
		openNowPrompt = " Prefer places that are currently open."
	}

	return fmt.Sprintf(
		"Find %d to %d viral, trending, or highly-rated food spots %s %s%s. "+
			"Prioritize places that are visually aesthetic or famous for a specific dish.%s",
		c.minResults, c.maxResults, locationPrompt, categoryPrompt, pricePrompt, openNowPrompt)
}

// parseResponse вырезает из свободного текста модели JSON-массив между
// первой '[' и последней ']' и разбирает его. Любой сбой парсинга дает
// пустой результат, не ошибку.
func (c *client) parseResponse(text string) []domain.RawVenue {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		c.logger.Warn("No JSON array found in model response",
			zap.Int("response_len", len(text)))
		return []domain.RawVenue{}
	}

	var spots []aiVenue
	if err := json.Unmarshal([]byte(text[start:end+1]), &spots); err != nil {
		c.logger.Warn("Failed to parse model response as venue array", zap.Error(err))
		return []domain.RawVenue{}
	}

	raw := make([]domain.RawVenue, 0, len(spots))
	for _, s := range spots {
		raw = append(raw, domain.RawVenue{
			NativeID:     s.ID,
			Name:         s.Name,
			Lat:          s.Latitude,
			Lon:          s.Longitude,
			Address:      s.Address,
			ImageURL:     s.ImageURL,
			Description:  s.Description,
			GoogleRating: s.GoogleRating,
			WebRating:    s.WebRating,
			ReviewCount:  s.ReviewCount,
			PriceLevel:   s.PriceLevel,
			Labels:       s.Tags,
			MustTryItem:  s.MustTryItem,
			IsOpen:       s.IsOpen,
		})
	}

	return raw
}
