package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/foodspot-microservice/internal/domain"
	"github.com/foodspot-microservice/internal/pkg/errors"
	"github.com/foodspot-microservice/internal/pkg/utils"
	"github.com/foodspot-microservice/internal/pkg/validator"
	"github.com/foodspot-microservice/internal/usecase"
	"github.com/foodspot-microservice/internal/usecase/dto"
)

// VenueHandler - обработчик запросов поиска заведений
type VenueHandler struct {
	discoveryUC *usecase.DiscoveryUseCase
	logger      *zap.Logger
}

// NewVenueHandler - создание нового VenueHandler
func NewVenueHandler(discoveryUC *usecase.DiscoveryUseCase, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{
		discoveryUC: discoveryUC,
		logger:      logger,
	}
}

// Search godoc
// @Summary Search food venues
// @Description Поиск заведений питания вокруг точки с фильтрацией и ранжированием
// @Tags Venues
// @Accept json
// @Produce json
// @Param lat query number false "Широта точки поиска"
// @Param lng query number false "Долгота точки поиска"
// @Param q query string false "Текстовый запрос по названию, кухне или адресу"
// @Param category query string false "Категория" Enums(all, street_food, cafe, dessert, fine_dining)
// @Param price_range query string false "Ценовой диапазон" Enums(any, cheap, moderate, expensive, luxury)
// @Param open_now query boolean false "Только открытые сейчас"
// @Param sort_by query string false "Сортировка" Enums(distance, trending, rating)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/venues/search [get]
func (h *VenueHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	result, err := h.discoveryUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Total,
		Source:   result.Source,
		CacheHit: result.CacheHit,
	})
}

// GetCategories godoc
// @Summary List venue filter categories
// @Description Возвращает справочник категорий для фильтрации заведений
// @Tags Venues
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/venues/categories [get]
func (h *VenueHandler) GetCategories(c *fiber.Ctx) error {
	categories := []dto.CategoryInfo{
		{ID: domain.FilterCategoryAll, Label: "All", Icon: "🍽️"},
		{ID: domain.FilterCategoryStreetFood, Label: "Street Food", Icon: "🌮"},
		{ID: domain.FilterCategoryCafe, Label: "Cafes", Icon: "☕"},
		{ID: domain.FilterCategoryDessert, Label: "Desserts", Icon: "🍰"},
		{ID: domain.FilterCategoryFineDining, Label: "Fine Dining", Icon: "🍷"},
	}

	return utils.SendSuccess(c, fiber.Map{
		"categories": categories,
	}, &utils.Meta{
		Total: len(categories),
	})
}
