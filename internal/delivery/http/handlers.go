package http

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/climateassistant/backend/internal/service"
	"github.com/climateassistant/backend/pkg/utils"
)

// Handler contains the JSON API handlers
type Handler struct {
	weatherSvc *service.WeatherService
}

// NewHandler creates a new handler
func NewHandler(weatherSvc *service.WeatherService) *Handler {
	return &Handler{weatherSvc: weatherSvc}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	status, code := "ok", fiber.StatusOK
	if err := h.weatherSvc.Health(c.Context()); err != nil {
		log.Printf("Health check failed: %v", err)
		status, code = "degraded", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"service": "climate-assistant",
		"version": "1.0.0",
	})
}

// GetWeather returns normalized current weather and advice for ?city=
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query parameter 'city' is required.")
	}

	weather, err := h.weatherSvc.GetCurrentWeather(c.Context(), city)
	if err != nil {
		var svcErr *service.Error
		if errors.As(err, &svcErr) {
			return fiber.NewError(fiber.StatusBadRequest, svcErr.Message)
		}
		log.Printf("Weather lookup for %q failed: %v", city, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch weather data")
	}

	return c.JSON(weather)
}

// GetHistory returns the most recent lookups
func (h *Handler) GetHistory(c *fiber.Ctx) error {
	limit := utils.Clamp(c.QueryInt("limit", 20), 1, 100)

	data, err := h.weatherSvc.RecentLookups(c.Context(), limit)
	if err != nil {
		log.Printf("History query failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch lookup history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

// ErrorHandler renders every error as {"error": "<message>"}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
