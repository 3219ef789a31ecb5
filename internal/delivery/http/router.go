package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/climateassistant/backend/internal/service"
	"github.com/climateassistant/backend/internal/web"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, weatherSvc *service.WeatherService, sessions *web.Sessions) {
	handler := NewHandler(weatherSvc)
	ui := NewUIHandler(sessions)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// Search page
	app.Get("/", ui.Index)

	// API routes
	api := app.Group("/api")
	{
		api.Get("/weather", handler.GetWeather)
		api.Get("/history", handler.GetHistory)
	}
}
