package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Board routes
	apiGroup.Get("/board/start", StartBoard)
	apiGroup.Post("/board/moves", ValidMoves)
	apiGroup.Post("/board/apply", ApplyMove)
	apiGroup.Post("/board/select", SelectMove)

	// Arena routes
	apiGroup.Post("/arena/results", middleware.Token(), SubmitResults)
	apiGroup.Get("/arena/standings", GetStandings)
}

func errorJSON(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request body",
	})
}
