package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/repository"
)

// SubmitResults handles submission of arena match results.
func SubmitResults(c *fiber.Ctx) error {
	var payload models.ResultsPayload
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	if err := payload.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	repo := repository.NewResultRepository(c)
	inserted, err := repo.SubmitResults(c.Context(), payload)
	if errors.Is(err, repository.ErrResultsDisabled) {
		return errorJSON(c, fiber.StatusServiceUnavailable, err)
	}
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"inserted": inserted,
	})
}

// GetStandings returns wins, losses and draws per strategy pairing.
// The optional strategies query parameter is a comma separated filter.
func GetStandings(c *fiber.Ctx) error {
	var strategies []string
	if query := c.Query("strategies"); query != "" {
		strategies = strings.Split(query, ",")
	}

	repo := repository.NewResultRepository(c)
	standings, err := repo.GetStandings(c.Context(), strategies)
	if errors.Is(err, repository.ErrResultsDisabled) {
		return errorJSON(c, fiber.StatusServiceUnavailable, err)
	}
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(standings)
}
