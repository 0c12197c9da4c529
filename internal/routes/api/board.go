package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/selector"
)

// StartBoard returns a freshly set up board with the size from the query string.
func StartBoard(c *fiber.Ctx) error {
	width := c.QueryInt("width", config.DefaultBoardSize)
	height := c.QueryInt("height", config.DefaultBoardSize)

	if width > config.MaxBoardSize || height > config.MaxBoardSize {
		return errorJSON(c, fiber.StatusBadRequest, fmt.Errorf("board can be at most %dx%d", config.MaxBoardSize, config.MaxBoardSize))
	}

	board, err := othello.NewBoard(width, height)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.StartResponse{
		Board: board,
		Turn:  othello.Black,
	})
}

// ValidMoves lists the valid moves with their flip counts.
func ValidMoves(c *fiber.Ctx) error {
	var req models.BoardRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	repo := repository.NewAnalysisRepository(c)
	analysis, cached, err := repo.Analyze(c.Context(), req.Board, req.Color)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.MovesResponse{
		Analysis: analysis,
		Cached:   cached,
	})
}

// ApplyMove plays a move and returns the resulting board.
func ApplyMove(c *fiber.Ctx) error {
	var req models.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	board := req.Board.Clone()
	flipped, err := board.ApplyMove(req.Row, req.Col, req.Color)

	switch {
	case errors.Is(err, othello.ErrOutOfBounds):
		return errorJSON(c, fiber.StatusBadRequest, err)
	case errors.Is(err, othello.ErrIllegalMove):
		return errorJSON(c, fiber.StatusUnprocessableEntity, err)
	case err != nil:
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}

	next := req.Color.Opponent()

	return c.Status(fiber.StatusOK).JSON(models.ApplyResponse{
		Board:    board,
		Flipped:  flipped,
		NextTurn: next,
		GameOver: !board.HasMoves(next),
	})
}

// SelectMove asks a strategy for a move.
func SelectMove(c *fiber.Ctx) error {
	var req models.SelectRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	if err := req.Validate(); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	sel, err := selector.New(req.Strategy, req.Seed)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	move, err := sel.Select(req.Board, req.Color)
	if errors.Is(err, selector.ErrNoLegalMoves) {
		return errorJSON(c, fiber.StatusUnprocessableEntity, err)
	}
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.SelectResponse{
		Move:     move,
		Strategy: sel.Name(),
	})
}
