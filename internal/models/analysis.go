package models

import (
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/selector"
)

// MoveAnalysis is a valid move with the number of discs it flips.
type MoveAnalysis struct {
	othello.Move
	Flips int `json:"flips"`
}

// Analysis lists all valid moves of a color on a board.
type Analysis struct {
	Board *othello.Board `json:"board"`
	Color othello.Color  `json:"color"`
	Moves []MoveAnalysis `json:"moves"`
	Best  *othello.Move  `json:"best"`
}

// NewAnalysis computes the analysis. Best is the greedy choice, or nil without valid moves.
func NewAnalysis(board *othello.Board, color othello.Color) Analysis {
	validMoves := board.ValidMoves(color)

	moves := make([]MoveAnalysis, len(validMoves))
	for i, move := range validMoves {
		moves[i] = MoveAnalysis{
			Move:  move,
			Flips: board.EvaluateMove(move.Row, move.Col, color),
		}
	}

	analysis := Analysis{
		Board: board.Clone(),
		Color: color,
		Moves: moves,
	}

	if best, err := selector.NewGreedy().Select(board, color); err == nil {
		analysis.Best = &best
	}

	return analysis
}

// CacheKey returns the key under which the analysis is cached.
func (a Analysis) CacheKey() string {
	return AnalysisCacheKey(a.Board, a.Color)
}

// AnalysisCacheKey returns the cache key of the analysis of board for color.
func AnalysisCacheKey(board *othello.Board, color othello.Color) string {
	return "analysis:" + color.String() + ":" + board.String()
}
