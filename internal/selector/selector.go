package selector

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lk16/reversi/internal/othello"
)

var (
	ErrNoLegalMoves    = errors.New("no legal moves")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

const (
	RandomName = "random"
	GreedyName = "greedy"
)

// Selector picks one of the valid moves for a color.
type Selector interface {
	// Select returns the move to play. It does not modify the board.
	Select(board *othello.Board, color othello.Color) (othello.Move, error)

	// Name returns the strategy name.
	Name() string
}

// New returns the selector for a strategy name. The seed is only used by the random strategy.
func New(name string, seed int64) (Selector, error) {
	switch name {
	case RandomName:
		return NewRandom(seed), nil
	case GreedyName:
		return NewGreedy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Names returns all strategy names accepted by New.
func Names() []string {
	return []string{RandomName, GreedyName}
}

func validMoves(board *othello.Board, color othello.Color) ([]othello.Move, error) {
	moves := board.ValidMoves(color)
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoLegalMoves, color)
	}
	return moves, nil
}

// Random picks a valid move uniformly at random.
// It is not safe for concurrent use, give every goroutine its own Random.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random selector with a fixed seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))} //nolint:gosec
}

// Select picks a random valid move.
func (r *Random) Select(board *othello.Board, color othello.Color) (othello.Move, error) {
	moves, err := validMoves(board, color)
	if err != nil {
		return othello.Move{}, err
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// Name returns "random".
func (r *Random) Name() string {
	return RandomName
}

// Greedy picks the move that flips the most discs. On a tie the first move in
// row-major order wins.
type Greedy struct{}

// NewGreedy creates a Greedy selector.
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Select picks the valid move with the highest flip count.
func (g *Greedy) Select(board *othello.Board, color othello.Color) (othello.Move, error) {
	moves, err := validMoves(board, color)
	if err != nil {
		return othello.Move{}, err
	}

	bestMove := moves[0]
	bestScore := -1

	for _, move := range moves {
		score := board.EvaluateMove(move.Row, move.Col, color)
		if score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, nil
}

// Name returns "greedy".
func (g *Greedy) Name() string {
	return GreedyName
}
