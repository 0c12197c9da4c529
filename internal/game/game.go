package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/selector"
)

var ErrGameOver = errors.New("game is over")

// WinnerRule decides who wins once the side to move has no valid moves.
type WinnerRule int

const (
	// ScoreRule awards the game to the color with the most discs.
	ScoreRule WinnerRule = iota

	// StalemateRule awards the game to the opponent of the color that cannot move.
	StalemateRule
)

// ParseWinnerRule parses "score" or "stalemate".
func ParseWinnerRule(s string) (WinnerRule, error) {
	switch strings.ToLower(s) {
	case "score", "":
		return ScoreRule, nil
	case "stalemate":
		return StalemateRule, nil
	default:
		return ScoreRule, fmt.Errorf("unknown winner rule: %q", s)
	}
}

// String returns "score" or "stalemate".
func (r WinnerRule) String() string {
	if r == StalemateRule {
		return "stalemate"
	}
	return "score"
}

// Outcome is the final outcome of a game.
type Outcome int

const (
	Draw Outcome = iota
	BlackWins
	WhiteWins
)

// String returns a human readable outcome.
func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "black"
	case WhiteWins:
		return "white"
	default:
		return "draw"
	}
}

// MarshalText encodes the outcome as "black", "white" or "draw".
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes "black", "white" or "draw".
func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "black":
		*o = BlackWins
	case "white":
		*o = WhiteWins
	case "draw":
		*o = Draw
	default:
		return fmt.Errorf("unknown outcome: %q", text)
	}
	return nil
}

func winsFor(color othello.Color) Outcome {
	if color == othello.Black {
		return BlackWins
	}
	return WhiteWins
}

// Result describes a finished game.
type Result struct {
	Winner Outcome `json:"winner"`
	Black  int     `json:"black"`
	White  int     `json:"white"`
	Moves  int     `json:"moves"`
}

// State is the state of the game.
type State int

const (
	AwaitingMove State = iota
	GameOver
)

// Game holds a board and the turn order.
type Game struct {
	board  *othello.Board
	turn   othello.Color
	rule   WinnerRule
	state  State
	moves  int
	result Result
}

// New creates a game on a freshly set up board. Black moves first.
func New(width, height int, rule WinnerRule) (*Game, error) {
	board, err := othello.NewBoard(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to set up board: %w", err)
	}

	return NewWithBoard(board, othello.Black, rule)
}

// NewWithBoard creates a game from an existing board. The game takes ownership of the board.
func NewWithBoard(board *othello.Board, turn othello.Color, rule WinnerRule) (*Game, error) {
	if turn != othello.Black && turn != othello.White {
		return nil, fmt.Errorf("%w: %s", othello.ErrInvalidColor, turn)
	}

	g := &Game{
		board: board,
		turn:  turn,
		rule:  rule,
		state: AwaitingMove,
	}
	g.checkGameOver()
	return g, nil
}

// Board returns a copy of the current board.
func (g *Game) Board() *othello.Board {
	return g.board.Clone()
}

// Turn returns the color to move. It is meaningless once the game is over.
func (g *Game) Turn() othello.Color {
	return g.turn
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Over checks if the game is over.
func (g *Game) Over() bool {
	return g.state == GameOver
}

// Result returns the result. It is only meaningful once the game is over.
func (g *Game) Result() Result {
	return g.result
}

// ValidMoves returns the valid moves for the color to move.
func (g *Game) ValidMoves() []othello.Move {
	if g.Over() {
		return []othello.Move{}
	}
	return g.board.ValidMoves(g.turn)
}

// Play plays a move for the color to move. The board is unchanged if an error is returned.
func (g *Game) Play(move othello.Move) error {
	if g.Over() {
		return ErrGameOver
	}

	if _, err := g.board.ApplyMove(move.Row, move.Col, g.turn); err != nil {
		return err
	}

	g.moves++
	g.turn = g.turn.Opponent()
	g.checkGameOver()
	return nil
}

// Step asks sel for a move for the color to move and plays it.
func (g *Game) Step(sel selector.Selector) (othello.Move, error) {
	if g.Over() {
		return othello.Move{}, ErrGameOver
	}

	move, err := sel.Select(g.board, g.turn)
	if err != nil {
		return othello.Move{}, fmt.Errorf("%s failed to select a move: %w", sel.Name(), err)
	}

	if err = g.Play(move); err != nil {
		return othello.Move{}, fmt.Errorf("%s selected %s: %w", sel.Name(), move, err)
	}

	return move, nil
}

func (g *Game) checkGameOver() {
	if g.board.HasMoves(g.turn) {
		return
	}

	black, white := g.board.Score()

	var winner Outcome
	switch {
	case g.rule == StalemateRule:
		winner = winsFor(g.turn.Opponent())
	case black > white:
		winner = BlackWins
	case white > black:
		winner = WhiteWins
	default:
		winner = Draw
	}

	g.state = GameOver
	g.result = Result{
		Winner: winner,
		Black:  black,
		White:  white,
		Moves:  g.moves,
	}
}

// Event is passed to the observer of Run after every move.
type Event struct {
	Color othello.Color
	Move  othello.Move
	Game  *Game
}

// Run plays the game to the end, asking black and white for their moves.
// onMove may be nil.
func Run(ctx context.Context, g *Game, black, white selector.Selector, onMove func(Event)) (Result, error) {
	for !g.Over() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		sel := black
		if g.Turn() == othello.White {
			sel = white
		}

		color := g.Turn()
		move, err := g.Step(sel)
		if err != nil {
			return Result{}, err
		}

		if onMove != nil {
			onMove(Event{Color: color, Move: move, Game: g})
		}
	}

	return g.Result(), nil
}
