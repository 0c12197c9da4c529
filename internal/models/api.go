package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/selector"
)

const maxResultsPerPayload = 10000

// BoardRequest is a board with the color to move.
type BoardRequest struct {
	Board *othello.Board `json:"board"`
	Color othello.Color  `json:"color"`
}

// Validate validates the board request.
func (r *BoardRequest) Validate() error {
	if r.Board == nil {
		return errors.New("board is missing")
	}

	if r.Color != othello.Black && r.Color != othello.White {
		return errors.New("color must be \"black\" or \"white\"")
	}

	if r.Board.Width() > config.MaxBoardSize || r.Board.Height() > config.MaxBoardSize {
		return fmt.Errorf("board can be at most %dx%d", config.MaxBoardSize, config.MaxBoardSize)
	}

	return nil
}

// MovesResponse is the response for a moves request.
type MovesResponse struct {
	Analysis
	Cached bool `json:"cached"`
}

// ApplyRequest asks to play a move on a board.
type ApplyRequest struct {
	BoardRequest
	Row int `json:"row"`
	Col int `json:"col"`
}

// ApplyResponse is the board after the move was played.
type ApplyResponse struct {
	Board    *othello.Board `json:"board"`
	Flipped  int            `json:"flipped"`
	NextTurn othello.Color  `json:"next_turn"`
	GameOver bool           `json:"game_over"`
}

// SelectRequest asks a strategy to pick a move.
type SelectRequest struct {
	BoardRequest
	Strategy string `json:"strategy"`
	Seed     int64  `json:"seed"`
}

// SelectResponse is the move the strategy picked.
type SelectResponse struct {
	othello.Move
	Strategy string `json:"strategy"`
}

// StartResponse contains a freshly set up board.
type StartResponse struct {
	Board *othello.Board `json:"board"`
	Turn  othello.Color  `json:"turn"`
}

// MatchResult is the outcome of one arena match. No moves are stored.
type MatchResult struct {
	ID         uuid.UUID `json:"id"          db:"id"`
	Black      string    `json:"black"       db:"black"`
	White      string    `json:"white"       db:"white"`
	Width      int       `json:"width"       db:"width"`
	Height     int       `json:"height"      db:"height"`
	Rule       string    `json:"rule"        db:"rule"`
	Winner     Winner    `json:"winner"      db:"winner"`
	BlackDiscs int       `json:"black_discs" db:"black_discs"`
	WhiteDiscs int       `json:"white_discs" db:"white_discs"`
	Moves      int       `json:"moves"       db:"moves"`
}

// NewMatchResult creates a MatchResult with a new ID.
func NewMatchResult(black, white string, width, height int, rule game.WinnerRule, result game.Result) MatchResult {
	return MatchResult{
		ID:         uuid.New(),
		Black:      black,
		White:      white,
		Width:      width,
		Height:     height,
		Rule:       rule.String(),
		Winner:     Winner{result.Winner},
		BlackDiscs: result.Black,
		WhiteDiscs: result.White,
		Moves:      result.Moves,
	}
}

// Validate validates a match result.
func (m *MatchResult) Validate() error {
	if m.ID == uuid.Nil {
		return errors.New("id is missing")
	}

	for _, name := range []string{m.Black, m.White} {
		if _, err := selector.New(name, 0); err != nil {
			return err
		}
	}

	rule, err := game.ParseWinnerRule(m.Rule)
	if err != nil {
		return err
	}

	if m.Width < 2 || m.Height < 2 || m.Width > config.MaxBoardSize || m.Height > config.MaxBoardSize {
		return fmt.Errorf("invalid board size %dx%d", m.Width, m.Height)
	}

	if m.BlackDiscs < 0 || m.WhiteDiscs < 0 || m.BlackDiscs+m.WhiteDiscs > m.Width*m.Height {
		return errors.New("disc counts are out of range")
	}

	if m.Moves != m.BlackDiscs+m.WhiteDiscs-4 {
		return errors.New("move count does not match disc counts")
	}

	if rule == game.ScoreRule && m.Winner.Outcome != scoreWinner(m.BlackDiscs, m.WhiteDiscs) {
		return fmt.Errorf("winner %s does not match disc counts", m.Winner)
	}

	return nil
}

func scoreWinner(black, white int) game.Outcome {
	switch {
	case black > white:
		return game.BlackWins
	case white > black:
		return game.WhiteWins
	default:
		return game.Draw
	}
}

// Winner stores a game.Outcome as text in the database.
type Winner struct {
	game.Outcome
}

// Value implements the driver.Valuer interface.
func (w Winner) Value() (driver.Value, error) {
	return w.String(), nil
}

// Scan implements the sql.Scanner interface.
func (w *Winner) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return w.UnmarshalText(v)
	case string:
		return w.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into Winner", value)
	}
}

// ResultsPayload is a batch of match results from one arena run.
type ResultsPayload struct {
	RunID   uuid.UUID     `json:"run_id"`
	Results []MatchResult `json:"results"`
}

// Validate validates the results payload.
func (p *ResultsPayload) Validate() error {
	if p.RunID == uuid.Nil {
		return errors.New("run_id is missing")
	}

	if len(p.Results) == 0 {
		return errors.New("results is empty")
	}

	if len(p.Results) > maxResultsPerPayload {
		return fmt.Errorf("at most %d results can be submitted at once", maxResultsPerPayload)
	}

	for i := range p.Results {
		if err := p.Results[i].Validate(); err != nil {
			return fmt.Errorf("result %d: %w", i, err)
		}
	}

	return nil
}

// Standing aggregates the results of one strategy pairing.
type Standing struct {
	Black     string    `json:"black"      db:"black"`
	White     string    `json:"white"      db:"white"`
	Matches   int       `json:"matches"    db:"matches"`
	BlackWins int       `json:"black_wins" db:"black_wins"`
	WhiteWins int       `json:"white_wins" db:"white_wins"`
	Draws     int       `json:"draws"      db:"draws"`
	LastPlay  time.Time `json:"last_play"  db:"last_play"`
}

type VersionResponse struct {
	Commit string `json:"commit"`
}
