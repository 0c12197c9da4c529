package othello

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the state of a single square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// Color is the color of a player. Only Black and White are valid colors.
type Color = Cell

var (
	ErrInvalidSize  = errors.New("invalid board size")
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidColor = errors.New("invalid color")
	ErrOutOfBounds  = errors.New("out of bounds")
	ErrIllegalMove  = errors.New("illegal move")
)

const minSize = 2

// Opponent returns the other color. Empty has no opponent and stays Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// String returns "black", "white" or "empty".
func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// MarshalText encodes a color as "black" or "white".
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes "black" or "white". Empty is not accepted, cells are not sent on their own.
func (c *Cell) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = color
	return nil
}

// ParseColor parses a color name, case-insensitive.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

// Move is a square on the board. The color that plays it is passed separately.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String returns the move as "(row,col)".
func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Board is a rectangular Othello board. Cells are stored row-major.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoardEmpty creates a board without any discs.
func NewBoardEmpty(width, height int) (*Board, error) {
	if width < minSize || height < minSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// NewBoard creates a board with the four center discs placed diagonally.
func NewBoard(width, height int) (*Board, error) {
	b, err := NewBoardEmpty(width, height)
	if err != nil {
		return nil, err
	}

	midRow := height / 2
	midCol := width / 2

	b.set(midRow-1, midCol-1, White)
	b.set(midRow, midCol, White)
	b.set(midRow-1, midCol, Black)
	b.set(midRow, midCol-1, Black)

	return b, nil
}

// NewBoardStart creates the standard 8x8 starting board.
func NewBoardStart() *Board {
	b, err := NewBoard(8, 8) //nolint:mnd
	if err != nil {
		panic(err)
	}
	return b
}

// ParseBoard parses the text form produced by String: rows separated by '/',
// with '.' for empty, 'B' for black and 'W' for white.
func ParseBoard(s string) (*Board, error) {
	rows := strings.Split(s, "/")
	height := len(rows)
	width := len(rows[0])

	b, err := NewBoardEmpty(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d", ErrInvalidBoard, row, len(line), width)
		}

		for col := range width {
			switch line[col] {
			case '.':
				// Already empty
			case 'B', 'b':
				b.set(row, col, Black)
			case 'W', 'w':
				b.set(row, col, White)
			default:
				return nil, fmt.Errorf("%w: unexpected character %q at (%d,%d)", ErrInvalidBoard, line[col], row, col)
			}
		}
	}

	return b, nil
}

// ParseBoardMust is like ParseBoard but panics on error.
func ParseBoardMust(s string) *Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds checks if (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// At returns the cell at (row, col). Out of bounds squares are reported as Empty.
func (b *Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.width+col]
}

// set assumes (row, col) is in bounds.
func (b *Board) set(row, col int, cell Cell) {
	b.cells[row*b.width+col] = cell
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)

	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// Equal checks if two boards have the same size and the same discs.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}

	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells in the given state.
func (b *Board) Count(cell Cell) int {
	count := 0
	for _, c := range b.cells {
		if c == cell {
			count++
		}
	}
	return count
}

// CountDiscs returns the number of discs on the board.
func (b *Board) CountDiscs() int {
	return len(b.cells) - b.Count(Empty)
}

// Score returns the disc count for both colors.
func (b *Board) Score() (black, white int) {
	return b.Count(Black), b.Count(White)
}

// String returns the text form of the board, see ParseBoard.
func (b *Board) String() string {
	var builder strings.Builder
	builder.Grow(len(b.cells) + b.height)

	for row := range b.height {
		if row > 0 {
			builder.WriteByte('/')
		}

		for col := range b.width {
			switch b.At(row, col) {
			case Black:
				builder.WriteByte('B')
			case White:
				builder.WriteByte('W')
			default:
				builder.WriteByte('.')
			}
		}
	}

	return builder.String()
}

// MarshalText encodes the board in its text form.
func (b *Board) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText decodes the text form of a board.
func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := ParseBoard(string(text))
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}
