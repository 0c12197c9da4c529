package othello

import "fmt"

// Direction is a step on the board.
type Direction struct {
	DRow int
	DCol int
}

// Directions contains the 8 directions in which discs can be flanked.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

func isColor(c Color) bool {
	return c == Black || c == White
}

// hasOpponentNeighbor checks if any of the 8 squares around (row, col) holds an opponent disc.
func (b *Board) hasOpponentNeighbor(row, col int, color Color) bool {
	opponent := color.Opponent()

	for _, dir := range Directions {
		if b.At(row+dir.DRow, col+dir.DCol) == opponent {
			return true
		}
	}
	return false
}

// IsValidMove checks if color can play on (row, col).
func (b *Board) IsValidMove(row, col int, color Color) bool {
	if !isColor(color) || !b.InBounds(row, col) || b.At(row, col) != Empty {
		return false
	}

	// A move without an adjacent opponent disc can never flip anything.
	if !b.hasOpponentNeighbor(row, col, color) {
		return false
	}

	for _, dir := range Directions {
		if b.CountFlips(row, col, color, dir) > 0 {
			return true
		}
	}
	return false
}

// ValidMoves returns all valid moves for color in row-major order.
func (b *Board) ValidMoves(color Color) []Move {
	moves := make([]Move, 0)

	for row := range b.height {
		for col := range b.width {
			if b.IsValidMove(row, col, color) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// HasMoves checks if color has at least one valid move.
func (b *Board) HasMoves(color Color) bool {
	for row := range b.height {
		for col := range b.width {
			if b.IsValidMove(row, col, color) {
				return true
			}
		}
	}
	return false
}

// CountFlips returns how many opponent discs would be flipped in a single direction
// if color played on (row, col). The run only counts if it ends on a disc of color.
func (b *Board) CountFlips(row, col int, color Color, dir Direction) int {
	if !isColor(color) {
		return 0
	}

	opponent := color.Opponent()

	r, c := row+dir.DRow, col+dir.DCol
	flips := 0

	for b.InBounds(r, c) && b.At(r, c) == opponent {
		flips++
		r += dir.DRow
		c += dir.DCol
	}

	if b.InBounds(r, c) && b.At(r, c) == color {
		return flips
	}
	return 0
}

// EvaluateMove returns the total number of discs flipped if color played on (row, col),
// or -1 if the square is taken. It does not check if the move is valid.
func (b *Board) EvaluateMove(row, col int, color Color) int {
	if !b.InBounds(row, col) || b.At(row, col) != Empty {
		return -1
	}

	flips := 0
	for _, dir := range Directions {
		flips += b.CountFlips(row, col, color, dir)
	}
	return flips
}

// ApplyMove plays color on (row, col), flipping all flanked opponent discs.
// It returns the number of flipped discs. The board is left untouched on error.
func (b *Board) ApplyMove(row, col int, color Color) (int, error) {
	if !isColor(color) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColor, color)
	}

	if !b.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.width, b.height)
	}

	if !b.IsValidMove(row, col, color) {
		return 0, fmt.Errorf("%w: %s cannot play (%d,%d)", ErrIllegalMove, color, row, col)
	}

	// Compute all runs on the unmodified board before writing anything.
	var runs [len(Directions)]int
	for i, dir := range Directions {
		runs[i] = b.CountFlips(row, col, color, dir)
	}

	flipped := 0
	for i, dir := range Directions {
		for step := 1; step <= runs[i]; step++ {
			b.set(row+step*dir.DRow, col+step*dir.DCol, color)
		}
		flipped += runs[i]
	}

	b.set(row, col, color)

	return flipped, nil
}

// Play returns a copy of the board with the move applied. The receiver is not modified.
func (b *Board) Play(move Move, color Color) (*Board, error) {
	child := b.Clone()
	if _, err := child.ApplyMove(move.Row, move.Col, color); err != nil {
		return nil, err
	}
	return child, nil
}
