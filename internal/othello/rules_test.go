package othello

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_ValidMoves_Start(t *testing.T) {
	board := NewBoardStart()

	expectedBlack := []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}
	require.Equal(t, expectedBlack, board.ValidMoves(Black))

	expectedWhite := []Move{{2, 4}, {3, 5}, {4, 2}, {5, 3}}
	require.Equal(t, expectedWhite, board.ValidMoves(White))
}

func TestBoard_ValidMoves_None(t *testing.T) {
	board := ParseBoardMust("BB/BB")

	moves := board.ValidMoves(White)
	require.NotNil(t, moves)
	require.Empty(t, moves)
	require.False(t, board.HasMoves(White))
	require.False(t, board.HasMoves(Black))
}

func TestBoard_ValidMoves_OnlyEmptyCells(t *testing.T) {
	boards := []string{
		NewBoardStart().String(),
		"BWW.WW/.WWB..",
		".BW./W...",
		"BBBBB/BWWWB/BW.WB/BWWWB/BBBBB",
		"..W.B/.WWW./WW.WW/.BWB./B.B.B",
	}

	for _, s := range boards {
		board := ParseBoardMust(s)
		for _, color := range []Color{Black, White} {
			for _, move := range board.ValidMoves(color) {
				assert.Equal(t, Empty, board.At(move.Row, move.Col), "board %s move %s", s, move)
			}
		}
	}
}

func TestBoard_IsValidMove(t *testing.T) {
	tests := []struct {
		name  string
		board string
		row   int
		col   int
		color Color
		want  bool
	}{
		{name: "start d3", board: NewBoardStart().String(), row: 2, col: 3, color: Black, want: true},
		{name: "start occupied", board: NewBoardStart().String(), row: 3, col: 3, color: Black, want: false},
		{name: "corner without neighbors", board: NewBoardStart().String(), row: 0, col: 0, color: Black, want: false},
		{name: "edge without neighbors", board: NewBoardStart().String(), row: 7, col: 4, color: White, want: false},
		{name: "diagonal without anchor", board: NewBoardStart().String(), row: 2, col: 2, color: Black, want: false},
		{name: "own disc right next to target", board: ".BW./W...", row: 0, col: 0, color: Black, want: false},
		{name: "run ends on empty", board: ".WW./....", row: 0, col: 3, color: Black, want: false},
		{name: "run ends on edge", board: ".WW/...", row: 0, col: 0, color: Black, want: false},
		{name: "long run", board: "BWWWW./......", row: 0, col: 5, color: Black, want: true},
		{name: "out of bounds", board: NewBoardStart().String(), row: -1, col: 3, color: Black, want: false},
		{name: "empty is not a color", board: NewBoardStart().String(), row: 2, col: 3, color: Empty, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := ParseBoardMust(tt.board)
			require.Equal(t, tt.want, board.IsValidMove(tt.row, tt.col, tt.color))
		})
	}
}

func TestBoard_CountFlips(t *testing.T) {
	tests := []struct {
		name  string
		board string
		row   int
		col   int
		color Color
		dir   Direction
		want  int
	}{
		{name: "single", board: NewBoardStart().String(), row: 2, col: 3, color: Black, dir: Direction{1, 0}, want: 1},
		{name: "wrong direction", board: NewBoardStart().String(), row: 2, col: 3, color: Black, dir: Direction{0, 1}, want: 0},
		{name: "two", board: "BWW./....", row: 0, col: 3, color: Black, dir: Direction{0, -1}, want: 2},
		{name: "no anchor", board: ".WW./....", row: 0, col: 3, color: Black, dir: Direction{0, -1}, want: 0},
		{name: "off board", board: "WW./...", row: 0, col: 2, color: Black, dir: Direction{0, -1}, want: 0},
		{name: "diagonal", board: "B../.W./...", row: 2, col: 2, color: Black, dir: Direction{-1, -1}, want: 1},
		{name: "adjacent own disc", board: "B./..", row: 0, col: 1, color: Black, dir: Direction{0, -1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := ParseBoardMust(tt.board)
			require.Equal(t, tt.want, board.CountFlips(tt.row, tt.col, tt.color, tt.dir))
		})
	}
}

func TestBoard_CountFlips_Symmetry(t *testing.T) {
	// Mirror every board horizontally and swap colors.
	tests := []struct {
		board    string
		mirrored string
		col      int
		dir      Direction
		want     int
	}{
		{board: "BWW./....", mirrored: ".BBW/....", col: 3, dir: Direction{0, -1}, want: 2},
		{board: "BWWW./.....", mirrored: ".BBBW/.....", col: 4, dir: Direction{0, -1}, want: 3},
		{board: "BW./...", mirrored: ".BW/...", col: 2, dir: Direction{0, -1}, want: 1},
	}

	for _, tt := range tests {
		board := ParseBoardMust(tt.board)
		mirrored := ParseBoardMust(tt.mirrored)
		mirroredCol := board.Width() - 1 - tt.col

		require.Equal(t, tt.want, board.CountFlips(0, tt.col, Black, tt.dir))
		require.Equal(t, tt.want, mirrored.CountFlips(0, mirroredCol, White, tt.dir.Reverse()))
	}
}

func TestBoard_EvaluateMove(t *testing.T) {
	tests := []struct {
		name  string
		board string
		row   int
		col   int
		color Color
		want  int
	}{
		{name: "occupied", board: NewBoardStart().String(), row: 3, col: 3, color: Black, want: -1},
		{name: "out of bounds", board: NewBoardStart().String(), row: 8, col: 0, color: Black, want: -1},
		{name: "start", board: NewBoardStart().String(), row: 2, col: 3, color: Black, want: 1},
		{name: "no flips", board: NewBoardStart().String(), row: 0, col: 0, color: Black, want: 0},
		{name: "all directions", board: "BBBBB/BWWWB/BW.WB/BWWWB/BBBBB", row: 2, col: 2, color: Black, want: 8},
		{name: "only one run flanked", board: "BWW.WW/.WWB..", row: 0, col: 3, color: Black, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := ParseBoardMust(tt.board)
			require.Equal(t, tt.want, board.EvaluateMove(tt.row, tt.col, tt.color))
		})
	}
}

func TestBoard_EvaluateMove_AgreesWithIsValidMove(t *testing.T) {
	board := ParseBoardMust("..W.B/.WWW./WW.WW/.BWB./B.B.B")

	for row := range board.Height() {
		for col := range board.Width() {
			if board.At(row, col) != Empty {
				continue
			}
			for _, color := range []Color{Black, White} {
				valid := board.IsValidMove(row, col, color)
				assert.Equal(t, valid, board.EvaluateMove(row, col, color) > 0, "(%d,%d) %s", row, col, color)
			}
		}
	}
}

func TestBoard_ApplyMove_Start(t *testing.T) {
	board := NewBoardStart()

	flipped, err := board.ApplyMove(2, 3, Black)
	require.NoError(t, err)
	require.Equal(t, 1, flipped)

	expected := ParseBoardMust("......../......../...B..../...BB.../...BW.../......../......../........")
	require.True(t, expected.Equal(board), "got %s", board)
}

func TestBoard_ApplyMove_AllDirections(t *testing.T) {
	board := ParseBoardMust("BBBBB/BWWWB/BW.WB/BWWWB/BBBBB")

	flipped, err := board.ApplyMove(2, 2, Black)
	require.NoError(t, err)
	require.Equal(t, 8, flipped)
	require.Equal(t, 25, board.Count(Black))
	require.Equal(t, 0, board.Count(White))
}

func TestBoard_ApplyMove_OnlyFlankedRuns(t *testing.T) {
	board := ParseBoardMust("BWW.WW/.WWB..")

	flipped, err := board.ApplyMove(0, 3, Black)
	require.NoError(t, err)
	require.Equal(t, 2, flipped)

	// The run to the right is not flanked, the diagonal ones neither.
	require.Equal(t, "BBBBWW/.WWB..", board.String())
}

func TestBoard_ApplyMove_Errors(t *testing.T) {
	tests := []struct {
		name    string
		row     int
		col     int
		color   Color
		wantErr error
	}{
		{name: "occupied", row: 3, col: 3, color: Black, wantErr: ErrIllegalMove},
		{name: "no flips", row: 0, col: 0, color: White, wantErr: ErrIllegalMove},
		{name: "out of bounds", row: 3, col: 8, color: Black, wantErr: ErrOutOfBounds},
		{name: "negative", row: -1, col: -1, color: White, wantErr: ErrOutOfBounds},
		{name: "not a color", row: 2, col: 3, color: Empty, wantErr: ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoardStart()

			flipped, err := board.ApplyMove(tt.row, tt.col, tt.color)
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, 0, flipped)
			require.True(t, NewBoardStart().Equal(board), "board must not change")
		})
	}
}

func TestBoard_ApplyMove_Properties(t *testing.T) {
	board := NewBoardStart()
	color := Black

	// Play a deterministic game by always taking the last valid move.
	for board.HasMoves(color) {
		moves := board.ValidMoves(color)
		move := moves[len(moves)-1]

		before := board.CountDiscs()
		expectedFlips := board.EvaluateMove(move.Row, move.Col, color)

		flipped, err := board.ApplyMove(move.Row, move.Col, color)
		require.NoError(t, err)
		require.Equal(t, expectedFlips, flipped)
		require.Equal(t, before+1, board.CountDiscs())

		require.False(t, board.IsValidMove(move.Row, move.Col, Black))
		require.False(t, board.IsValidMove(move.Row, move.Col, White))

		color = color.Opponent()
	}
}

func TestBoard_Queries_Idempotent(t *testing.T) {
	board := ParseBoardMust("..W.B/.WWW./WW.WW/.BWB./B.B.B")
	snapshot := board.String()

	first := board.ValidMoves(Black)
	firstEval := board.EvaluateMove(2, 2, Black)
	firstValid := board.IsValidMove(2, 2, Black)

	for range 3 {
		require.Equal(t, first, board.ValidMoves(Black))
		require.Equal(t, firstEval, board.EvaluateMove(2, 2, Black))
		require.Equal(t, firstValid, board.IsValidMove(2, 2, Black))
	}

	require.Equal(t, snapshot, board.String())
}

func TestBoard_Play(t *testing.T) {
	board := NewBoardStart()

	child, err := board.Play(Move{Row: 5, Col: 4}, Black)
	require.NoError(t, err)
	require.Equal(t, 5, child.CountDiscs())
	require.Equal(t, 4, board.CountDiscs())

	_, err = board.Play(Move{Row: 0, Col: 0}, Black)
	require.ErrorIs(t, err, ErrIllegalMove)
}
