package othello

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ASCIIArtLines returns the ascii art lines for the board.
// Empty squares listed in marks are shown with a dot in the middle.
func (b *Board) ASCIIArtLines(marks []Move) []string {
	marked := make(map[Move]bool, len(marks))
	for _, move := range marks {
		marked[move] = true
	}

	lines := make([]string, 0, b.height+2) //nolint:mnd

	var header, rule strings.Builder
	header.WriteString("   ")
	rule.WriteString("   ")
	for col := range b.width {
		fmt.Fprintf(&header, "%d ", col%10) //nolint:mnd
		rule.WriteString("- ")
	}
	lines = append(lines, strings.TrimRight(header.String(), " "), strings.TrimRight(rule.String(), " "))

	for row := range b.height {
		var line strings.Builder
		fmt.Fprintf(&line, "%d| ", row%10) //nolint:mnd

		for col := range b.width {
			switch {
			case b.At(row, col) == Black:
				line.WriteString("● ")
			case b.At(row, col) == White:
				line.WriteString("○ ")
			case marked[Move{Row: row, Col: col}]:
				line.WriteString("· ")
			default:
				line.WriteString(". ")
			}
		}

		lines = append(lines, strings.TrimRight(line.String(), " "))
	}

	return lines
}

// Fprint writes the ascii art of the board to w, marking the valid moves of color.
func (b *Board) Fprint(w io.Writer, color Color) error {
	for _, line := range b.ASCIIArtLines(b.ValidMoves(color)) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Print prints the board to the console. This is used for debugging.
func (b *Board) Print() {
	for _, line := range b.ASCIIArtLines(nil) {
		fmt.Fprintln(os.Stdout, line)
	}
}
