package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lk16/reversi/internal/othello"
)

var errNoInput = errors.New("no more input")

// humanSelector asks a person for moves until a valid one is entered.
type humanSelector struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newHumanSelector(in io.Reader, out io.Writer) *humanSelector {
	return &humanSelector{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *humanSelector) Name() string {
	return "human"
}

func parseMove(line string) (othello.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	if len(fields) != 2 { //nolint:mnd
		return othello.Move{}, fmt.Errorf("expected \"row col\", got %q", line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return othello.Move{}, fmt.Errorf("invalid row: %w", err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return othello.Move{}, fmt.Errorf("invalid column: %w", err)
	}

	return othello.Move{Row: row, Col: col}, nil
}

func (h *humanSelector) Select(board *othello.Board, color othello.Color) (othello.Move, error) {
	for {
		fmt.Fprintf(h.out, "Move for %s (row col): ", color)

		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return othello.Move{}, err
			}
			return othello.Move{}, errNoInput
		}

		move, err := parseMove(h.scanner.Text())
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}

		if !board.IsValidMove(move.Row, move.Col, color) {
			fmt.Fprintf(h.out, "%s is not a valid move. Try again.\n", move)
			continue
		}

		return move, nil
	}
}
