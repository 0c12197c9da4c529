package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lk16/reversi/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input   string
		want    othello.Move
		wantErr bool
	}{
		{input: "2 3", want: othello.Move{Row: 2, Col: 3}},
		{input: " 4,5 ", want: othello.Move{Row: 4, Col: 5}},
		{input: "2", wantErr: true},
		{input: "a b", wantErr: true},
		{input: "1 2 3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			move, err := parseMove(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, move)
		})
	}
}

func TestHumanSelector_RetriesUntilValid(t *testing.T) {
	in := strings.NewReader("nonsense\n0 0\n3 3\n2 3\n")
	var out bytes.Buffer

	human := newHumanSelector(in, &out)
	move, err := human.Select(othello.NewBoardStart(), othello.Black)
	require.NoError(t, err)
	require.Equal(t, othello.Move{Row: 2, Col: 3}, move)
	require.Equal(t, 2, strings.Count(out.String(), "is not a valid move"))
}

func TestHumanSelector_NoInput(t *testing.T) {
	human := newHumanSelector(strings.NewReader(""), &bytes.Buffer{})

	_, err := human.Select(othello.NewBoardStart(), othello.Black)
	require.ErrorIs(t, err, errNoInput)
}

func TestPlay(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{name: "ai", mode: modeAIVsRandom},
		{name: "random", mode: modeRandomVsRandom},
		{name: "unknown", mode: "human-vs-human", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := play(strings.NewReader(""), &out, tt.mode, 6, 6, "score", 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Contains(t, out.String(), "Game over. Winner: ")
		})
	}
}

func TestPlay_HumanRunsOutOfInput(t *testing.T) {
	err := play(strings.NewReader("2 3\n"), &bytes.Buffer{}, modeHumanVsRandom, 8, 8, "score", 1)
	require.ErrorIs(t, err, errNoInput)
}
