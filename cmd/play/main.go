package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/selector"
)

const (
	modeHumanVsRandom  = "human-vs-random"
	modeAIVsRandom     = "ai-vs-random"
	modeRandomVsRandom = "random-vs-random"
)

func main() {
	config.SetLogLevel()

	mode := flag.String("mode", modeHumanVsRandom, "one of human-vs-random, ai-vs-random, random-vs-random")
	width := flag.Int("width", config.DefaultBoardSize, "board width")
	height := flag.Int("height", config.DefaultBoardSize, "board height")
	ruleName := flag.String("rule", "score", "winner rule: score or stalemate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the random strategy")
	flag.Parse()

	if err := play(os.Stdin, os.Stdout, *mode, *width, *height, *ruleName, *seed); err != nil {
		slog.Error("Game failed", "error", err)
		os.Exit(1)
	}
}

// players returns the selectors for black and white.
func players(mode string, in io.Reader, out io.Writer, seed int64) (selector.Selector, selector.Selector, error) {
	switch mode {
	case modeHumanVsRandom:
		return newHumanSelector(in, out), selector.NewRandom(seed), nil
	case modeAIVsRandom:
		return selector.NewGreedy(), selector.NewRandom(seed), nil
	case modeRandomVsRandom:
		return selector.NewRandom(seed), selector.NewRandom(seed + 1), nil
	default:
		return nil, nil, fmt.Errorf("unknown mode: %q", mode)
	}
}

func play(in io.Reader, out io.Writer, mode string, width, height int, ruleName string, seed int64) error {
	rule, err := game.ParseWinnerRule(ruleName)
	if err != nil {
		return err
	}

	black, white, err := players(mode, in, out, seed)
	if err != nil {
		return err
	}

	g, err := game.New(width, height, rule)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	board := g.Board()
	fmt.Fprintf(out, "Current player: %s\n", g.Turn())
	if err = board.Fprint(out, g.Turn()); err != nil {
		return err
	}

	result, err := game.Run(ctx, g, black, white, func(e game.Event) {
		fmt.Fprintf(out, "%s plays %s\n\n", e.Color, e.Move)

		if e.Game.Over() {
			return
		}

		fmt.Fprintf(out, "Current player: %s\n", e.Game.Turn())
		_ = e.Game.Board().Fprint(out, e.Game.Turn())
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Game over. Winner: %s (black %d, white %d, %d moves)\n", result.Winner, result.Black, result.White, result.Moves)
	for _, line := range g.Board().ASCIIArtLines(nil) {
		fmt.Fprintln(out, line)
	}

	return nil
}
