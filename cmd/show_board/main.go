package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/reversi/internal/othello"
)

func main() {
	boardString := flag.String("board", "", "the board to show, rows separated by '/'")
	colorString := flag.String("color", "", "mark the valid moves of this color")
	flag.Parse()

	board, err := othello.ParseBoard(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *colorString == "" {
		board.Print()
		return
	}

	color, err := othello.ParseColor(*colorString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err = board.Fprint(os.Stdout, color); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	black, white := board.Score()
	fmt.Printf("black: %d, white: %d, valid moves for %s: %d\n", black, white, color, len(board.ValidMoves(color)))
}
