package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/search"
)

func main() {
	boardString := flag.String("board", models.NewBoardStart().String(), "the board to show")
	turnString := flag.String("turn", "black", "the side to move, its legal moves are marked")
	flag.Parse()

	board, err := models.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	turn, err := models.ParseSide(*turnString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println(board.ASCIIArt(turn))
	fmt.Printf("Black: %d White: %d Evaluation: %.1f\n", board.Count(models.BLACK), board.Count(models.WHITE), search.Evaluate(board))
}
