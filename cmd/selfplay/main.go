package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/search"
)

func main() {
	config.SetLogLevel()

	blackDepth := flag.String("black-depth", "medium", "search depth of black: easy, medium, hard or a number")
	whiteDepth := flag.String("white-depth", "medium", "search depth of white: easy, medium, hard or a number")
	parallel := flag.Bool("parallel", false, "search root moves in parallel")
	flag.Parse()

	depths := make(map[models.Color]search.Difficulty, 2)
	for side, value := range map[models.Color]string{models.BLACK: *blackDepth, models.WHITE: *whiteDepth} {
		difficulty, err := search.ParseDifficulty(value)
		if err != nil {
			slog.Error("Invalid depth", "side", side, "error", err)
			os.Exit(1)
		}
		depths[side] = difficulty
	}

	fmt.Printf("Black: %s, White: %s\n", depths[models.BLACK], depths[models.WHITE])

	if err := selfPlay(depths, *parallel); err != nil {
		slog.Error("Self play failed", "error", err)
		os.Exit(1)
	}
}

func selfPlay(depths map[models.Color]search.Difficulty, parallel bool) error {
	game := models.NewGame()
	fmt.Println(game.Board().ASCIIArt(game.Turn()))

	for !game.IsOver() {
		side := game.Turn()
		depth := depths[side].Depth()

		var move models.Move
		var ok bool
		if parallel {
			move, ok = search.BestMoveParallel(game.Board(), side, depth)
		} else {
			move, ok = search.BestMove(game.Board(), side, depth)
		}

		if !ok {
			fmt.Printf("%s passes\n", side)
			if err := game.Pass(); err != nil {
				return err
			}
			continue
		}

		if err := game.PushMove(move); err != nil {
			return err
		}

		fmt.Printf("%s plays %s\n", side, move)
		fmt.Println(game.Board().ASCIIArt(game.Turn()))
	}

	board := game.Board()
	fmt.Printf("Game over. Black: %d White: %d Winner: %s\n", board.Count(models.BLACK), board.Count(models.WHITE), game.Winner())
	return nil
}
