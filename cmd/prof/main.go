package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkersGo/board"
	"checkersGo/bots"
	"checkersGo/log2"
)

// Profiles a fixed-depth search from the starting position.
func main() {
	app := &cli.App{
		Name:  "prof",
		Usage: "CPU-profile one search from the starting position",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "depth", Aliases: []string{"d"}, Value: 8, Usage: "search depth in turns"},
			&cli.StringFlag{Name: "out", Value: ".", Usage: "directory for cpu.pprof"},
		},
		Action: func(cCtx *cli.Context) error {
			if err := log2.Configure("info"); err != nil {
				return err
			}
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(cCtx.String("out"))).Stop()
			run(cCtx.Int("depth"))
			return nil
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("prof")
	}
}

func run(depth int) {
	bot := bots.NewMinimaxBot(depth)
	start := time.Now()
	score, turn := bot.Search(board.NewBoard(), depth, math.Inf(-1), math.Inf(1))
	elapsed := time.Since(start)

	stats := bot.Stats()
	fmt.Println("depth", depth, "score", score, "turn", turn)
	fmt.Println(stats, "time", elapsed, "nps", uint64(float64(stats.Nodes)/elapsed.Seconds()))
}
