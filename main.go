package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"checkersGo/board"
	"checkersGo/bots"
	"checkersGo/config"
	"checkersGo/game"
	"checkersGo/log2"
	"checkersGo/session"
)

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "loading .env:", err)
	}

	app := config.NewApp(play, selfplay)
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("checkers")
	}
}

func setup(cCtx *cli.Context) (config.Config, error) {
	cfg, err := config.FromCLI(cCtx)
	if err != nil {
		return cfg, err
	}
	if err := log2.Configure(cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// roster puts the configured bot first, followed by the others for cycling.
func roster(cfg config.Config) ([]bots.CheckersBot, error) {
	first, err := bots.New(cfg.Bot, cfg.Depth)
	if err != nil {
		return nil, err
	}
	list := []bots.CheckersBot{first}
	for _, name := range bots.Names() {
		if strings.EqualFold(name, cfg.Bot) {
			continue
		}
		bot, err := bots.New(name, cfg.Depth)
		if err != nil {
			return nil, err
		}
		list = append(list, bot)
	}
	return list, nil
}

func play(cCtx *cli.Context) error {
	cfg, err := setup(cCtx)
	if err != nil {
		return err
	}
	list, err := roster(cfg)
	if err != nil {
		return err
	}
	s, err := session.New(session.Options{
		BotSide:    cfg.BotSide,
		Bots:       list,
		ThinkDelay: cfg.ThinkDelay,
	})
	if err != nil {
		return err
	}
	log.Info().Str("bot", list[0].Name()).Stringer("side", cfg.BotSide).Msg("starting game")
	return game.Run(game.NewGame(s))
}

func selfplay(cCtx *cli.Context) error {
	cfg, err := setup(cCtx)
	if err != nil {
		return err
	}
	bot, err := bots.New(cfg.Bot, cfg.Depth)
	if err != nil {
		return err
	}

	pos := board.NewBoard()
	turns := 0
	for ; turns < cfg.MaxTurns && pos.Outcome() == board.NoOutcome; turns++ {
		player := pos.Turn()
		turn, err := bot.BestTurn(pos)
		if err != nil {
			return err
		}
		for _, m := range turn {
			if err := pos.Apply(m); err != nil {
				return err
			}
		}
		log.Info().Int("turn", turns+1).Stringer("player", player).Interface("moves", turn).Msg("played")
		log.Debug().Msg("\n" + pos.String())
	}

	blackMen, blackKings := pos.Count(board.Black)
	redMen, redKings := pos.Count(board.Red)
	fmt.Printf("%s\nresult %s after %d turns (black %d+%dK, red %d+%dK)\n",
		pos.String(), pos.Outcome(), turns, blackMen, blackKings, redMen, redKings)
	return nil
}
