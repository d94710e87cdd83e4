package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"

	"checkersGo/board"
	"checkersGo/bots"
)

const (
	DefaultBot        = bots.MinimaxName
	DefaultSide       = "black"
	DefaultThinkDelay = 500 * time.Millisecond
	DefaultMaxTurns   = 200
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Depth      int
	BotSide    board.Player
	Bot        string
	LogLevel   string
	ThinkDelay time.Duration
	// MaxTurns caps self-play games.
	MaxTurns int
}

func Default() Config {
	return Config{
		Depth:      bots.DefaultDepth,
		BotSide:    board.Black,
		Bot:        DefaultBot,
		LogLevel:   "info",
		ThinkDelay: DefaultThinkDelay,
		MaxTurns:   DefaultMaxTurns,
	}
}

func (c Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("%w: depth must be at least 1, got %d", ErrInvalidConfig, c.Depth)
	}
	if !slices.Contains(bots.Names(), strings.ToLower(c.Bot)) {
		return fmt.Errorf("%w: unknown bot %q (want one of %s)", ErrInvalidConfig, c.Bot, strings.Join(bots.Names(), ", "))
	}
	if c.ThinkDelay < 0 {
		return fmt.Errorf("%w: negative think delay %s", ErrInvalidConfig, c.ThinkDelay)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("%w: max turns must be at least 1, got %d", ErrInvalidConfig, c.MaxTurns)
	}
	return nil
}

func ParseSide(s string) (board.Player, error) {
	switch strings.ToLower(s) {
	case "black", "b":
		return board.Black, nil
	case "red", "r":
		return board.Red, nil
	}
	return board.Black, fmt.Errorf("%w: unknown side %q", ErrInvalidConfig, s)
}

// LoadEnv loads path into the environment when it exists. Variables that
// are already set win.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

func Flags() []cli.Flag {
	def := Default()
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "depth",
			Aliases: []string{"d"},
			Usage:   "search depth in turns",
			Value:   def.Depth,
			EnvVars: []string{"CHECKERS_DEPTH"},
		},
		&cli.StringFlag{
			Name:    "bot-side",
			Aliases: []string{"s"},
			Usage:   "side played by the bot: black or red",
			Value:   DefaultSide,
			EnvVars: []string{"CHECKERS_BOT_SIDE"},
		},
		&cli.StringFlag{
			Name:    "bot",
			Aliases: []string{"b"},
			Usage:   "bot to play against: " + strings.Join(bots.Names(), ", "),
			Value:   def.Bot,
			EnvVars: []string{"CHECKERS_BOT"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "trace, debug, info, warn or error",
			Value:   def.LogLevel,
			EnvVars: []string{"CHECKERS_LOG_LEVEL"},
		},
		&cli.DurationFlag{
			Name:    "think-delay",
			Usage:   "minimum time the bot takes per turn",
			Value:   def.ThinkDelay,
			EnvVars: []string{"CHECKERS_THINK_DELAY"},
		},
		&cli.IntFlag{
			Name:    "max-turns",
			Usage:   "turn limit for self-play",
			Value:   def.MaxTurns,
			EnvVars: []string{"CHECKERS_MAX_TURNS"},
		},
	}
}

// NewApp builds the checkers command line. The config flags are
// registered once, on the App: subcommands resolve them through their
// parent context, so "checkers --depth 3 selfplay" reaches selfplay with
// depth 3. Registering them again on a subcommand would shadow the global
// value with the subcommand's default.
func NewApp(play, selfplay cli.ActionFunc) *cli.App {
	return &cli.App{
		Name:   "checkers",
		Usage:  "play checkers against a minimax bot",
		Flags:  Flags(),
		Action: play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "open the board window (default)",
				Action: play,
			},
			{
				Name:   "selfplay",
				Usage:  "let the configured bot play both sides without a window",
				Action: selfplay,
			},
		},
	}
}

// FromCLI builds a validated Config from flags registered with Flags.
func FromCLI(cCtx *cli.Context) (Config, error) {
	side, err := ParseSide(cCtx.String("bot-side"))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Depth:      cCtx.Int("depth"),
		BotSide:    side,
		Bot:        cCtx.String("bot"),
		LogLevel:   cCtx.String("log-level"),
		ThinkDelay: cCtx.Duration("think-delay"),
		MaxTurns:   cCtx.Int("max-turns"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
