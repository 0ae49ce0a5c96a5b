package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

// main - is the entry point of the application. It parses flags, loads the configuration and plays one game in the terminal.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	// a missing .env is fine, everything has a default
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env file: %v\n", err)
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "tictactoe",
		Usage: "play tic-tac-toe on an N x N board in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a yaml config file",
			},
			&cli.IntFlag{
				Name:    "dimension",
				Aliases: []string{"d"},
				Usage:   "board width and height",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug or info",
			},
			&cli.BoolFlag{
				Name:  "lock-finished-game",
				Usage: "reject moves once the game has an outcome",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	conf, err := initConfig(cmd)
	if err != nil {
		return err
	}

	logger := initLogger(conf)

	if err = app.RunApp(ctx, logger, conf, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// initialize config, flags win over file and environment.
func initConfig(cmd *cli.Command) (*config.Config, error) {
	conf, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.IsSet("dimension") {
		conf.Dimension = int(cmd.Int("dimension"))
	}
	if cmd.IsSet("log-level") {
		conf.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("lock-finished-game") {
		conf.LockFinishedGame = cmd.Bool("lock-finished-game")
	}

	if err = conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
