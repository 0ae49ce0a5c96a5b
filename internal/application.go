package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type playResult struct {
	outcome entity.Outcome
	err     error
}

// RunApp - runs one game on the given input and output.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var opts []entity.Option
	if conf.LockFinishedGame {
		opts = append(opts, entity.WithFinishedGameLock())
	}

	game, err := entity.NewGame(conf.Dimension, opts...)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	controller := tictactoe.NewGameController(logger, game, in, out)

	// the controller blocks on input, so it runs aside to keep shutdown responsive
	resultCh := make(chan playResult, 1)
	go func() {
		log.Info("Starting game", "dimension", game.Dimension(), "lock_finished_game", conf.LockFinishedGame)
		outcome, playErr := controller.Play(ctx)
		resultCh <- playResult{outcome: outcome, err: playErr}
	}()

	select {
	case result := <-resultCh:
		if ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}
		if result.err != nil {
			return fmt.Errorf("game stopped: %w", result.err)
		}
		log.Info("Game finished", "outcome", result.outcome.String())
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
