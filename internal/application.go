package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/engine"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solo/transport/cli"
)

// RunApp - plays games on the console until the player declines a rematch, quits or the context ends.
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

	style, ok := cli.StyleByName(conf.BoardStyle)
	if !ok {
		log.Warn("unknown board style, using light", "style", conf.BoardStyle)
	}

	moveEngine := engine.New()
	console := cli.New(logger, in, out, style)
	defer console.Close()

	for games := 1; ; games++ {
		session := tictactoe.NewSession(logger, moveEngine, conf.ComputerDelay)
		log.Info("Starting game", "game", games, "session_id", session.ID())

		err := console.Play(ctx, session)
		switch {
		case errors.Is(err, cli.ErrQuit), errors.Is(err, cli.ErrInputClosed), errors.Is(err, context.Canceled),
			errors.Is(err, context.DeadlineExceeded):
			log.Info("Game abandoned", "session_id", session.ID(), "reason", err)
			return nil
		case err != nil:
			return fmt.Errorf("game %s failed: %w", session.ID(), err)
		}

		if !console.AskReplay(ctx) {
			return nil
		}
	}
}
