package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/console"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrInterrupted = errors.New("interrupted by signal")

// RunApp - runs one game on stdin/stdout.
func RunApp(logger *zap.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run plays a session over the given streams until the game ends, the
// input closes, ctx is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context, logger *zap.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With(zap.String("component", "app"))

	renderer, err := console.NewRenderer(conf.Output.Format, conf.Output.Color)
	if err != nil {
		return fmt.Errorf("could not create renderer: %w", err)
	}

	botService := service.NewBotService(logger)
	gamePlayService := service.NewGamePlayService(logger, botService)
	server := console.New(logger, gamePlayService, renderer, in, out, conf.Game.HumanSymbol)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", zap.Stringer("signal", sig))
			return fmt.Errorf("%w: %v", ErrInterrupted, sig)
		case <-groupCtx.Done():
			return nil
		}
	})

	group.Go(func() error {
		defer cancel()

		log.Info("Starting console session", zap.String("format", conf.Output.Format))
		if err := server.Start(groupCtx); err != nil {
			return fmt.Errorf("console session failed: %w", err)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Session finished")

	return nil
}
