package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/core"
	"github.com/mikey/coldflow-core/internal/di"
	"github.com/mikey/coldflow-core/internal/ports"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	console ports.Console,
	nluClient core.NLUClient,
	store core.ReferenceStore,
) error {
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Run the console loop until input ends
	doneCh := make(chan error, 1)
	go func() {
		doneCh <- console.Start(ctx)
	}()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Shutting down...")
		if err := console.Stop(); err != nil {
			logger.Error("Failed to stop console", zap.Error(err))
		}
		cancel()
	case err := <-doneCh:
		if err != nil && err != context.Canceled {
			logger.Error("Console exited with error", zap.Error(err))
		}
	}

	// Close any resources that need closing
	if closer, ok := nluClient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close NLU client", zap.Error(err))
		}
	}
	if err := store.Close(); err != nil {
		logger.Error("Failed to close reference store", zap.Error(err))
	}

	logger.Info("Shutdown complete")
	return nil
}
