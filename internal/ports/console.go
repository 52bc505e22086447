package ports

import (
	"context"

	"github.com/mikey/coldflow-core/internal/core"
)

// Console defines the interface for the interactive command surface
type Console interface {
	// Execute runs one line of input through the command pipeline
	Execute(ctx context.Context, line string) *core.CommandOutcome

	// Start starts the interactive loop and blocks until input ends
	Start(ctx context.Context) error

	// Stop stops the console
	Stop() error
}
