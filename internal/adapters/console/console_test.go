package console

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/adapters/refdata"
	"github.com/mikey/coldflow-core/internal/core"
	"github.com/mikey/coldflow-core/internal/interpreter"
	"github.com/mikey/coldflow-core/internal/sandbox"
	"github.com/mikey/coldflow-core/internal/validator"
)

func newTestConsole(in string) (*Console, *bytes.Buffer) {
	logger := zap.NewNop()
	sim := sandbox.New(
		rand.New(rand.NewSource(1)),
		refdata.NewMemoryStore(logger),
		logger,
	)
	service := core.NewCommandService(nil, interpreter.New(), validator.Validate, sim, logger)

	out := &bytes.Buffer{}
	c := NewConsole(service, sim, nil, logger, strings.NewReader(in), out)
	return c, out
}

func TestExecuteTracksSessionLeads(t *testing.T) {
	c, _ := newTestConsole("")
	ctx := context.Background()

	// Verification before any search is blocked by validation
	outcome := c.Execute(ctx, "verify these emails")
	require.False(t, outcome.Result.Success)
	assert.Contains(t, outcome.Result.Message, "No leads available")

	outcome = c.Execute(ctx, "find 20 CTOs at SaaS companies")
	require.True(t, outcome.Result.Success)

	outcome = c.Execute(ctx, "verify these emails")
	require.True(t, outcome.Result.Success)
	assert.Equal(t, "Verified 20 emails", outcome.Result.Message)
}

func TestExecuteWarnsOnUnknownCampaign(t *testing.T) {
	c, _ := newTestConsole("")

	outcome := c.Execute(context.Background(), `pause campaign "Moonshot"`)
	require.True(t, outcome.Result.Success)
	require.NotEmpty(t, outcome.Validation.Warnings)
	assert.Contains(t, outcome.Validation.Warnings[0], "not found")
}

func TestStartRendersOutcomes(t *testing.T) {
	c, out := newTestConsole("find 10 CTOs at SaaS companies\nexit\n")

	err := c.Start(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Found 10 leads matching criteria")
	assert.Contains(t, out.String(), "Estimated cost")
}

func TestStartStopsOnQuit(t *testing.T) {
	c, out := newTestConsole("quit\nfind 10 leads\n")

	err := c.Start(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Found")
}

func TestStartSkipsBlankLines(t *testing.T) {
	c, out := newTestConsole("\n\nhelp\n")

	err := c.Start(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Finding Leads")
}
