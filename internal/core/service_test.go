package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubNLU struct {
	cmd *ParsedCommand
	err error
}

func (s *stubNLU) ParseCommand(ctx context.Context, text string) (*ParsedCommand, error) {
	return s.cmd, s.err
}

type stubFallback struct {
	cmd *ParsedCommand
}

func (s *stubFallback) Interpret(text string) *ParsedCommand {
	if s.cmd != nil {
		return s.cmd
	}
	return &ParsedCommand{
		Action:     "unknown",
		Parameters: map[string]any{"originalCommand": text},
		Intent:     IntentOther,
		Confidence: 0.3,
	}
}

type stubSimulator struct {
	lastCmd *ParsedCommand
	result  *SimulationResult
}

func (s *stubSimulator) Run(ctx context.Context, cmd *ParsedCommand) *SimulationResult {
	s.lastCmd = cmd
	if s.result != nil {
		return s.result
	}
	return &SimulationResult{Success: true, Message: "ok", SandboxMode: true}
}

func passValidator(cmd *ParsedCommand, sctx *SessionContext) *ValidationResult {
	return &ValidationResult{Valid: true, Errors: []string{}, Warnings: []string{}}
}

func newTestService(nlu NLUClient, fallback FallbackInterpreter, validate ValidateFunc, sim Simulator) *CommandService {
	if fallback == nil {
		fallback = &stubFallback{}
	}
	if validate == nil {
		validate = passValidator
	}
	if sim == nil {
		sim = &stubSimulator{}
	}
	return NewCommandService(nlu, fallback, validate, sim, zap.NewNop())
}

func TestParseWithoutNLUUsesFallback(t *testing.T) {
	fallback := &stubFallback{cmd: &ParsedCommand{
		Action:     "find",
		Parameters: map[string]any{"count": 50},
		Intent:     IntentSearch,
		Confidence: 0.8,
	}}
	svc := newTestService(nil, fallback, nil, nil)

	cmd := svc.Parse(context.Background(), "find 50 leads")
	assert.Equal(t, "find", cmd.Action)
	assert.Equal(t, IntentSearch, cmd.Intent)
}

func TestParseTrustsCompleteNLUReply(t *testing.T) {
	nlu := &stubNLU{cmd: &ParsedCommand{
		Action:     "verify",
		Parameters: map[string]any{"target": "current_leads"},
		Intent:     IntentVerify,
		Confidence: 0.95,
	}}
	fallback := &stubFallback{cmd: &ParsedCommand{Action: "unknown"}}
	svc := newTestService(nlu, fallback, nil, nil)

	cmd := svc.Parse(context.Background(), "verify these")
	assert.Equal(t, "verify", cmd.Action)
	assert.Equal(t, 0.95, cmd.Confidence)
}

func TestParseFallsBackOnNLUError(t *testing.T) {
	nlu := &stubNLU{err: errors.New("upstream timeout")}
	fallback := &stubFallback{cmd: &ParsedCommand{Action: "show_campaigns", Parameters: map[string]any{}}}
	svc := newTestService(nlu, fallback, nil, nil)

	cmd := svc.Parse(context.Background(), "show campaigns")
	assert.Equal(t, "show_campaigns", cmd.Action)
}

func TestParseFallsBackOnEmptyNLUAction(t *testing.T) {
	nlu := &stubNLU{cmd: &ParsedCommand{Action: ""}}
	fallback := &stubFallback{cmd: &ParsedCommand{Action: "help", Parameters: map[string]any{}}}
	svc := newTestService(nlu, fallback, nil, nil)

	cmd := svc.Parse(context.Background(), "help")
	assert.Equal(t, "help", cmd.Action)
}

func TestParseBackfillsNLUReply(t *testing.T) {
	nlu := &stubNLU{cmd: &ParsedCommand{Action: "find"}}
	svc := newTestService(nlu, nil, nil, nil)

	cmd := svc.Parse(context.Background(), "find leads")
	assert.NotNil(t, cmd.Parameters)
	assert.Equal(t, IntentSearch, cmd.Intent)
	assert.Equal(t, 0.8, cmd.Confidence)
}

func TestInferIntent(t *testing.T) {
	tests := []struct {
		action string
		want   Intent
	}{
		{"find", IntentSearch},
		{"search_leads", IntentSearch},
		{"enrich", IntentEnrich},
		{"verify", IntentVerify},
		{"pause_campaign", IntentCampaign},
		{"show_replies", IntentAnalytics},
		{"overall_stats", IntentAnalytics},
		{"check_deliverability", IntentDeliverability},
		{"reply_summary", IntentReply},
		{"automate_sequence", IntentWorkflow},
		{"export", IntentExport},
		{"EXPORT", IntentExport},
		{"something_else", IntentOther},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, inferIntent(tt.action), "action: %s", tt.action)
	}
}

func TestExecuteRunsSimulationWhenValid(t *testing.T) {
	sim := &stubSimulator{}
	fallback := &stubFallback{cmd: &ParsedCommand{Action: "find", Parameters: map[string]any{}}}
	svc := newTestService(nil, fallback, nil, sim)

	outcome := svc.Execute(context.Background(), "find leads", &SessionContext{})
	require.NotNil(t, outcome.Result)
	assert.True(t, outcome.Result.Success)
	require.NotNil(t, sim.lastCmd)
	assert.Equal(t, "find", sim.lastCmd.Action)
}

func TestExecuteBlocksOnValidationErrors(t *testing.T) {
	sim := &stubSimulator{}
	failing := func(cmd *ParsedCommand, sctx *SessionContext) *ValidationResult {
		return &ValidationResult{
			Valid:  false,
			Errors: []string{"campaign_name: required", "days: must be a positive integer"},
		}
	}
	svc := newTestService(nil, nil, failing, sim)

	outcome := svc.Execute(context.Background(), "simulate", &SessionContext{})
	require.NotNil(t, outcome.Result)
	assert.False(t, outcome.Result.Success)
	assert.Equal(t, "Command validation failed: campaign_name: required; days: must be a positive integer", outcome.Result.Message)
	assert.True(t, outcome.Result.SandboxMode)
	assert.Nil(t, sim.lastCmd)
}

func TestExecuteAlwaysReturnsOutcome(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil)

	outcome := svc.Execute(context.Background(), "", nil)
	require.NotNil(t, outcome)
	assert.NotNil(t, outcome.Command)
	assert.NotNil(t, outcome.Validation)
	assert.NotNil(t, outcome.Result)
}
