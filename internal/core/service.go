package core

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Simulator executes a parsed command against sandbox data
type Simulator interface {
	Run(ctx context.Context, cmd *ParsedCommand) *SimulationResult
}

// ValidateFunc checks a parsed command against its schema and the session
type ValidateFunc func(cmd *ParsedCommand, sctx *SessionContext) *ValidationResult

// CommandService runs the full command pipeline: interpret, validate,
// simulate. The NLU client is optional; when absent or failing, the
// deterministic fallback interpreter takes over silently.
type CommandService struct {
	nlu      NLUClient
	fallback FallbackInterpreter
	validate ValidateFunc
	sim      Simulator
	logger   *zap.Logger
}

// NewCommandService creates a new command pipeline. nlu may be nil for
// offline use.
func NewCommandService(
	nlu NLUClient,
	fallback FallbackInterpreter,
	validate ValidateFunc,
	sim Simulator,
	logger *zap.Logger,
) *CommandService {
	return &CommandService{
		nlu:      nlu,
		fallback: fallback,
		validate: validate,
		sim:      sim,
		logger:   logger,
	}
}

// Parse interprets free-form text into a structured command. An NLU reply is
// only trusted whole: any error drops the entire reply and the fallback
// interpreter produces the command instead.
func (s *CommandService) Parse(ctx context.Context, text string) *ParsedCommand {
	if s.nlu != nil {
		cmd, err := s.nlu.ParseCommand(ctx, text)
		if err == nil && cmd != nil && cmd.Action != "" {
			s.backfill(cmd)
			s.logger.Debug("command interpreted",
				zap.String("action", cmd.Action),
				zap.String("interpreter", "nlu"))
			return cmd
		}
		if err != nil {
			s.logger.Debug("nlu interpretation failed, using fallback", zap.Error(err))
		}
	}
	cmd := s.fallback.Interpret(text)
	s.logger.Debug("command interpreted",
		zap.String("action", cmd.Action),
		zap.String("interpreter", "fallback"))
	return cmd
}

// backfill completes NLU replies that omit the intent or confidence fields
func (s *CommandService) backfill(cmd *ParsedCommand) {
	if cmd.Parameters == nil {
		cmd.Parameters = map[string]any{}
	}
	if cmd.Intent == "" {
		cmd.Intent = inferIntent(cmd.Action)
	}
	if cmd.Confidence == 0 {
		cmd.Confidence = 0.8
	}
}

// inferIntent derives the coarse category from an action name
func inferIntent(action string) Intent {
	action = strings.ToLower(action)
	switch {
	case strings.Contains(action, "find") || strings.Contains(action, "search"):
		return IntentSearch
	case strings.Contains(action, "enrich"):
		return IntentEnrich
	case strings.Contains(action, "verify"):
		return IntentVerify
	case strings.Contains(action, "campaign"):
		return IntentCampaign
	case strings.Contains(action, "show") || strings.Contains(action, "compare") ||
		strings.Contains(action, "stats"):
		return IntentAnalytics
	case strings.Contains(action, "domain") || strings.Contains(action, "deliverability") ||
		strings.Contains(action, "health"):
		return IntentDeliverability
	case strings.Contains(action, "reply") || strings.Contains(action, "replies"):
		return IntentReply
	case strings.Contains(action, "workflow") || strings.Contains(action, "automate"):
		return IntentWorkflow
	case strings.Contains(action, "export"):
		return IntentExport
	}
	return IntentOther
}

// Execute runs the whole pipeline for one line of input. It never returns an
// error: validation failures and simulation failures both surface as a
// result payload the caller can render.
func (s *CommandService) Execute(ctx context.Context, text string, session *SessionContext) *CommandOutcome {
	cmd := s.Parse(ctx, text)
	validation := s.validate(cmd, session)

	outcome := &CommandOutcome{
		Command:    cmd,
		Validation: validation,
	}

	if !validation.Valid {
		s.logger.Info("command rejected by validation",
			zap.String("action", cmd.Action),
			zap.Strings("errors", validation.Errors))
		outcome.Result = &SimulationResult{
			Success:     false,
			Message:     "Command validation failed: " + strings.Join(validation.Errors, "; "),
			SandboxMode: true,
		}
		return outcome
	}

	outcome.Result = s.sim.Run(ctx, cmd)
	return outcome
}
