package interpreter

import (
	"strings"
	"time"

	"github.com/mikey/coldflow-core/internal/core"
)

// Interpreter is the deterministic rule-based command parser. It runs a
// priority-ordered cascade of intent detectors over the lower-cased input;
// the first detector whose predicate matches wins, with no backtracking and
// no cross-detector scoring. It never fails: input nothing matches resolves
// to an "unknown" command with low confidence.
type Interpreter struct {
	detectors []detector
	now       func() time.Time
}

// input is the raw utterance plus its lower-cased, trimmed form, computed
// once per call
type input struct {
	raw   string
	lower string
}

// detector pairs an intent predicate with its parameter extractor
type detector struct {
	name  string
	match func(in input) bool
	parse func(in input, it *Interpreter) *core.ParsedCommand
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithClock overrides the time source used for date defaults
func WithClock(now func() time.Time) Option {
	return func(it *Interpreter) {
		it.now = now
	}
}

// New creates an Interpreter with the full detector cascade
func New(opts ...Option) *Interpreter {
	it := &Interpreter{
		detectors: cascade(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Interpret parses free-form command text into a structured command
func (it *Interpreter) Interpret(text string) *core.ParsedCommand {
	in := input{
		raw:   strings.TrimSpace(text),
		lower: strings.ToLower(strings.TrimSpace(text)),
	}
	for _, d := range it.detectors {
		if d.match(in) {
			return d.parse(in, it)
		}
	}
	return &core.ParsedCommand{
		Action:     "unknown",
		Parameters: map[string]any{"originalCommand": text},
		Intent:     core.IntentOther,
		Confidence: 0.3,
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
