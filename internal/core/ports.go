package core

import (
	"context"
)

// NLUClient defines the interface for delegating command interpretation to an
// external language model service. Implementations must return an error for
// any failure (transport, empty reply, unparseable JSON); callers fall back
// to the deterministic interpreter and never partially trust the reply.
type NLUClient interface {
	// ParseCommand interprets free-form command text into a ParsedCommand
	ParseCommand(ctx context.Context, text string) (*ParsedCommand, error)
}

// FallbackInterpreter defines the mandatory deterministic parser that works
// without any external service. It never fails: unrecognized input resolves
// to an "unknown" command.
type FallbackInterpreter interface {
	Interpret(text string) *ParsedCommand
}

// ReferenceStore provides the fixed reporting datasets backing the ACTL
// tracker, overall client stats, and meeting queries
type ReferenceStore interface {
	// ACTLClients returns all tracker rows
	ACTLClients(ctx context.Context) ([]ACTLClientRow, error)

	// ClientContracts returns all client engagement records
	ClientContracts(ctx context.Context) ([]ClientContract, error)

	// Meetings returns all booked meeting records
	Meetings(ctx context.Context) ([]MeetingRecord, error)

	// Close releases any underlying resources
	Close() error
}
