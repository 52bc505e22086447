package refdata

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/core"
)

// MemoryStore is an in-memory implementation of the ReferenceStore interface
type MemoryStore struct {
	mu        sync.RWMutex
	clients   []core.ACTLClientRow
	contracts []core.ClientContract
	meetings  []core.MeetingRecord
	logger    *zap.Logger
}

// NewMemoryStore creates a new in-memory store seeded with the reporting
// datasets
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		clients:   SeedACTLClients(),
		contracts: SeedClientContracts(),
		meetings:  SeedMeetings(),
		logger:    logger,
	}
}

// ACTLClients returns all tracker rows
func (s *MemoryStore) ACTLClients(ctx context.Context) ([]core.ACTLClientRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.ACTLClientRow, len(s.clients))
	copy(out, s.clients)
	return out, nil
}

// ClientContracts returns all client engagement records
func (s *MemoryStore) ClientContracts(ctx context.Context) ([]core.ClientContract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.ClientContract, len(s.contracts))
	copy(out, s.contracts)
	return out, nil
}

// Meetings returns all booked meeting records
func (s *MemoryStore) Meetings(ctx context.Context) ([]core.MeetingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.MeetingRecord, len(s.meetings))
	copy(out, s.meetings)
	return out, nil
}

// Close releases any underlying resources
func (s *MemoryStore) Close() error {
	return nil
}
