package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/adapters/refdata"
	"github.com/mikey/coldflow-core/internal/config"
	"github.com/mikey/coldflow-core/internal/core"
)

// RefDataFactory creates reference data stores based on configuration
type RefDataFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewRefDataFactory creates a new reference data factory
func NewRefDataFactory(cfg *config.Config, logger *zap.Logger) *RefDataFactory {
	return &RefDataFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateReferenceStore creates a reference store based on the configuration
func (f *RefDataFactory) CreateReferenceStore() (core.ReferenceStore, error) {
	refCfg := f.cfg.GetRefData()

	switch refCfg.Type {
	case "memory":
		return refdata.NewMemoryStore(f.logger), nil
	case "sqlite":
		if refCfg.SQLitePath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(refCfg.SQLitePath), 0755); err != nil {
				return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
			}
		}
		return refdata.NewSQLiteStore(refCfg.SQLitePath, f.logger)
	case "mysql":
		return refdata.NewMySQLStore(refCfg.MySQLDSN, f.logger)
	default:
		return nil, fmt.Errorf("unsupported reference store type: %s", refCfg.Type)
	}
}
