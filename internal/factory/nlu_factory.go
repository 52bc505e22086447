package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/adapters/nlu/bedrock"
	"github.com/mikey/coldflow-core/internal/adapters/nlu/gemini"
	"github.com/mikey/coldflow-core/internal/adapters/nlu/openai"
	"github.com/mikey/coldflow-core/internal/config"
	"github.com/mikey/coldflow-core/internal/core"
	"github.com/mikey/coldflow-core/internal/utils"
)

// NLUFactory creates NLU clients
type NLUFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewNLUFactory creates a new NLU factory
func NewNLUFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *NLUFactory {
	return &NLUFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateNLUClient creates a new NLU client based on the configuration. An
// empty provider returns nil: the command pipeline then runs on the
// deterministic interpreter alone.
func (f *NLUFactory) CreateNLUClient() (core.NLUClient, error) {
	nluConfig := f.cfg.GetNLU()

	switch nluConfig.Provider {
	case "":
		return nil, nil
	case "bedrock":
		factory := bedrock.NewFactory(f.cfg, f.logger, f.textProcessor)
		return factory.CreateNLUClient()
	case "gemini":
		geminiCfg := f.cfg.GetGemini()
		factory := gemini.NewFactory(
			geminiCfg.APIKey,
			geminiCfg.ModelName,
			geminiCfg.MaxTokens,
			geminiCfg.Temperature,
			geminiCfg.TopP,
			geminiCfg.MaxInputSize,
			f.logger,
		)
		return factory.CreateNLUClient()
	case "openai":
		factory := openai.NewFactory(f.cfg, f.logger, f.textProcessor)
		return factory.CreateNLUClient()
	default:
		return nil, fmt.Errorf("unsupported NLU provider: %s", nluConfig.Provider)
	}
}
