package gemini

import (
	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/core"
)

// Factory creates new instances of GeminiClient
type Factory struct {
	apiKey       string
	modelName    string
	maxTokens    int
	temperature  float32
	topP         float32
	maxInputSize int
	logger       *zap.Logger
}

// NewFactory creates a new factory for GeminiClient instances
func NewFactory(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxInputSize int,
	logger *zap.Logger,
) *Factory {
	return &Factory{
		apiKey:       apiKey,
		modelName:    modelName,
		maxTokens:    maxTokens,
		temperature:  temperature,
		topP:         topP,
		maxInputSize: maxInputSize,
		logger:       logger,
	}
}

// CreateNLUClient creates a new GeminiClient
func (f *Factory) CreateNLUClient() (core.NLUClient, error) {
	return NewGeminiClient(
		f.apiKey,
		f.modelName,
		f.maxTokens,
		f.temperature,
		f.topP,
		f.maxInputSize,
		f.logger,
	)
}
