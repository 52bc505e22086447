package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/mikey/coldflow-core/internal/adapters/nlu"
	"github.com/mikey/coldflow-core/internal/core"
)

// GeminiClient is an implementation of the NLUClient interface using Google Gemini
type GeminiClient struct {
	client       *genai.Client
	model        *genai.GenerativeModel
	modelName    string
	maxInputSize int
	logger       *zap.Logger
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxInputSize int,
	logger *zap.Logger,
) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(int32(maxTokens))

	return &GeminiClient{
		client:       client,
		model:        model,
		modelName:    modelName,
		maxInputSize: maxInputSize,
		logger:       logger,
	}, nil
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// truncateInput truncates the command text if it exceeds the maximum size
func (c *GeminiClient) truncateInput(text string) string {
	if c.maxInputSize <= 0 || len(text) <= c.maxInputSize {
		return text
	}

	truncated := text[:c.maxInputSize]
	c.logger.Debug("Command text truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", c.maxInputSize))

	return truncated
}

// ParseCommand interprets free-form command text into a ParsedCommand
func (c *GeminiClient) ParseCommand(ctx context.Context, text string) (*core.ParsedCommand, error) {
	prompt := nlu.SystemPrompt + "\n\n" + nlu.UserPrompt(c.truncateInput(text))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content with Gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])

	cmd, err := nlu.DecodeReply(responseText)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Gemini parsed command",
		zap.String("action", cmd.Action),
		zap.Float64("confidence", cmd.Confidence),
		zap.String("model", c.modelName))

	return cmd, nil
}
