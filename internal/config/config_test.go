package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	assert.Equal(t, "", cfg.GetNLU().Provider)
	assert.Equal(t, "memory", cfg.GetRefData().Type)
	assert.Equal(t, ":memory:", cfg.GetRefData().SQLitePath)
	assert.Equal(t, "info", cfg.GetString("logging.level"))
}

func TestSandboxDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	sb := cfg.GetSandbox()
	assert.Equal(t, int64(0), sb.Seed)
	assert.Equal(t, 400*time.Millisecond, sb.LatencyMin)
	assert.Equal(t, 2*time.Second, sb.LatencyMax)
	assert.Equal(t, 120, sb.ProgressionDailyVolume)
	assert.Equal(t, 171, sb.ProgressionTotalLeads)
}

func TestProviderConfigOverrides(t *testing.T) {
	v := NewEmptyViper()
	v.Set("nlu.provider", "openai")
	v.Set("openai.api_key", "sk-test")
	v.Set("openai.model_name", "gpt-4o")
	cfg := NewFromViper(v)

	require.Equal(t, "openai", cfg.GetNLU().Provider)
	openai := cfg.GetOpenAI()
	assert.Equal(t, "sk-test", openai.APIKey)
	assert.Equal(t, "gpt-4o", openai.ModelName)
	assert.Equal(t, 1024, openai.MaxTokens)
}

func TestBedrockDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	bedrock := cfg.GetBedrock()
	assert.Equal(t, "us-east-1", bedrock.Region)
	assert.Equal(t, "anthropic.claude-v2", bedrock.ModelID)
	assert.Equal(t, 4096, bedrock.MaxInputSize)
}
