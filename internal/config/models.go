package config

import "time"

// NLUConfig represents the configuration for the NLU provider
type NLUConfig struct {
	Provider string
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region       string
	ModelID      string
	MaxTokens    int
	Temperature  float32
	TopP         float32
	MaxInputSize int
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey       string
	ModelName    string
	MaxTokens    int
	Temperature  float32
	TopP         float32
	MaxInputSize int
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey       string
	ModelName    string
	MaxTokens    int
	Temperature  float32
	TopP         float32
	MaxInputSize int
}

// RefDataConfig represents the configuration for the reference data store
type RefDataConfig struct {
	Type       string
	SQLitePath string
	MySQLDSN   string
}

// SandboxConfig represents the configuration for the simulation engine
type SandboxConfig struct {
	Seed                   int64
	LatencyMin             time.Duration
	LatencyMax             time.Duration
	ProgressionDailyVolume int
	ProgressionTotalLeads  int
}

// SessionConfig represents the default session context
type SessionConfig struct {
	Integrations []string
}

// GetNLU returns the NLU configuration
func (c *Config) GetNLU() NLUConfig {
	return NLUConfig{
		Provider: c.GetString("nlu.provider"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:       c.GetString("bedrock.region"),
		ModelID:      c.GetString("bedrock.model_id"),
		MaxTokens:    c.GetInt("bedrock.max_tokens"),
		Temperature:  float32(c.GetFloat64("bedrock.temperature")),
		TopP:         float32(c.GetFloat64("bedrock.top_p")),
		MaxInputSize: c.GetInt("bedrock.max_input_size"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:       c.GetString("gemini.api_key"),
		ModelName:    c.GetString("gemini.model_name"),
		MaxTokens:    c.GetInt("gemini.max_tokens"),
		Temperature:  float32(c.GetFloat64("gemini.temperature")),
		TopP:         float32(c.GetFloat64("gemini.top_p")),
		MaxInputSize: c.GetInt("gemini.max_input_size"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:       c.GetString("openai.api_key"),
		ModelName:    c.GetString("openai.model_name"),
		MaxTokens:    c.GetInt("openai.max_tokens"),
		Temperature:  float32(c.GetFloat64("openai.temperature")),
		TopP:         float32(c.GetFloat64("openai.top_p")),
		MaxInputSize: c.GetInt("openai.max_input_size"),
	}
}

// GetRefData returns the reference data store configuration
func (c *Config) GetRefData() RefDataConfig {
	return RefDataConfig{
		Type:       c.GetString("refdata.type"),
		SQLitePath: c.GetString("refdata.sqlite_path"),
		MySQLDSN:   c.GetString("refdata.mysql_dsn"),
	}
}

// GetSandbox returns the simulation engine configuration
func (c *Config) GetSandbox() SandboxConfig {
	latencyMin, err := c.GetDuration("sandbox.latency_min")
	if err != nil {
		latencyMin = 400 * time.Millisecond
	}
	latencyMax, err := c.GetDuration("sandbox.latency_max")
	if err != nil {
		latencyMax = 2 * time.Second
	}
	return SandboxConfig{
		Seed:                   c.GetInt64("sandbox.seed"),
		LatencyMin:             latencyMin,
		LatencyMax:             latencyMax,
		ProgressionDailyVolume: c.GetInt("sandbox.progression_daily_volume"),
		ProgressionTotalLeads:  c.GetInt("sandbox.progression_total_leads"),
	}
}

// GetSession returns the default session configuration
func (c *Config) GetSession() SessionConfig {
	return SessionConfig{
		Integrations: c.GetStringSlice("session.integrations"),
	}
}
