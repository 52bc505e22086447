package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/config"
	"github.com/mikey/coldflow-core/internal/core"
	"github.com/mikey/coldflow-core/internal/factory"
	"github.com/mikey/coldflow-core/internal/interpreter"
	"github.com/mikey/coldflow-core/internal/logging"
	"github.com/mikey/coldflow-core/internal/sandbox"
	"github.com/mikey/coldflow-core/internal/validator"
)

var (
	// NLU provider flags
	provider    = flag.String("provider", "", "NLU provider (bedrock, gemini, openai); empty uses the deterministic interpreter only")
	maxTokens   = flag.Int("max-tokens", 1024, "Maximum tokens for the NLU response")
	temperature = flag.Float64("temperature", 0.1, "Temperature for NLU generation")
	topP        = flag.Float64("top-p", 0.9, "Top-p for NLU generation")
	maxInput    = flag.Int("max-input-size", 4096, "Maximum command length to send to the NLU")

	// Bedrock flags
	bedrockRegion  = flag.String("bedrock-region", "us-east-1", "AWS region for Bedrock")
	bedrockModelID = flag.String("bedrock-model", "anthropic.claude-v2", "Bedrock model ID")

	// Gemini flags
	geminiAPIKey    = flag.String("gemini-api-key", "", "API key for Google Gemini")
	geminiModelName = flag.String("gemini-model", "gemini-pro", "Gemini model name")

	// OpenAI flags
	openaiAPIKey    = flag.String("openai-api-key", "", "API key for OpenAI")
	openaiModelName = flag.String("openai-model", "gpt-4", "OpenAI model name")

	// Sandbox flags
	seed       = flag.Int64("seed", 0, "Random seed for the sandbox (0 = time-based)")
	refStore   = flag.String("ref-store", "memory", "Reference data store (memory, sqlite, mysql)")
	sqlitePath = flag.String("sqlite-path", ":memory:", "SQLite database path")
	mysqlDSN   = flag.String("mysql-dsn", "", "MySQL DSN for reference data")

	// Input flags
	command    = flag.String("command", "", "Command to run (reads stdin if not specified)")
	jsonOutput = flag.Bool("json", false, "Print the full outcome as JSON")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	var cfg *config.Config
	var err error

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration from file if specified
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		// Create config from command line flags
		cfg = createConfigFromFlags()
	}

	// Initialize NLU client (nil when no provider is configured)
	textProcessor := factory.NewTextProcessorFactory(logger).CreateTextProcessor()
	nluFactory := factory.NewNLUFactory(cfg, logger, textProcessor)
	nluClient, err := nluFactory.CreateNLUClient()
	if err != nil {
		logger.Fatal("Failed to create NLU client", zap.Error(err))
	}

	// Initialize reference store
	refFactory := factory.NewRefDataFactory(cfg, logger)
	store, err := refFactory.CreateReferenceStore()
	if err != nil {
		logger.Fatal("Failed to create reference store", zap.Error(err))
	}
	defer store.Close()

	// Seed the sandbox. No latency window: one-shot runs should not sleep.
	runSeed := cfg.GetSandbox().Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(runSeed))
	sim := sandbox.New(rng, store, logger)

	service := core.NewCommandService(nluClient, interpreter.New(), validator.Validate, sim, logger)

	// Read command from flag, remaining args, or stdin
	text := strings.TrimSpace(*command)
	if text == "" && flag.NArg() > 0 {
		text = strings.Join(flag.Args(), " ")
	}
	if text == "" {
		logger.Info("Reading command from stdin")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			text = strings.TrimSpace(scanner.Text())
		}
	}
	if text == "" {
		logger.Fatal("No command given")
	}

	session := &core.SessionContext{
		AvailableCampaigns: sim.CampaignNames(),
		Integrations:       cfg.GetSession().Integrations,
	}

	outcome := service.Execute(context.Background(), text, session)

	if *jsonOutput {
		encoded, err := json.MarshalIndent(outcome, "", "  ")
		if err != nil {
			logger.Fatal("Failed to encode outcome", zap.Error(err))
		}
		fmt.Println(string(encoded))
		return
	}

	printOutcome(outcome)

	// Close any resources that need closing
	if closer, ok := nluClient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close NLU client", zap.Error(err))
		}
	}

	if !outcome.Result.Success {
		os.Exit(1)
	}
}

// printOutcome renders a one-shot result for human readers
func printOutcome(outcome *core.CommandOutcome) {
	fmt.Printf("\n=== Command ===\n")
	fmt.Printf("Action: %s\n", outcome.Command.Action)
	fmt.Printf("Intent: %s\n", outcome.Command.Intent)
	fmt.Printf("Source: %s\n", outcome.Command.Source)
	fmt.Printf("Confidence: %.2f\n", outcome.Command.Confidence)

	if len(outcome.Validation.Warnings) > 0 {
		fmt.Printf("\n=== Warnings ===\n")
		for _, warning := range outcome.Validation.Warnings {
			fmt.Printf("- %s\n", warning)
		}
	}

	fmt.Printf("\n=== Result ===\n")
	fmt.Printf("Success: %t\n", outcome.Result.Success)
	fmt.Printf("Message: %s\n", outcome.Result.Message)
	for _, cost := range outcome.Result.CostEstimate {
		fmt.Printf("Estimated cost: $%.2f %s (%s)\n", cost.Amount, cost.Currency, cost.Service)
	}
	if outcome.Result.Data != nil {
		encoded, err := json.MarshalIndent(outcome.Result.Data, "", "  ")
		if err == nil {
			fmt.Printf("\n%s\n", string(encoded))
		}
	}
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	// Set NLU provider
	v.Set("nlu.provider", *provider)

	// Set provider-specific configuration
	switch *provider {
	case "bedrock":
		v.Set("bedrock.region", *bedrockRegion)
		v.Set("bedrock.model_id", *bedrockModelID)
		v.Set("bedrock.max_tokens", *maxTokens)
		v.Set("bedrock.temperature", *temperature)
		v.Set("bedrock.top_p", *topP)
		v.Set("bedrock.max_input_size", *maxInput)
	case "gemini":
		v.Set("gemini.api_key", *geminiAPIKey)
		v.Set("gemini.model_name", *geminiModelName)
		v.Set("gemini.max_tokens", *maxTokens)
		v.Set("gemini.temperature", *temperature)
		v.Set("gemini.top_p", *topP)
		v.Set("gemini.max_input_size", *maxInput)
	case "openai":
		v.Set("openai.api_key", *openaiAPIKey)
		v.Set("openai.model_name", *openaiModelName)
		v.Set("openai.max_tokens", *maxTokens)
		v.Set("openai.temperature", *temperature)
		v.Set("openai.top_p", *topP)
		v.Set("openai.max_input_size", *maxInput)
	}

	// Set sandbox configuration
	v.Set("sandbox.seed", *seed)

	// Set reference data store
	v.Set("refdata.type", *refStore)
	v.Set("refdata.sqlite_path", *sqlitePath)
	v.Set("refdata.mysql_dsn", *mysqlDSN)

	return config.NewFromViper(v)
}
