package di

import (
	"math/rand"
	"os"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	consoleadapter "github.com/mikey/coldflow-core/internal/adapters/console"
	"github.com/mikey/coldflow-core/internal/config"
	"github.com/mikey/coldflow-core/internal/core"
	"github.com/mikey/coldflow-core/internal/factory"
	"github.com/mikey/coldflow-core/internal/interpreter"
	"github.com/mikey/coldflow-core/internal/logging"
	"github.com/mikey/coldflow-core/internal/ports"
	"github.com/mikey/coldflow-core/internal/sandbox"
	"github.com/mikey/coldflow-core/internal/utils"
	"github.com/mikey/coldflow-core/internal/validator"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewNLUFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewRefDataFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register NLU client (nil when no provider is configured)
	if err := container.Provide(func(f *factory.NLUFactory) (core.NLUClient, error) {
		return f.CreateNLUClient()
	}); err != nil {
		return nil, err
	}

	// Register reference store
	if err := container.Provide(func(f *factory.RefDataFactory) (core.ReferenceStore, error) {
		return f.CreateReferenceStore()
	}); err != nil {
		return nil, err
	}

	// Register the random source. Seed 0 means a fresh seed per run.
	if err := container.Provide(func(cfg *config.Config) *rand.Rand {
		seed := cfg.GetSandbox().Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return rand.New(rand.NewSource(seed))
	}); err != nil {
		return nil, err
	}

	// Register simulator
	if err := container.Provide(func(
		cfg *config.Config,
		rng *rand.Rand,
		store core.ReferenceStore,
		logger *zap.Logger,
	) *sandbox.Simulator {
		sb := cfg.GetSandbox()
		return sandbox.New(rng, store, logger,
			sandbox.WithLatency(sb.LatencyMin, sb.LatencyMax),
			sandbox.WithProgressionDefaults(sb.ProgressionDailyVolume, sb.ProgressionTotalLeads),
		)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(sim *sandbox.Simulator) core.Simulator {
		return sim
	}); err != nil {
		return nil, err
	}

	// Register fallback interpreter
	if err := container.Provide(func() core.FallbackInterpreter {
		return interpreter.New()
	}); err != nil {
		return nil, err
	}

	// Register validator
	if err := container.Provide(func() core.ValidateFunc {
		return validator.Validate
	}); err != nil {
		return nil, err
	}

	// Register command service
	if err := container.Provide(core.NewCommandService); err != nil {
		return nil, err
	}

	// Register console
	if err := container.Provide(func(
		cfg *config.Config,
		service *core.CommandService,
		sim *sandbox.Simulator,
		logger *zap.Logger,
	) ports.Console {
		return consoleadapter.NewConsole(
			service,
			sim,
			cfg.GetSession().Integrations,
			logger,
			os.Stdin,
			os.Stdout,
		)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
