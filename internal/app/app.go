// Package app constructs the process-wide clients and services once and
// shares them with the HTTP server.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bobmcallan/cleartext/internal/clients/gemini"
	"github.com/bobmcallan/cleartext/internal/clients/wikipedia"
	"github.com/bobmcallan/cleartext/internal/common"
	"github.com/bobmcallan/cleartext/internal/interfaces"
	"github.com/bobmcallan/cleartext/internal/metrics"
	"github.com/bobmcallan/cleartext/internal/nlp"
	"github.com/bobmcallan/cleartext/internal/services/glossary"
	"github.com/bobmcallan/cleartext/internal/services/tutor"
)

// App holds all initialized clients and services.
type App struct {
	Config             *common.Config
	Logger             *common.Logger
	Metrics            *metrics.Metrics
	GeminiClient       interfaces.GeminiClient
	EncyclopediaClient interfaces.EncyclopediaClient
	Pipeline           interfaces.LanguagePipeline
	TutorService       interfaces.TutorService
	GlossaryService    interfaces.GlossaryService
	StartupTime        time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// resolveConfigPath picks the config file: explicit path, CLEARTEXT_CONFIG,
// cleartext.toml next to the binary, then config/cleartext.toml.
func resolveConfigPath(configPath string) string {
	if configPath == "" {
		configPath = os.Getenv("CLEARTEXT_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "cleartext.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/cleartext.toml" // fallback for development
		}
	}
	return configPath
}

// NewApp loads configuration and initializes every client and service.
// configPath may be empty, in which case the default resolution logic is used.
// A missing Gemini key or an unloadable lemma dictionary is a configuration error.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	config, err := common.LoadConfig(resolveConfigPath(configPath))
	if err != nil {
		return nil, common.NewConfigError("failed to load config", err)
	}

	if missing := config.ValidateRequired(); len(missing) > 0 {
		return nil, common.NewConfigError("missing required settings", fmt.Errorf("%s", strings.Join(missing, ", ")))
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	a, err := New(context.Background(), config, logger)
	if err != nil {
		return nil, err
	}
	a.StartupTime = startupStart

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// New builds the clients and services for an already loaded config.
func New(ctx context.Context, config *common.Config, logger *common.Logger) (*App, error) {
	m := metrics.New("cleartext")

	geminiClient, err := gemini.NewClient(ctx, config.Clients.Gemini.APIKey,
		gemini.WithLogger(logger),
		gemini.WithModel(config.Clients.Gemini.Model),
	)
	if err != nil {
		return nil, common.NewConfigError("failed to initialize Gemini client", err)
	}

	wikiCfg := config.Clients.Wikipedia
	wikiClient := wikipedia.NewClient(
		wikipedia.WithBaseURL(wikiCfg.ResolveBaseURL()),
		wikipedia.WithUserAgent(wikiCfg.UserAgent),
		wikipedia.WithRateLimit(wikiCfg.RateLimit),
		wikipedia.WithTimeout(wikiCfg.GetTimeout()),
		wikipedia.WithLogger(logger),
	)

	pipeline, err := nlp.NewPipeline(nlp.WithLogger(logger))
	if err != nil {
		return nil, common.NewConfigError("failed to initialize language pipeline", err)
	}

	resolver := glossary.NewResolver(wikiClient,
		config.Glossary.MaxDefinitionLength,
		config.Glossary.GetLookupTimeout(),
		logger, m)

	a := &App{
		Config:             config,
		Logger:             logger,
		Metrics:            m,
		GeminiClient:       geminiClient,
		EncyclopediaClient: wikiClient,
		Pipeline:           pipeline,
		TutorService:       tutor.NewService(geminiClient, config.Clients.Gemini.GetTimeout(), logger, m),
		GlossaryService:    glossary.NewService(pipeline, resolver, glossary.DefaultTables(), logger),
		StartupTime:        time.Now(),
	}

	logger.Debug().
		Str("model", geminiClient.Model()).
		Str("encyclopedia", wikiCfg.ResolveBaseURL()).
		Msg("Clients configured")

	return a, nil
}
