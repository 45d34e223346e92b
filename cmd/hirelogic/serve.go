package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/hirelogic/hirelogic-api/internal/ai"
	"github.com/hirelogic/hirelogic-api/internal/config"
	"github.com/hirelogic/hirelogic-api/internal/jobs"
	"github.com/hirelogic/hirelogic-api/internal/kvstore"
	"github.com/hirelogic/hirelogic-api/internal/llm"
	"github.com/hirelogic/hirelogic-api/internal/metrics"
	"github.com/hirelogic/hirelogic-api/internal/server"
	"github.com/hirelogic/hirelogic-api/internal/verification"
)

var (
	serveAddr       string
	serveConfigPath string
	serveStore      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the document verification workflow, the job board, and the AI screening endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default :8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	serveCmd.Flags().StringVar(&serveStore, "store", "", "State store backend: memory, file, or redis")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := loadMergedConfig()
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}
	if serveStore != "" {
		cfg.StoreBackend = serveStore
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	session := verification.NewSession(ctx, verification.Config{
		Store:    store,
		Strategy: buildStrategy(cfg),
		Metrics:  metrics.New(registry),
	})

	jobsStore, closeJobs, err := buildJobsStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeJobs()

	aiService, closeAI, err := buildAIService(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeAI()

	var jwtCfg *config.JWTConfig
	if os.Getenv("JWT_SECRET") != "" {
		jwtCfg, err = config.NewJWTConfig()
		if err != nil {
			return fmt.Errorf("failed to create JWT config: %w", err)
		}
	}

	srv, err := server.New(server.Config{
		Addr:           cfg.ListenAddr,
		Session:        session,
		Jobs:           jobsStore,
		AI:             aiService,
		Registry:       registry,
		JWT:            jwtCfg,
		VerifyEndpoint: cfg.VerifyEndpoint,
		MockSeed:       cfg.MockSeed,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadMergedConfig layers env over an optional config file, then defaults.
func loadMergedConfig() config.Config {
	cfg := *config.FromEnv()
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			log.Printf("Ignoring config file: %v", err)
		} else {
			cfg = cfg.MergeWithDefaults(*fileCfg)
		}
	}
	return cfg.MergeWithDefaults(config.Config{})
}

// buildStore constructs the verification state store for the configured backend.
func buildStore(ctx context.Context, cfg config.Config) (kvstore.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		return kvstore.NewMemoryStore(), nil
	case config.StoreFile:
		return kvstore.NewFileStore(cfg.StateFile), nil
	case config.StoreRedis:
		store, err := kvstore.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// buildStrategy picks the verification strategy: remote when an endpoint is
// configured, the mock otherwise.
func buildStrategy(cfg config.Config) verification.Strategy {
	if cfg.VerifyEndpoint != "" {
		log.Printf("Using remote verification at %s", cfg.VerifyEndpoint)
		return verification.NewRemoteStrategy(cfg.VerifyEndpoint, nil)
	}
	if cfg.MockSeed != 0 {
		return verification.NewSeededMockStrategy(cfg.MockSeed, 0)
	}
	return verification.NewMockStrategy()
}

// buildJobsStore returns the postgres store when DATABASE_URL is set and the
// seeded in-memory board otherwise.
func buildJobsStore(ctx context.Context, cfg config.Config) (jobs.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Println("No DATABASE_URL set, using in-memory job board")
		return jobs.NewMemoryStore(), func() {}, nil
	}
	store, err := jobs.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return store, store.Close, nil
}

// buildAIService returns real Gemini-backed flows when an API key is set and
// canned responses otherwise.
func buildAIService(ctx context.Context, cfg config.Config) (ai.Service, func(), error) {
	if cfg.APIKey == "" {
		log.Println("No GEMINI_API_KEY set, using canned AI responses")
		return ai.NewMock(), func() {}, nil
	}
	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return ai.NewFlows(client), func() { _ = client.Close() }, nil
}
