package bootstrap

import (
	"context"
	"log"

	"notepad-be/internal/config"
	"notepad-be/internal/controller"
	"notepad-be/internal/pkg/logger"
	"notepad-be/internal/pkg/metrics"
	"notepad-be/internal/pkg/serverutils"
	"notepad-be/internal/repository/contract"
	"notepad-be/internal/repository/memory"
	"notepad-be/internal/repository/rediscache"
	"notepad-be/internal/repository/unitofwork"
	"notepad-be/internal/service"
	"notepad-be/pkg/llm/factory"
	pktNats "notepad-be/pkg/nats"
	"notepad-be/pkg/sanitizer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController       controller.INoteController
	CompletionController controller.ICompletionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger  logger.ILogger
	Metrics *metrics.Metrics // nil when METRICS_ENABLED=false

	closers []func() error
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	c := &Container{}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c.Logger = sysLogger
	c.closers = append(c.closers, sysLogger.Sync)

	var meter metric.Meter = noop.NewMeterProvider().Meter(cfg.Telemetry.ServiceName)
	if cfg.Telemetry.MetricsEnabled {
		m, err := metrics.New(cfg.Telemetry.ServiceName)
		if err != nil {
			log.Printf("[WARN] Failed to initialize metrics: %v", err)
		} else {
			c.Metrics = m
			meter = m.Meter(cfg.Telemetry.ServiceName)
			c.closers = append(c.closers, func() error { return m.Shutdown(context.Background()) })
		}
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, pubSub.Close)

	// NATS is optional; without it note changes stay in-process.
	var relay service.EventRelay
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			relay = natsPub
			c.closers = append(c.closers, func() error { natsPub.Close(); return nil })
		}
	}

	// 3. Cache
	noteCache := newNoteCache(cfg.Cache, sysLogger)

	// 4. LLM
	llmProvider, err := factory.NewLLMProvider(context.Background(), llmSettings(cfg))
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.NoteEventsTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.App.NoteEventsTopic,
		relay,
		sysLogger,
	)

	noteService := service.NewNoteService(
		uowFactory,
		noteCache,
		publisherService,
		sanitizer.NewNoteContentSanitizer(),
		sysLogger,
	)

	completionService, err := service.NewCompletionService(
		llmProvider,
		sysLogger,
		meter,
		cfg.Ai.MaxPromptLength,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize completion service: %v", err)
	}

	// 6. Controllers
	auth := serverutils.NewJwtAuth(cfg.App.JwtSecret)
	c.NoteController = controller.NewNoteController(noteService, auth)
	c.CompletionController = controller.NewCompletionController(completionService, auth)

	return c
}

// Close releases infrastructure in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			log.Printf("[WARN] shutdown: %v", err)
		}
	}
}

func newNoteCache(cfg config.CacheConfig, sysLogger logger.ILogger) contract.NoteCache {
	if cfg.RedisURL == "" {
		return memory.NewNoteCache(cfg.NoteTTL)
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		sysLogger.Warn("Bootstrap", "failed to parse Redis URL, using direct Addr", map[string]interface{}{
			"error": err.Error(),
		})
		opt = &redis.Options{
			Addr: cfg.RedisURL,
		}
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		sysLogger.Warn("Bootstrap", "Redis unreachable, falling back to in-process note cache", map[string]interface{}{
			"error": err.Error(),
		})
		_ = rdb.Close()
		return memory.NewNoteCache(cfg.NoteTTL)
	}

	return rediscache.NewNoteCache(rdb, cfg.NoteTTL)
}

func llmSettings(cfg *config.Config) factory.Settings {
	s := factory.Settings{
		Provider: cfg.Ai.LLMProvider,
		Model:    cfg.Ai.LLMModel,
	}

	switch cfg.Ai.LLMProvider {
	case factory.ProviderGemini:
		s.APIKey = cfg.Keys.GoogleGemini
	case factory.ProviderHuggingFace:
		s.APIKey = cfg.Keys.HuggingFace
	case factory.ProviderOllama:
		s.BaseURL = cfg.Ai.OllamaBaseURL
	default:
		s.APIKey = cfg.Keys.OpenAI
		s.BaseURL = cfg.Ai.OpenAIBaseURL
	}

	return s
}
