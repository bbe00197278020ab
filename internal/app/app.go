package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	server "github.com/TBOO-AI/agent/internal/adapters/primary/http"
	cronController "github.com/TBOO-AI/agent/internal/adapters/primary/http/controllers/cron"
	healthcheckController "github.com/TBOO-AI/agent/internal/adapters/primary/http/controllers/healthcheck"
	kafkaAdapter "github.com/TBOO-AI/agent/internal/adapters/secondary/kafka"
	"github.com/TBOO-AI/agent/internal/adapters/secondary/llm"
	"github.com/TBOO-AI/agent/internal/adapters/secondary/sajucal"
	"github.com/TBOO-AI/agent/internal/adapters/secondary/storage/inmemory"
	"github.com/TBOO-AI/agent/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/TBOO-AI/agent/internal/adapters/secondary/storage/redis"
	"github.com/TBOO-AI/agent/internal/adapters/secondary/twitter"
	"github.com/TBOO-AI/agent/internal/pkg/logger"
	"github.com/TBOO-AI/agent/internal/ports/cache"
	"github.com/TBOO-AI/agent/internal/ports/events"
	conversationRepo "github.com/TBOO-AI/agent/internal/repository/conversation"
	profileRepo "github.com/TBOO-AI/agent/internal/repository/profile"
	threadRepo "github.com/TBOO-AI/agent/internal/repository/thread"
	"github.com/TBOO-AI/agent/internal/usecases/fortune"
	"golang.org/x/sync/errgroup"

	"github.com/jmoiron/sqlx"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running saju-agent")

	db, err := a.initPostgres()
	if err != nil {
		return fmt.Errorf("failed to init postgres: %w", err)
	}

	cacheClient, err := a.initCache()
	if err != nil {
		return fmt.Errorf("failed to init cache: %w", err)
	}

	producer, err := a.initKafka()
	if err != nil {
		return fmt.Errorf("failed to init kafka: %w", err)
	}

	persistenceLayer := pg.NewDB(db)
	profiles := profileRepo.New(persistenceLayer, a.Log)
	threads := threadRepo.New(persistenceLayer, a.Log)
	conversations := conversationRepo.New(persistenceLayer, a.Log)

	generator := llm.NewClient(a.Cfg.LLM, a.Log)
	calendar := sajucal.NewClient(a.Cfg.Calendar, a.Log)
	social := twitter.NewClient(a.Cfg.Twitter, a.Log)

	fortuneService := fortune.New(
		a.Cfg.Fortune,
		profiles,
		threads,
		conversations,
		cacheClient,
		generator,
		calendar,
		social,
		producer,
		a.Log,
	)

	cron := cronController.New(a.Cfg.Cron, fortuneService, social, a.Log)
	healthCheck := healthcheckController.New(db, a.Log)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log, healthCheck, cron)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		if producer != nil {
			if err := producer.Close(); err != nil {
				a.Log.Error("failed to close kafka producer", "error", err)
			}
		}

		if err := cacheClient.Close(); err != nil {
			a.Log.Error("failed to close cache", "error", err)
		}

		if err := db.Close(); err != nil {
			a.Log.Error("failed to close database", "error", err)
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}

func (a *App) initPostgres() (*sqlx.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(db, a.Log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// initCache redis, если включён, иначе встроенный кэш в памяти.
// Кэш здесь только ускоряет дедупликацию, источник истины - БД.
func (a *App) initCache() (cache.Cache, error) {
	if a.Cfg.Redis == nil || !a.Cfg.Redis.Enabled {
		a.Log.Info("redis disabled, using in-memory cache")
		return inmemory.New(), nil
	}

	client, err := a.Cfg.Redis.NewConnection()
	if err != nil {
		return nil, err
	}

	a.Log.Info("redis connected successfully")
	return redisAdapter.NewClient(client), nil
}

// initKafka возвращает nil-producer, если kafka выключена - события
// не обязательны для работы конвейера
func (a *App) initKafka() (events.IExchangeProducer, error) {
	if a.Cfg.Kafka == nil || !a.Cfg.Kafka.Enabled {
		a.Log.Info("kafka disabled, exchange events will not be emitted")
		return nil, nil
	}

	producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
	if err != nil {
		return nil, err
	}

	a.Log.Info("kafka producer ready", "topic", a.Cfg.Kafka.Topic)
	return producer, nil
}
