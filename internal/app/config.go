package app

import (
	server "github.com/TBOO-AI/agent/internal/adapters/primary/http"
	cronController "github.com/TBOO-AI/agent/internal/adapters/primary/http/controllers/cron"
	kafkaAdapter "github.com/TBOO-AI/agent/internal/adapters/secondary/kafka"
	"github.com/TBOO-AI/agent/internal/adapters/secondary/llm"
	"github.com/TBOO-AI/agent/internal/adapters/secondary/sajucal"
	"github.com/TBOO-AI/agent/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/TBOO-AI/agent/internal/adapters/secondary/storage/redis"
	"github.com/TBOO-AI/agent/internal/adapters/secondary/twitter"
	"github.com/TBOO-AI/agent/internal/pkg/logger"
	"github.com/TBOO-AI/agent/internal/usecases/fortune"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres *pg.Config             `envconfig:"POSTGRES"`
	Log      *logger.Config         `envconfig:"LOG"`
	Server   *server.Config         `envconfig:"APISERVER"`
	Redis    *redisAdapter.Config   `envconfig:"REDIS"`
	Kafka    *kafkaAdapter.Config   `envconfig:"KAFKA"`
	LLM      *llm.Config            `envconfig:"LLM"`
	Calendar *sajucal.Config        `envconfig:"CALENDAR"`
	Twitter  *twitter.Config        `envconfig:"TWITTER"`
	Fortune  *fortune.Config        `envconfig:"FORTUNE"`
	Cron     *cronController.Config `envconfig:"CRON"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
