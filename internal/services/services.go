package services

import (
	"errors"
	"log/slog"

	"github.com/IBM/sarama"
	"github.com/jmoiron/sqlx"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services.
// Every connection is optional and nil when it is not configured.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
	Kafka    sarama.SyncProducer

	// Memory caches analyses in process, it is always set.
	Memory *models.Cache
}

// InitServices connects to all services that have a configured address.
func InitServices(cfg *config.ServerConfig) (*Services, error) {
	services := NewServicesEmpty()

	if cfg.PostgresURL != "" {
		postgres, err := InitPostgres(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		services.Postgres = postgres
	} else {
		slog.Info("Postgres is not configured, search results are not stored")
	}

	if cfg.RedisURL != "" {
		redis, err := InitRedis(cfg.RedisURL)
		if err != nil {
			return nil, errors.Join(err, services.Close())
		}
		services.Redis = redis
	} else {
		slog.Info("Redis is not configured, search results are cached in memory")
	}

	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := InitKafka(cfg.KafkaBrokers)
		if err != nil {
			return nil, errors.Join(err, services.Close())
		}
		services.Kafka = kafka
	} else {
		slog.Info("Kafka is not configured, game results are only logged")
	}

	return services, nil
}

// NewServicesEmpty creates Services without any external connection.
func NewServicesEmpty() *Services {
	return &Services{
		Memory: models.NewCache(),
	}
}

// Close closes all open connections.
func (s *Services) Close() error {
	var errs []error

	if s.Postgres != nil {
		errs = append(errs, s.Postgres.Close())
	}

	if s.Redis != nil {
		errs = append(errs, s.Redis.Close())
	}

	if s.Kafka != nil {
		errs = append(errs, s.Kafka.Close())
	}

	return errors.Join(errs...)
}
