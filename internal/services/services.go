package services

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
	"github.com/redis/go-redis/v9"
)

const memoryCacheCapacity = 10000

// Services contains the connections to the external services.
// Postgres and Redis are optional: a nil connection means the service is not configured.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client

	// Cache is used for analyses when Redis is nil.
	Cache *models.Cache
}

// NewMemoryServices returns services without any external connection.
func NewMemoryServices() *Services {
	return &Services{
		Cache: models.NewCache(memoryCacheCapacity),
	}
}

// InitServices connects to every service that has a URL in cfg.
// Connections that were already made are closed if a later one fails.
func InitServices(cfg *config.ServerConfig) (*Services, error) {
	services := NewMemoryServices()

	if err := services.connect(cfg); err != nil {
		services.Close()
		return nil, err
	}

	return services, nil
}

func (s *Services) connect(cfg *config.ServerConfig) error {
	if cfg.PostgresURL != "" {
		postgres, err := InitPostgres(cfg.PostgresURL)
		if err != nil {
			return err
		}
		s.Postgres = postgres
	} else {
		slog.Warn("Postgres is not configured, arena results are disabled")
	}

	if cfg.RedisURL != "" {
		redis, err := InitRedis(cfg.RedisURL)
		if err != nil {
			return err
		}
		s.Redis = redis
	} else {
		slog.Warn("Redis is not configured, using in-memory analysis cache")
	}

	return nil
}

// Close closes all open connections.
func (s *Services) Close() {
	if s.Postgres != nil {
		if err := s.Postgres.Close(); err != nil {
			slog.Error("Failed to close postgres connection", "error", err)
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}
}
