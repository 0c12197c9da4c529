package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	analysisTTL = 1 * time.Hour
)

// AnalysisRepository computes analyses and caches them in Redis, or in memory without Redis.
type AnalysisRepository struct {
	services *services.Services
}

// NewAnalysisRepository creates a new AnalysisRepository.
func NewAnalysisRepository(c *fiber.Ctx) *AnalysisRepository {
	return &AnalysisRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewAnalysisRepositoryFromServices(services *services.Services) *AnalysisRepository {
	return &AnalysisRepository{
		services: services,
	}
}

// Analyze returns the analysis of board for color. The second return value
// tells if the analysis came from the cache.
func (repo *AnalysisRepository) Analyze(ctx context.Context, board *othello.Board, color othello.Color) (models.Analysis, bool, error) {
	key := models.AnalysisCacheKey(board, color)

	analysis, found, err := repo.lookup(ctx, key)
	if err != nil {
		return models.Analysis{}, false, err
	}

	if found {
		return analysis, true, nil
	}

	analysis = models.NewAnalysis(board, color)

	if err = repo.store(ctx, key, analysis); err != nil {
		// The analysis is still correct, only caching failed.
		slog.Warn("Failed to cache analysis", "key", key, "error", err)
	}

	return analysis, false, nil
}

func (repo *AnalysisRepository) lookup(ctx context.Context, key string) (models.Analysis, bool, error) {
	redisConn := repo.services.Redis

	if redisConn == nil {
		analysis, ok := repo.services.Cache.Lookup(key)
		return analysis, ok, nil
	}

	jsonData, err := redisConn.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Analysis{}, false, nil
	}
	if err != nil {
		return models.Analysis{}, false, fmt.Errorf("error getting analysis: %w", err)
	}

	var analysis models.Analysis
	if err = json.Unmarshal(jsonData, &analysis); err != nil {
		return models.Analysis{}, false, fmt.Errorf("error unmarshaling analysis: %w", err)
	}

	return analysis, true, nil
}

func (repo *AnalysisRepository) store(ctx context.Context, key string, analysis models.Analysis) error {
	redisConn := repo.services.Redis

	if redisConn == nil {
		repo.services.Cache.Upsert(analysis)
		return nil
	}

	jsonData, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("error marshaling analysis: %w", err)
	}

	if err = redisConn.Set(ctx, key, jsonData, analysisTTL).Err(); err != nil {
		return fmt.Errorf("error storing analysis: %w", err)
	}

	return nil
}
