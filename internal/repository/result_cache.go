package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"lingua_placement/internal/model"
	"lingua_placement/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ResultBackend is the store a cache sits in front of.
type ResultBackend interface {
	FindResult(ctx context.Context, userID, languageID uint) (*model.TestResult, error)
	CreateResult(ctx context.Context, result *model.TestResult) error
}

// CachedResultRepository fronts a result store with Redis. Results are
// immutable once written, so only hits are cached and nothing is invalidated.
// Cache failures are logged and fall through to the store; CreateResult
// always goes to the store so the unique index stays authoritative.
type CachedResultRepository struct {
	Store ResultBackend
	Redis *redis.Client
	TTL   time.Duration
}

func NewCachedResultRepository(store ResultBackend, rdb *redis.Client, ttl time.Duration) *CachedResultRepository {
	return &CachedResultRepository{Store: store, Redis: rdb, TTL: ttl}
}

func resultCacheKey(userID, languageID uint) string {
	return fmt.Sprintf("placement:result:%d:%d", userID, languageID)
}

func (r *CachedResultRepository) FindResult(ctx context.Context, userID, languageID uint) (*model.TestResult, error) {
	key := resultCacheKey(userID, languageID)

	raw, err := r.Redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached model.TestResult
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return &cached, nil
		}
		logger.Log.Warn("Dropping undecodable cached result", zap.String("key", key))
	case err != redis.Nil:
		logger.Log.Warn("Result cache read failed", zap.String("key", key), zap.Error(err))
	}

	result, err := r.Store.FindResult(ctx, userID, languageID)
	if err != nil || result == nil {
		return result, err
	}
	r.put(ctx, result)
	return result, nil
}

// FindStoredResult reads the store directly, skipping the cache.
func (r *CachedResultRepository) FindStoredResult(ctx context.Context, userID, languageID uint) (*model.TestResult, error) {
	return r.Store.FindResult(ctx, userID, languageID)
}

func (r *CachedResultRepository) CreateResult(ctx context.Context, result *model.TestResult) error {
	return r.Store.CreateResult(ctx, result)
}

// Remember caches a freshly created result once its level is attached.
func (r *CachedResultRepository) Remember(ctx context.Context, result *model.TestResult) {
	r.put(ctx, result)
}

func (r *CachedResultRepository) put(ctx context.Context, result *model.TestResult) {
	key := resultCacheKey(result.UserID, result.LanguageID)
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := r.Redis.Set(ctx, key, raw, r.TTL).Err(); err != nil {
		logger.Log.Warn("Result cache write failed", zap.String("key", key), zap.Error(err))
	}
}
