package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dcwlabs/candleworks-backend/config"
	"github.com/dcwlabs/candleworks-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const valuationKey = "inventory:valuation"

var client *redis.Client

// Init initializes the Redis connection.
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		client = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance.
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection.
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// CacheValuation stores the latest inventory valuation snapshot. The
// snapshot is advisory; a missing or stale entry just means the summary is
// recomputed from the database.
func CacheValuation(ctx context.Context, snapshot interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	if err := client.Set(ctx, valuationKey, payload, ttl).Err(); err != nil {
		logger.Error("Failed to cache inventory valuation", err, nil)
		return err
	}

	logger.Debug("Inventory valuation cached", map[string]interface{}{
		"ttl": ttl.String(),
	})
	return nil
}

// CachedValuation loads the last valuation snapshot into dest. Returns
// false when no snapshot is cached or Redis is unavailable.
func CachedValuation(ctx context.Context, dest interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}

	payload, err := client.Get(ctx, valuationKey).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed to read cached inventory valuation", err, nil)
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, err
	}
	return true, nil
}
