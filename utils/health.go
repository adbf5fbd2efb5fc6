package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus is the latest dependency snapshot served on /health.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"` // keyed by client name (cache, auth)
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the most recent dependency snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings Mongo and the named Redis clients once a minute
// and keeps the snapshot in memory for the health endpoint. A degraded
// dependency is logged but never stops the bookings API from serving.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisHealth := make(map[string]bool, len(redisClients))
			for name, client := range redisClients {
				err := client.Ping(ctx).Err()
				redisHealth[name] = err == nil
				if err != nil {
					GetLogger().Warn("redis health check failed", zap.String("client", name), zap.Error(err))
				}
			}

			mongoErr := mongoClient.Ping(ctx, nil)
			if mongoErr != nil {
				GetLogger().Warn("mongo health check failed", zap.Error(mongoErr))
			}

			healthMu.Lock()
			currentHealth = HealthStatus{
				Mongo:     mongoErr == nil,
				Redis:     redisHealth,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
