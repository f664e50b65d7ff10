package utils

import (
	"context"
	"log"
	"time"

	"autocare/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// RelayClient backs the notification relay's pub/sub bridge.
	RelayClient *redis.Client
)

// InitRedis initializes the Redis clients used by the auth gate and the
// notification relay.
func InitRedis() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	RelayClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRelayDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
	if _, err := RelayClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Relay): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching, or
// nil when Redis has not been initialized. Callers must treat nil as
// cache-disabled and fall back to the store.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// GetRelayClient returns the Redis client for the notification relay, or nil
// when Redis has not been initialized.
func GetRelayClient() *redis.Client {
	return RelayClient
}
