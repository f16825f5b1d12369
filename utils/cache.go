// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/J-Hunxho/LowkeyLuxuryMain/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient holds the current-user record.
	AuthCacheClient *redis.Client
	// BookingCacheClient holds booking wizard sessions.
	BookingCacheClient *redis.Client
	// ChatCacheClient holds chat transcripts.
	ChatCacheClient *redis.Client
)

func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", label, err)
	}
	return client
}

// GetAuthCacheClient returns the Redis client for the current-user record.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth")
	}
	return AuthCacheClient
}

// GetBookingCacheClient returns the Redis client for booking sessions.
func GetBookingCacheClient() *redis.Client {
	if BookingCacheClient == nil {
		BookingCacheClient = newRedisClient(config.AppConfig.RedisBookingDB, "Booking")
	}
	return BookingCacheClient
}

// GetChatCacheClient returns the Redis client for chat transcripts.
func GetChatCacheClient() *redis.Client {
	if ChatCacheClient == nil {
		ChatCacheClient = newRedisClient(config.AppConfig.RedisChatDB, "Chat")
	}
	return ChatCacheClient
}
