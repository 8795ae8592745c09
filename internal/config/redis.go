package config

// Redis backs the response cache and the rate limiter.  Both features
// degrade to no-ops when the client cannot be constructed, so the API
// server runs fine without a Redis instance.

import (
	"context"
	"crypto/tls"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client from the environment:
//
//	REDIS_HOST / REDIS_PORT  – host and port of the server
//	REDIS_ADDR               – host:port shorthand (host/port win if both set)
//	REDIS_PASSWORD           – optional password
//	REDIS_DB                 – database number, default 0
//	REDIS_TLS                – enable TLS when truthy
//
// Returns nil when the server cannot be reached; callers must treat a nil
// client as "caching and rate limiting disabled".
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
		addr = host + ":" + port
	}
	if addr == "" {
		addr = "localhost:6379"
	}
	var tlsConf *tls.Config
	if envBool("REDIS_TLS", false) {
		tlsConf = &tls.Config{InsecureSkipVerify: true}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      addr,
		Password:  os.Getenv("REDIS_PASSWORD"),
		DB:        envInt("REDIS_DB", 0),
		TLSConfig: tlsConf,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
