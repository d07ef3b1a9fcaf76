package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewRedis creates and validates a go-redis client connection. The búsqueda
// cache is best effort, so a redis that is down at startup only logs a
// warning and the app runs without caching.
func NewRedis(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("REDIS_URL inválida, cache de búsqueda deshabilitado")
		return nil
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Msg("redis no disponible, cache de búsqueda deshabilitado")
		return nil
	}
	return rdb
}
