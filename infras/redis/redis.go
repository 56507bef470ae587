package redis

import (
	"context"
	"fmt"
	"workation/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func New(config *config.Config) *goRedis.Client {
	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Store.Redis.Primary.Host, config.Store.Redis.Primary.Port),
		Password: config.Store.Redis.Primary.Password,
		DB:       config.Store.Redis.Primary.DB,
	})

	_, err := client.Ping(ctx).Result()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
		panic(err)
	}

	log.Info().
		Int("db", config.Store.Redis.Primary.DB).
		Str("host", config.Store.Redis.Primary.Host).
		Str("port", config.Store.Redis.Primary.Port).
		Msg("Connected to Redis")

	return client
}
