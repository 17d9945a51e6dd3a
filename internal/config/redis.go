package config

import (
	"os"
	"sync"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisConfig = &RedisConfig{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		}
	})
	return redisConfig
}
