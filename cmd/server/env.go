package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	SecretKey      string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL string
	WeekCacheTTL  time.Duration
}

// LoadEnvironment reads and validates env vars. A local .env file is
// honored when present.
func LoadEnvironment() Environment {
	_ = godotenv.Load()

	env := Environment{
		Environment:   os.Getenv("APP_ENV"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SecretKey:     os.Getenv("JWT_SECRET"),
		ServerAddress: os.Getenv("SERVER_ADDRESS"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
		WeekCacheTTL:  5 * time.Minute,
	}

	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}
	if raw := os.Getenv("WEEK_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatal().Str("value", raw).Msg("WEEK_CACHE_TTL is not a duration")
		}
		env.WeekCacheTTL = ttl
	}

	// Basic validation
	if env.DatabaseURL == "" || env.SecretKey == "" || env.ServerAddress == "" {
		log.Fatal().Msg("Missing required environment variables")
	}

	return env
}
