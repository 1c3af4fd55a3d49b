package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Onimuxha/wexly/internal/db"
	"github.com/Onimuxha/wexly/internal/redis"
	"github.com/Onimuxha/wexly/internal/reminder"
)

func main() {
	env := LoadEnvironment()

	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(db.DB)

	// week-view cache is optional; everything works without it
	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	// reminders go out over MQTT when a broker is configured
	var dispatcher reminder.Dispatcher = reminder.LogDispatcher{}
	if env.MQTTBrokerURL != "" {
		mqttDispatcher, err := reminder.NewMQTTDispatcher(env.MQTTBrokerURL, "wexly-server")
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt init")
		}
		defer mqttDispatcher.Close()
		dispatcher = mqttDispatcher
	}
	scheduler := reminder.NewScheduler(dispatcher)
	defer scheduler.CancelAll()

	r := gin.Default()
	RegisterRoutes(r, env, store, scheduler)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
