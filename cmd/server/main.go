package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tickworks/fuzzyclock/internal/clock"
	"github.com/tickworks/fuzzyclock/internal/config"
	"github.com/tickworks/fuzzyclock/internal/db"
	"github.com/tickworks/fuzzyclock/internal/http/middleware"
	"github.com/tickworks/fuzzyclock/internal/redis"
	"github.com/tickworks/fuzzyclock/internal/ticker"
)

func main() {
	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// initialize PostgreSQL
	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}

	// run pending migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(db.DB)

	if cfg.RedisAddress != "" {
		redis.InitRedis(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
	}

	middleware.SetBrokerURL(cfg.MQTTBrokerURL)
	if err := middleware.InitMQTT(); err != nil {
		// screens reconnect through /api/device/attach once the broker is up
		log.Warn().Err(err).Msg("MQTT broker unavailable at startup")
	}
	defer middleware.CleanupMQTT()

	clk := clock.RealClock{}

	// redraw loop: one phrase per screen per minute boundary
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tk := ticker.New(store, ticker.PublisherFunc(middleware.SendMessageToScreen), clk, cfg.TickInterval)
	tk.Start(ctx)

	// set up gin router
	r := gin.Default()
	RegisterRoutes(r, cfg, store, clk)

	// start
	log.Info().Str("address", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
