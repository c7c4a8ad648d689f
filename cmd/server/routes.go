package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tickworks/fuzzyclock/internal/clock"
	"github.com/tickworks/fuzzyclock/internal/config"
	"github.com/tickworks/fuzzyclock/internal/db"
	"github.com/tickworks/fuzzyclock/internal/http/api"
	authapi "github.com/tickworks/fuzzyclock/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/tickworks/fuzzyclock/internal/http/api/admin/control/endpoints"
	clockapi "github.com/tickworks/fuzzyclock/internal/http/api/clock/endpoints"
	deviceapi "github.com/tickworks/fuzzyclock/internal/http/api/device/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, store db.Store, clk clock.Clock) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(cfg.JWTSecret, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
		Store:     store,
	},
		adminapi.ScreenModule(store, clk),
		// session endpoints that require auth
		authapi.AuthSessionModule(cfg.JWTSecret, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/clock",
	},
		clockapi.ClockModule(clk),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/device",
	},
		deviceapi.DeviceModule(store, clk),
	)
}
