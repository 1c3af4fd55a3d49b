package main

import (
	"math/rand"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Onimuxha/wexly/internal/db"
	"github.com/Onimuxha/wexly/internal/http/api"
	authapi "github.com/Onimuxha/wexly/internal/http/api/auth/endpoints"
	plannerapi "github.com/Onimuxha/wexly/internal/http/api/planner/endpoints"
	"github.com/Onimuxha/wexly/internal/reminder"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, scheduler *reminder.Scheduler) {
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
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/planner",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/planner",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
		// planner modules
		plannerapi.ActivityModule(store),
		plannerapi.WeekModule(store, rng, time.Now, env.WeekCacheTTL),
		plannerapi.ReminderModule(store, scheduler, time.Now),
		plannerapi.SettingsModule(store),
	)
}
