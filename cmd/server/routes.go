package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Lumen-Signage/lumen/internal/config"
	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api"
	authapi "github.com/Lumen-Signage/lumen/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/Lumen-Signage/lumen/internal/http/api/admin/control/endpoints"
	playerapi "github.com/Lumen-Signage/lumen/internal/http/api/player/endpoints"
	"github.com/Lumen-Signage/lumen/internal/mqtt"
	"github.com/Lumen-Signage/lumen/internal/redis"
	"github.com/Lumen-Signage/lumen/internal/storage"
	"github.com/Lumen-Signage/lumen/internal/webhook"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	store db.Store,
	cache *redis.Client,
	notifier *mqtt.Notifier,
	hooks *webhook.Dispatcher,
	storageSystem storage.Storage,
) {
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

	// public CMS auth
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   api.AuthNone,
	},
		authapi.AuthPublicModule(cfg.JWTSecret, store),
	)

	// authenticated CMS surface
	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      api.AuthUser,
		SecretKey: cfg.JWTSecret,
		Store:     store,
	},
		authapi.AuthSessionModule(cfg.JWTSecret, store),
		adminapi.SiteModule(store),
		adminapi.PlayerModule(store, cache, hooks),
		adminapi.LayoutModule(store),
		adminapi.MediaModule(store, storageSystem),
		adminapi.ScheduleModule(store, notifier, hooks),
		adminapi.AnalyticsModule(store),
		adminapi.WebhookModule(store),
	)

	// public device-side pairing flow
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/player",
		Auth:   api.AuthNone,
	},
		playerapi.PairingModule(store, cache, cfg.JWTSecret),
	)

	// authenticated device surface
	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/player",
		Auth:      api.AuthPlayer,
		SecretKey: cfg.JWTSecret,
		Store:     store,
	},
		playerapi.LayoutModule(store),
		playerapi.PlaybackModule(store),
	)

	// uploaded media is served straight off disk when Spaces is not in use
	if !cfg.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
