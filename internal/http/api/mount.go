package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/middleware"
)

// Module is a pluggable feature that attaches its endpoints to a Controller.
type Module interface {
	Mount(c *Controller)
}

// ModuleFunc lets you define a Module with a plain function.
type ModuleFunc func(c *Controller)

func (f ModuleFunc) Mount(c *Controller) { f(c) }

// AuthMode selects which actor a group authenticates.
type AuthMode string

const (
	AuthNone   AuthMode = ""
	AuthUser   AuthMode = "user"
	AuthPlayer AuthMode = "player"
)

// GroupConfig tells the api package how to mount a group.
type GroupConfig struct {
	Prefix     string
	Auth       AuthMode
	SecretKey  string            // required unless Auth == AuthNone
	Store      db.Store          // required unless Auth == AuthNone
	Middleware []gin.HandlerFunc // optional additional middleware
}

// Controller is the typed route surface handed to modules.
type Controller struct {
	Group *gin.RouterGroup
}

// CMS-user routes.
func (c *Controller) GET(path string, h UserHandler)    { c.Group.GET(path, resolveUserEndpoint(h)) }
func (c *Controller) POST(path string, h UserHandler)   { c.Group.POST(path, resolveUserEndpoint(h)) }
func (c *Controller) PUT(path string, h UserHandler)    { c.Group.PUT(path, resolveUserEndpoint(h)) }
func (c *Controller) PATCH(path string, h UserHandler)  { c.Group.PATCH(path, resolveUserEndpoint(h)) }
func (c *Controller) DELETE(path string, h UserHandler) { c.Group.DELETE(path, resolveUserEndpoint(h)) }

// Device routes.
func (c *Controller) PLAYER_GET(path string, h PlayerHandler) {
	c.Group.GET(path, resolvePlayerEndpoint(h))
}
func (c *Controller) PLAYER_POST(path string, h PlayerHandler) {
	c.Group.POST(path, resolvePlayerEndpoint(h))
}

// Public routes.
func (c *Controller) PUBLIC_GET(path string, h Handler)  { c.Group.GET(path, resolveEndpoint(h)) }
func (c *Controller) PUBLIC_POST(path string, h Handler) { c.Group.POST(path, resolveEndpoint(h)) }

// MountGroup mounts one or more Modules under a prefix with optional auth.
func MountGroup(parent gin.IRoutes, cfg GroupConfig, modules ...Module) {
	var grp *gin.RouterGroup

	switch v := parent.(type) {
	case *gin.Engine:
		grp = v.Group(cfg.Prefix)
	case *gin.RouterGroup:
		if cfg.Prefix != "" {
			grp = v.Group(cfg.Prefix)
		} else {
			grp = v
		}
	default:
		log.Fatal().Str("type", fmt.Sprintf("%T", parent)).Msg("api.MountGroup: unsupported router type")
	}

	for _, mw := range cfg.Middleware {
		grp.Use(mw)
	}
	switch cfg.Auth {
	case AuthUser:
		mustHaveSecret(cfg)
		grp.Use(middleware.UserJWT(cfg.SecretKey, cfg.Store))
	case AuthPlayer:
		mustHaveSecret(cfg)
		grp.Use(middleware.PlayerJWT(cfg.SecretKey, cfg.Store))
	}

	controller := &Controller{Group: grp}

	for _, m := range modules {
		m.Mount(controller)
	}
}

func mustHaveSecret(cfg GroupConfig) {
	if cfg.SecretKey == "" || cfg.Store == nil {
		log.Fatal().Str("prefix", cfg.Prefix).Msg("api.MountGroup: auth enabled but secret or store missing")
	}
}
