package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Signage/lumen/internal/http/middleware"
	"github.com/Lumen-Signage/lumen/internal/model"
)

// APIError is what handlers return instead of writing status codes
// themselves; the adapters below turn it into the JSON error envelope.
type APIError struct {
	Code    int
	Message string
}

// UserHandler runs behind CMS-user auth.
type UserHandler func(ctx *gin.Context, user *model.User) (any, *APIError)

// PlayerHandler runs behind device auth.
type PlayerHandler func(ctx *gin.Context, player *model.Player) (any, *APIError)

// Handler is a public endpoint.
type Handler func(ctx *gin.Context) (any, *APIError)

func resolveUserEndpoint(h UserHandler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		result, apiErr := h(ctx, user)
		respond(ctx, result, apiErr)
	}
}

func resolvePlayerEndpoint(h PlayerHandler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		player, ok := middleware.GetCurrentPlayer(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		result, apiErr := h(ctx, player)
		respond(ctx, result, apiErr)
	}
}

func resolveEndpoint(h Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		respond(ctx, result, apiErr)
	}
}

func respond(ctx *gin.Context, result any, apiErr *APIError) {
	if apiErr != nil {
		ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
