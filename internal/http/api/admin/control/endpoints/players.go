package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api"
	"github.com/Lumen-Signage/lumen/internal/http/api/admin/control/packets"
	"github.com/Lumen-Signage/lumen/internal/model"
	"github.com/Lumen-Signage/lumen/internal/redis"
	"github.com/Lumen-Signage/lumen/internal/webhook"
)

type PlayerController struct {
	store db.Store
	cache *redis.Client
	hooks *webhook.Dispatcher
}

func newPlayerController(store db.Store, cache *redis.Client, hooks *webhook.Dispatcher) *PlayerController {
	return &PlayerController{store: store, cache: cache, hooks: hooks}
}

func PlayerModule(store db.Store, cache *redis.Client, hooks *webhook.Dispatcher) api.Module {
	ctl := newPlayerController(store, cache, hooks)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/sites/:id/players", ctl.listPlayers)
		c.POST("/sites/:id/players", ctl.createPlayer)
		c.GET("/players/:id", ctl.getPlayer)
		c.PATCH("/players/:id", ctl.updatePlayer)
		c.DELETE("/players/:id", ctl.deletePlayer)
		c.POST("/players/:id/pair", ctl.pairPlayer)
	})
}

func (p *PlayerController) listPlayers(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	siteID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid site id"}
	}
	if _, err := p.store.GetSiteByID(user.CustomerID, siteID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "site not found"}
	}
	list, err := p.store.ListPlayersBySite(user.CustomerID, siteID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list players"}
	}
	return list, nil
}

func (p *PlayerController) createPlayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	siteID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid site id"}
	}
	if _, err := p.store.GetSiteByID(user.CustomerID, siteID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "site not found"}
	}

	var request packets.CreatePlayerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	player, err := p.store.CreatePlayer(user.CustomerID, siteID, request.Name)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create player"}
	}
	return player, nil
}

func (p *PlayerController) getPlayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	player, err := p.store.GetPlayerByID(user.CustomerID, id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "player not found"}
	}
	return player, nil
}

func (p *PlayerController) updatePlayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdatePlayerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	// moving a player between sites must stay inside the tenant
	if request.SiteID != nil {
		if _, err := p.store.GetSiteByID(user.CustomerID, *request.SiteID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "site not found"}
		}
	}

	if err := p.store.UpdatePlayer(user.CustomerID, id, request.Name, request.SiteID); err != nil {
		return nil, storeError(err, "could not update player")
	}

	player, err := p.store.GetPlayerByID(user.CustomerID, id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated player"}
	}
	return player, nil
}

func (p *PlayerController) deletePlayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := p.store.DeletePlayer(user.CustomerID, id); err != nil {
		return nil, storeError(err, "could not delete player")
	}
	return gin.H{"message": "deleted"}, nil
}

// pairPlayer claims a pairing code a device registered, binding the
// device id to the player row. The device then exchanges its device id
// for a token on the player API.
func (p *PlayerController) pairPlayer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if _, err := p.store.GetPlayerByID(user.CustomerID, id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "player not found"}
	}

	var request packets.PairPlayerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	deviceID, err := p.cache.TakePairingCode(ctx, request.PairingCode)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "pairing code not found or expired"}
	}

	if err := p.store.PairPlayer(user.CustomerID, id, deviceID); err != nil {
		return nil, storeError(err, "could not pair player")
	}

	player, err := p.store.GetPlayerByID(user.CustomerID, id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch paired player"}
	}

	p.hooks.Emit(user.CustomerID, webhook.EventPlayerPaired, player)
	return player, nil
}
