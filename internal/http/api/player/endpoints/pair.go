package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api"
	"github.com/Lumen-Signage/lumen/internal/http/api/player/packets"
	"github.com/Lumen-Signage/lumen/internal/http/middleware"
	"github.com/Lumen-Signage/lumen/internal/redis"
)

const pairingCodeTTL = 5 * time.Minute

type PairingController struct {
	store     db.Store
	cache     *redis.Client
	secretKey string
}

// PairingModule mounts the unauthenticated device-side pairing flow:
// the device shows a code on screen and registers it with its device id,
// a CMS user claims the code against a player, then the device trades
// its device id for a long-lived token.
func PairingModule(store db.Store, cache *redis.Client, secretKey string) api.Module {
	ctl := &PairingController{store: store, cache: cache, secretKey: secretKey}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/pairing/register", ctl.register)
		c.PUBLIC_POST("/pairing/token", ctl.token)
	})
}

// register binds a pairing request, checks the device isn't already
// paired, and holds the code in Redis until a CMS user claims it.
func (p *PairingController) register(ctx *gin.Context) (any, *api.APIError) {
	var request packets.RegisterPairingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if player, err := p.store.GetPlayerByDeviceID(request.DeviceID); err == nil && player.Paired {
		log.Warn().Str("device_id", request.DeviceID).Msg("device is already paired")
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "device is already paired"}
	}

	if err := p.cache.PutPairingCode(ctx, request.PairingCode, request.DeviceID, pairingCodeTTL); err != nil {
		log.Error().Err(err).Msg("failed to store pairing code")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store pairing code"}
	}

	return packets.RegisterPairingResponse{
		DeviceID:  request.DeviceID,
		ExpiresIn: int(pairingCodeTTL.Seconds()),
	}, nil
}

func (p *PairingController) token(ctx *gin.Context) (any, *api.APIError) {
	var request packets.TokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	player, err := p.store.GetPlayerByDeviceID(request.DeviceID)
	if err != nil || !player.Paired {
		// not claimed yet; the device keeps polling until an admin pairs it
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not paired"}
	}

	token, err := middleware.GenerateDeviceToken(player.ID, p.secretKey)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not sign token"}
	}
	return packets.TokenResponse{Token: token}, nil
}
