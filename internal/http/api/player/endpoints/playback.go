package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api"
	"github.com/Lumen-Signage/lumen/internal/http/api/player/packets"
	"github.com/Lumen-Signage/lumen/internal/model"
)

type PlaybackController struct {
	store db.Store
}

func PlaybackModule(store db.Store) api.Module {
	ctl := &PlaybackController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PLAYER_POST("/playback-events", ctl.reportPlayback)
	})
}

func (p *PlaybackController) reportPlayback(ctx *gin.Context, player *model.Player) (any, *api.APIError) {
	var request packets.PlaybackEventRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	startedAt, err := time.Parse(time.RFC3339, request.StartedAt)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "started_at must be RFC3339"}
	}

	event := model.PlaybackEvent{
		CustomerID:  player.CustomerID,
		PlayerID:    player.ID,
		ScheduleID:  request.ScheduleID,
		LayoutID:    request.LayoutID,
		StartedAt:   startedAt,
		DurationSec: request.DurationSec,
	}
	if err := p.store.CreatePlaybackEvent(event); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not record playback event"}
	}
	return gin.H{"message": "recorded"}, nil
}
