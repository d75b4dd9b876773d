package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api"
	"github.com/Lumen-Signage/lumen/internal/http/api/admin/control/packets"
	"github.com/Lumen-Signage/lumen/internal/model"
)

type AnalyticsController struct {
	store db.Store
}

func AnalyticsModule(store db.Store) api.Module {
	ctl := &AnalyticsController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/analytics/playback", ctl.listPlayback)
	})
}

// GET /api/admin/analytics/playback — proof-of-play records, newest first.
func (a *AnalyticsController) listPlayback(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var query packets.PlaybackQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	from, apiErr := parseTimestamp(query.From)
	if apiErr != nil {
		return nil, apiErr
	}
	to, apiErr := parseTimestamp(query.To)
	if apiErr != nil {
		return nil, apiErr
	}

	events, err := a.store.ListPlaybackEvents(user.CustomerID, query.PlayerID, query.ScheduleID, from, to)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list playback events"}
	}
	return events, nil
}

func parseTimestamp(raw *string) (*time.Time, *api.APIError) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "timestamps must be RFC3339"}
	}
	return &t, nil
}
