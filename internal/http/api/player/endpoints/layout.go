package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api"
	"github.com/Lumen-Signage/lumen/internal/http/api/player/packets"
	"github.com/Lumen-Signage/lumen/internal/model"
	"github.com/Lumen-Signage/lumen/internal/schedule"
)

type LayoutController struct {
	store db.Store
}

func LayoutModule(store db.Store) api.Module {
	ctl := &LayoutController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PLAYER_GET("/current-layout", ctl.currentLayout)
	})
}

// currentLayout resolves what the calling device should be showing right
// now, evaluated on the wall clock of the player's site.
func (l *LayoutController) currentLayout(ctx *gin.Context, player *model.Player) (any, *api.APIError) {
	tz, err := l.store.GetSiteTimeZone(player.SiteID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load site"}
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Error().Err(err).Int("site_id", player.SiteID).Str("tz", tz).Msg("site has invalid time zone")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "site time zone is invalid"}
	}
	now := time.Now().In(loc)

	rows, err := l.store.ListActiveSchedulesForPlayer(player.CustomerID, player.SiteID, player.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load schedules"}
	}

	candidates := make([]schedule.Schedule, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, toResolverSchedule(row))
	}

	identity := schedule.PlayerIdentity{
		PlayerID:   player.ID,
		SiteID:     player.SiteID,
		CustomerID: player.CustomerID,
	}

	response := packets.CurrentLayoutResponse{EvaluatedAt: now}
	if res, ok := schedule.Resolve(candidates, identity, now); ok {
		response.ScheduleID = &res.ScheduleID
		response.LayoutID = &res.LayoutID
	}
	return response, nil
}

// toResolverSchedule maps a store row onto the resolver's in-memory form.
func toResolverSchedule(row model.Schedule) schedule.Schedule {
	s := schedule.Schedule{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		LayoutID:   row.LayoutID,
		Priority:   row.Priority,
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		StartTime:  row.StartTime,
		EndTime:    row.EndTime,
		Active:     row.IsActive,
	}
	if row.DaysOfWeek != nil {
		s.DaysOfWeek = schedule.SplitDays(*row.DaysOfWeek)
	}
	for _, a := range row.Assignments {
		s.Assignments = append(s.Assignments, schedule.Assignment{
			ID:               a.ID,
			Type:             schedule.Scope(a.Type),
			TargetCustomerID: a.TargetCustomerID,
			TargetSiteID:     a.TargetSiteID,
			TargetPlayerID:   a.TargetPlayerID,
		})
	}
	return s
}
