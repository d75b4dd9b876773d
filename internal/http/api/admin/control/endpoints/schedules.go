package endpoints

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api"
	"github.com/Lumen-Signage/lumen/internal/http/api/admin/control/packets"
	"github.com/Lumen-Signage/lumen/internal/model"
	"github.com/Lumen-Signage/lumen/internal/mqtt"
	"github.com/Lumen-Signage/lumen/internal/schedule"
	"github.com/Lumen-Signage/lumen/internal/webhook"
)

const dateLayout = "2006-01-02"

// ScheduleController is the write side of scheduling: it owns every
// invariant that must hold before a schedule or assignment reaches the
// resolver (date ordering, clock syntax, day tokens, single-target
// assignments, tenant-local targets).
type ScheduleController struct {
	store    db.Store
	notifier *mqtt.Notifier
	hooks    *webhook.Dispatcher
}

func NewScheduleController(store db.Store, notifier *mqtt.Notifier, hooks *webhook.Dispatcher) *ScheduleController {
	return &ScheduleController{store: store, notifier: notifier, hooks: hooks}
}

func ScheduleModule(store db.Store, notifier *mqtt.Notifier, hooks *webhook.Dispatcher) api.Module {
	ctl := NewScheduleController(store, notifier, hooks)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/schedules", ctl.listSchedules)
		c.POST("/schedules", ctl.createSchedule)
		c.GET("/schedules/:id", ctl.getSchedule)
		c.PATCH("/schedules/:id", ctl.updateSchedule)
		c.DELETE("/schedules/:id", ctl.deleteSchedule)

		c.POST("/schedules/:id/assignments", ctl.createAssignment)
		c.DELETE("/schedules/:id/assignments/:assignment_id", ctl.deleteAssignment)
	})
}

func (s *ScheduleController) listSchedules(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := s.store.ListSchedules(user.CustomerID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list schedules"}
	}
	return list, nil
}

func (s *ScheduleController) getSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	sc, err := s.store.GetScheduleByID(user.CustomerID, id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}
	return sc, nil
}

func (s *ScheduleController) createSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	// layout must live in the caller's tenant
	if _, err := s.store.GetLayoutByID(user.CustomerID, request.LayoutID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
	}

	startDate, apiErr := parseDate(request.StartDate)
	if apiErr != nil {
		return nil, apiErr
	}
	endDate, apiErr := parseDate(request.EndDate)
	if apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validateDateOrder(startDate, endDate); apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validateClocks(request.StartTime, request.EndTime); apiErr != nil {
		return nil, apiErr
	}
	daysCSV, apiErr := normalizeDaysCSV(request.DaysOfWeek)
	if apiErr != nil {
		return nil, apiErr
	}

	priority := 50
	if request.Priority != nil {
		priority = *request.Priority
	}
	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	created, err := s.store.CreateSchedule(model.Schedule{
		CustomerID: user.CustomerID,
		Name:       request.Name,
		LayoutID:   request.LayoutID,
		Priority:   priority,
		StartDate:  startDate,
		EndDate:    endDate,
		StartTime:  request.StartTime,
		EndTime:    request.EndTime,
		DaysOfWeek: daysCSV,
		IsActive:   isActive,
		CreatedBy:  user.ID,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create schedule"}
	}

	s.hooks.Emit(user.CustomerID, webhook.EventScheduleCreated, created)
	return created, nil
}

func (s *ScheduleController) updateSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	existing, err := s.store.GetScheduleByID(user.CustomerID, id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	var request packets.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.LayoutID != nil {
		if _, err := s.store.GetLayoutByID(user.CustomerID, *request.LayoutID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "layout not found"}
		}
	}

	// a present-but-empty window field means "clear it back to unbounded"
	startDate, clearStartDate, apiErr := parseDatePatch(request.StartDate)
	if apiErr != nil {
		return nil, apiErr
	}
	endDate, clearEndDate, apiErr := parseDatePatch(request.EndDate)
	if apiErr != nil {
		return nil, apiErr
	}
	// re-validate ordering against the merged window when either bound moves
	if request.StartDate != nil || request.EndDate != nil {
		effStart, effEnd := existing.StartDate, existing.EndDate
		if request.StartDate != nil {
			effStart = startDate
		}
		if request.EndDate != nil {
			effEnd = endDate
		}
		if apiErr := validateDateOrder(effStart, effEnd); apiErr != nil {
			return nil, apiErr
		}
	}

	startTime, clearStartTime := clockPatch(request.StartTime)
	endTime, clearEndTime := clockPatch(request.EndTime)
	if apiErr := validateClocks(startTime, endTime); apiErr != nil {
		return nil, apiErr
	}

	var daysCSV *string
	var clearDays bool
	if request.DaysOfWeek != nil {
		daysCSV, apiErr = normalizeDaysCSV(*request.DaysOfWeek)
		if apiErr != nil {
			return nil, apiErr
		}
		clearDays = daysCSV == nil
	}

	err = s.store.UpdateSchedule(user.CustomerID, id, db.UpdateScheduleParams{
		Name:       request.Name,
		LayoutID:   request.LayoutID,
		Priority:   request.Priority,
		StartDate:  startDate,
		EndDate:    endDate,
		StartTime:  startTime,
		EndTime:    endTime,
		DaysOfWeek: daysCSV,
		IsActive:   request.IsActive,

		ClearStartDate:  clearStartDate,
		ClearEndDate:    clearEndDate,
		ClearStartTime:  clearStartTime,
		ClearEndTime:    clearEndTime,
		ClearDaysOfWeek: clearDays,
	})
	if err != nil {
		return nil, storeError(err, "could not update schedule")
	}

	updated, err := s.store.GetScheduleByID(user.CustomerID, id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated schedule"}
	}

	s.hooks.Emit(user.CustomerID, webhook.EventScheduleUpdated, updated)
	s.notifyScheduleChanged(id, "schedule updated")
	return updated, nil
}

func (s *ScheduleController) deleteSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	// devices to refresh must be captured before the cascade wipes the
	// assignments
	devices, _ := s.store.ListPlayerDeviceIDsForSchedule(id)

	if err := s.store.DeleteSchedule(user.CustomerID, id); err != nil {
		return nil, storeError(err, "could not delete schedule")
	}

	s.hooks.Emit(user.CustomerID, webhook.EventScheduleDeleted, gin.H{"id": id})
	s.notifier.NotifyRefresh(devices, "schedule deleted")
	return gin.H{"message": "deleted"}, nil
}

func (s *ScheduleController) createAssignment(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	scheduleID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid schedule id"}
	}

	if _, err := s.store.GetScheduleByID(user.CustomerID, scheduleID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	var request packets.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if apiErr := s.validateAssignmentTarget(user.CustomerID, request); apiErr != nil {
		return nil, apiErr
	}

	created, err := s.store.CreateAssignment(model.ScheduleAssignment{
		ScheduleID:       scheduleID,
		Type:             request.Type,
		TargetCustomerID: request.TargetCustomerID,
		TargetSiteID:     request.TargetSiteID,
		TargetPlayerID:   request.TargetPlayerID,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create assignment"}
	}

	s.hooks.Emit(user.CustomerID, webhook.EventAssignmentCreated, created)
	s.notifyScheduleChanged(scheduleID, "assignment created")
	return created, nil
}

func (s *ScheduleController) deleteAssignment(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	scheduleID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid schedule id"}
	}
	assignmentID, err := strconv.Atoi(ctx.Param("assignment_id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid assignment id"}
	}

	devices, _ := s.store.ListPlayerDeviceIDsForSchedule(scheduleID)

	if err := s.store.DeleteAssignment(user.CustomerID, scheduleID, assignmentID); err != nil {
		return nil, storeError(err, "could not delete assignment")
	}

	s.hooks.Emit(user.CustomerID, webhook.EventAssignmentDeleted, gin.H{
		"schedule_id":   scheduleID,
		"assignment_id": assignmentID,
	})
	s.notifier.NotifyRefresh(devices, "assignment deleted")
	return gin.H{"message": "deleted"}, nil
}

// validateAssignmentTarget enforces "exactly one target, matching the
// declared type, inside the caller's tenant".
func (s *ScheduleController) validateAssignmentTarget(customerID int, request packets.CreateAssignmentRequest) *api.APIError {
	set := 0
	for _, p := range []*int{request.TargetCustomerID, request.TargetSiteID, request.TargetPlayerID} {
		if p != nil {
			set++
		}
	}
	if set != 1 {
		return &api.APIError{Code: http.StatusBadRequest, Message: "exactly one target must be set"}
	}

	switch schedule.Scope(request.Type) {
	case schedule.ScopeCustomer:
		if request.TargetCustomerID == nil {
			return &api.APIError{Code: http.StatusBadRequest, Message: "target_customer_id required for customer assignments"}
		}
		if *request.TargetCustomerID != customerID {
			return &api.APIError{Code: http.StatusNotFound, Message: "customer not found"}
		}
	case schedule.ScopeSite:
		if request.TargetSiteID == nil {
			return &api.APIError{Code: http.StatusBadRequest, Message: "target_site_id required for site assignments"}
		}
		if _, err := s.store.GetSiteByID(customerID, *request.TargetSiteID); err != nil {
			return &api.APIError{Code: http.StatusNotFound, Message: "site not found"}
		}
	case schedule.ScopePlayer:
		if request.TargetPlayerID == nil {
			return &api.APIError{Code: http.StatusBadRequest, Message: "target_player_id required for player assignments"}
		}
		if _, err := s.store.GetPlayerByID(customerID, *request.TargetPlayerID); err != nil {
			return &api.APIError{Code: http.StatusNotFound, Message: "player not found"}
		}
	}
	return nil
}

func (s *ScheduleController) notifyScheduleChanged(scheduleID int, reason string) {
	devices, err := s.store.ListPlayerDeviceIDsForSchedule(scheduleID)
	if err != nil {
		return
	}
	s.notifier.NotifyRefresh(devices, reason)
}

func parseDate(raw *string) (*time.Time, *api.APIError) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "dates must be YYYY-MM-DD"}
	}
	return &t, nil
}

// parseDatePatch reads a PATCH date field: absent leaves the bound alone,
// empty string clears it, anything else must parse.
func parseDatePatch(raw *string) (*time.Time, bool, *api.APIError) {
	if raw == nil {
		return nil, false, nil
	}
	if *raw == "" {
		return nil, true, nil
	}
	parsed, apiErr := parseDate(raw)
	return parsed, false, apiErr
}

// clockPatch mirrors parseDatePatch for the time-of-day bounds.
func clockPatch(raw *string) (*string, bool) {
	if raw == nil {
		return nil, false
	}
	if *raw == "" {
		return nil, true
	}
	return raw, false
}

func validateDateOrder(start, end *time.Time) *api.APIError {
	if start != nil && end != nil && start.After(*end) {
		return &api.APIError{Code: http.StatusBadRequest, Message: "start_date must not be after end_date"}
	}
	return nil
}

func validateClocks(clocks ...*string) *api.APIError {
	for _, c := range clocks {
		if c == nil {
			continue
		}
		if err := schedule.ValidateClock(*c); err != nil {
			return &api.APIError{Code: http.StatusBadRequest, Message: "times must be HH:MM:SS"}
		}
	}
	return nil
}

func normalizeDaysCSV(tokens []string) (*string, *api.APIError) {
	if len(tokens) == 0 {
		return nil, nil
	}
	days, err := schedule.NormalizeDays(tokens)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if len(days) == 0 {
		return nil, nil
	}
	csv := strings.Join(days, ",")
	return &csv, nil
}

func storeError(err error, fallback string) *api.APIError {
	if err == db.ErrNotFound {
		return &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return &api.APIError{Code: http.StatusInternalServerError, Message: fallback}
}
