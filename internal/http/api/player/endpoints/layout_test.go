package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumen-Signage/lumen/internal/db"
	"github.com/Lumen-Signage/lumen/internal/http/api/player/packets"
	"github.com/Lumen-Signage/lumen/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStore struct {
	db.Store

	timeZone       string
	schedules      []model.Schedule
	playerByDevice map[string]model.Player
}

func (f *fakeStore) GetSiteTimeZone(siteID int) (string, error) {
	return f.timeZone, nil
}

func (f *fakeStore) GetPlayerByDeviceID(deviceID string) (model.Player, error) {
	player, ok := f.playerByDevice[deviceID]
	if !ok {
		return model.Player{}, db.ErrNotFound
	}
	return player, nil
}

func (f *fakeStore) ListActiveSchedulesForPlayer(customerID, siteID, playerID int) ([]model.Schedule, error) {
	return f.schedules, nil
}

func getCtx() *gin.Context {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/current-layout", nil)
	return ctx
}

var testPlayer = &model.Player{ID: 101, SiteID: 11, CustomerID: 1, Paired: true}

func customerAssignment(customerID int) model.ScheduleAssignment {
	return model.ScheduleAssignment{Type: "customer", TargetCustomerID: &customerID}
}

func TestCurrentLayoutResolvesHighestPriority(t *testing.T) {
	store := &fakeStore{
		timeZone: "America/New_York",
		schedules: []model.Schedule{
			{
				ID: 1, CustomerID: 1, LayoutID: 10, Priority: 50, IsActive: true,
				Assignments: []model.ScheduleAssignment{customerAssignment(1)},
			},
			{
				ID: 2, CustomerID: 1, LayoutID: 20, Priority: 80, IsActive: true,
				Assignments: []model.ScheduleAssignment{customerAssignment(1)},
			},
		},
	}
	ctl := &LayoutController{store: store}

	result, apiErr := ctl.currentLayout(getCtx(), testPlayer)
	require.Nil(t, apiErr)

	response := result.(packets.CurrentLayoutResponse)
	require.NotNil(t, response.LayoutID)
	require.NotNil(t, response.ScheduleID)
	assert.Equal(t, 20, *response.LayoutID)
	assert.Equal(t, 2, *response.ScheduleID)
	assert.Equal(t, "America/New_York", response.EvaluatedAt.Location().String())
}

func TestCurrentLayoutNothingScheduled(t *testing.T) {
	store := &fakeStore{timeZone: "UTC"}
	ctl := &LayoutController{store: store}

	result, apiErr := ctl.currentLayout(getCtx(), testPlayer)
	require.Nil(t, apiErr)

	response := result.(packets.CurrentLayoutResponse)
	assert.Nil(t, response.LayoutID)
	assert.Nil(t, response.ScheduleID)
}

func TestCurrentLayoutInvalidTimeZone(t *testing.T) {
	store := &fakeStore{timeZone: "Not/AZone"}
	ctl := &LayoutController{store: store}

	_, apiErr := ctl.currentLayout(getCtx(), testPlayer)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

func TestToResolverSchedule(t *testing.T) {
	days := "Mon,Wed,Fri"
	site := 11
	row := model.Schedule{
		ID: 3, CustomerID: 1, LayoutID: 10, Priority: 70,
		DaysOfWeek: &days, IsActive: true,
		Assignments: []model.ScheduleAssignment{
			{ID: 5, Type: "site", TargetSiteID: &site},
		},
	}

	s := toResolverSchedule(row)
	assert.Equal(t, []string{"Mon", "Wed", "Fri"}, s.DaysOfWeek)
	assert.True(t, s.Active)
	require.Len(t, s.Assignments, 1)
	assert.Equal(t, "site", string(s.Assignments[0].Type))
	require.NotNil(t, s.Assignments[0].TargetSiteID)
	assert.Equal(t, 11, *s.Assignments[0].TargetSiteID)
}
