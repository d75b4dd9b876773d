package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumen-Signage/lumen/internal/model"
)

type tenantFixture struct {
	customerID int
	userID     int
	siteID     int
	playerID   int
	layoutID   int
}

func seedTenant(t *testing.T, store Store) tenantFixture {
	t.Helper()

	customerID, err := store.CreateCustomer("Acme Retail")
	require.NoError(t, err)
	userID, err := store.CreateUser(customerID, "ops@acme.example", "hashed", nil)
	require.NoError(t, err)
	site, err := store.CreateSite(customerID, "Downtown", "America/New_York", nil)
	require.NoError(t, err)
	player, err := store.CreatePlayer(customerID, site.ID, "Lobby TV")
	require.NoError(t, err)
	layout, err := store.CreateLayout(customerID, "Default", 1920, 1080, "#000000", userID)
	require.NoError(t, err)

	return tenantFixture{
		customerID: customerID,
		userID:     userID,
		siteID:     site.ID,
		playerID:   player.ID,
		layoutID:   layout.ID,
	}
}

func createSchedule(t *testing.T, store Store, f tenantFixture, name string, priority int) model.Schedule {
	t.Helper()
	created, err := store.CreateSchedule(model.Schedule{
		CustomerID: f.customerID,
		Name:       name,
		LayoutID:   f.layoutID,
		Priority:   priority,
		IsActive:   true,
		CreatedBy:  f.userID,
	})
	require.NoError(t, err)
	return created
}

func assignToCustomer(t *testing.T, store Store, scheduleID, customerID int) model.ScheduleAssignment {
	t.Helper()
	created, err := store.CreateAssignment(model.ScheduleAssignment{
		ScheduleID:       scheduleID,
		Type:             "customer",
		TargetCustomerID: &customerID,
	})
	require.NoError(t, err)
	return created
}

func scheduleIDs(schedules []model.Schedule) []int {
	ids := make([]int, len(schedules))
	for i, sc := range schedules {
		ids[i] = sc.ID
	}
	return ids
}

func TestListActiveSchedulesForPlayerSkipsUnassigned(t *testing.T) {
	store, _ := newTestStore(t)
	f := seedTenant(t, store)

	assigned := createSchedule(t, store, f, "assigned", 50)
	assignToCustomer(t, store, assigned.ID, f.customerID)

	// no assignment rows: must never reach the resolver
	createSchedule(t, store, f, "unassigned", 90)

	out, err := store.ListActiveSchedulesForPlayer(f.customerID, f.siteID, f.playerID)
	require.NoError(t, err)
	assert.Equal(t, []int{assigned.ID}, scheduleIDs(out))
}

func TestListActiveSchedulesForPlayerScopeFilter(t *testing.T) {
	store, _ := newTestStore(t)
	f := seedTenant(t, store)

	otherSite, err := store.CreateSite(f.customerID, "Uptown", "America/Chicago", nil)
	require.NoError(t, err)

	here := createSchedule(t, store, f, "this site", 50)
	_, err = store.CreateAssignment(model.ScheduleAssignment{
		ScheduleID: here.ID, Type: "site", TargetSiteID: &f.siteID,
	})
	require.NoError(t, err)

	elsewhere := createSchedule(t, store, f, "other site", 90)
	_, err = store.CreateAssignment(model.ScheduleAssignment{
		ScheduleID: elsewhere.ID, Type: "site", TargetSiteID: &otherSite.ID,
	})
	require.NoError(t, err)

	disabled := createSchedule(t, store, f, "disabled", 90)
	assignToCustomer(t, store, disabled.ID, f.customerID)
	active := false
	require.NoError(t, store.UpdateSchedule(f.customerID, disabled.ID, UpdateScheduleParams{IsActive: &active}))

	out, err := store.ListActiveSchedulesForPlayer(f.customerID, f.siteID, f.playerID)
	require.NoError(t, err)
	assert.Equal(t, []int{here.ID}, scheduleIDs(out))
}

func TestListActiveSchedulesForPlayerOrdering(t *testing.T) {
	store, _ := newTestStore(t)
	f := seedTenant(t, store)

	low := createSchedule(t, store, f, "low", 10)
	high := createSchedule(t, store, f, "high", 90)
	midFirst := createSchedule(t, store, f, "mid a", 50)
	midSecond := createSchedule(t, store, f, "mid b", 50)
	for _, sc := range []model.Schedule{low, high, midFirst, midSecond} {
		assignToCustomer(t, store, sc.ID, f.customerID)
	}

	out, err := store.ListActiveSchedulesForPlayer(f.customerID, f.siteID, f.playerID)
	require.NoError(t, err)

	// priority DESC, then id ASC on ties
	assert.Equal(t, []int{high.ID, midFirst.ID, midSecond.ID, low.ID}, scheduleIDs(out))
}

func TestDeleteScheduleCascadesAssignments(t *testing.T) {
	store, conn := newTestStore(t)
	f := seedTenant(t, store)

	sc := createSchedule(t, store, f, "doomed", 50)
	assignToCustomer(t, store, sc.ID, f.customerID)
	_, err := store.CreateAssignment(model.ScheduleAssignment{
		ScheduleID: sc.ID, Type: "player", TargetPlayerID: &f.playerID,
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteSchedule(f.customerID, sc.ID))

	_, err = store.GetScheduleByID(f.customerID, sc.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	out, err := store.ListActiveSchedulesForPlayer(f.customerID, f.siteID, f.playerID)
	require.NoError(t, err)
	assert.Empty(t, out)

	var orphans int
	require.NoError(t, conn.Get(&orphans,
		`SELECT count(*) FROM schedule_assignments WHERE schedule_id = $1;`, sc.ID))
	assert.Zero(t, orphans, "assignments must cascade with their schedule")
}

func TestUpdateScheduleClearsWindowColumns(t *testing.T) {
	store, _ := newTestStore(t)
	f := seedTenant(t, store)

	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	clock := "09:00:00"
	days := "Mon,Fri"
	created, err := store.CreateSchedule(model.Schedule{
		CustomerID: f.customerID,
		Name:       "bounded",
		LayoutID:   f.layoutID,
		Priority:   50,
		StartDate:  &start,
		StartTime:  &clock,
		DaysOfWeek: &days,
		IsActive:   true,
		CreatedBy:  f.userID,
	})
	require.NoError(t, err)

	err = store.UpdateSchedule(f.customerID, created.ID, UpdateScheduleParams{
		ClearStartDate:  true,
		ClearStartTime:  true,
		ClearDaysOfWeek: true,
	})
	require.NoError(t, err)

	got, err := store.GetScheduleByID(f.customerID, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.StartDate)
	assert.Nil(t, got.StartTime)
	assert.Nil(t, got.DaysOfWeek)
	assert.Equal(t, "bounded", got.Name, "untouched columns stay put")
}

func TestStoreTenantIsolation(t *testing.T) {
	store, _ := newTestStore(t)
	f := seedTenant(t, store)

	otherCustomer, err := store.CreateCustomer("Rival Corp")
	require.NoError(t, err)

	sc := createSchedule(t, store, f, "private", 50)

	_, err = store.GetScheduleByID(otherCustomer, sc.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.DeleteSchedule(otherCustomer, sc.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
