package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func customerWide(id, layoutID, priority int) Schedule {
	return Schedule{
		ID:       id,
		LayoutID: layoutID,
		Priority: priority,
		Active:   true,
		Assignments: []Assignment{
			{Type: ScopeCustomer, TargetCustomerID: intp(1)},
		},
	}
}

func TestResolveHighestPriorityWins(t *testing.T) {
	candidates := []Schedule{
		customerWide(1, 10, 10),
		customerWide(2, 20, 20),
	}
	res, ok := Resolve(candidates, p1, at(2025, time.June, 2, 12, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, Resolution{ScheduleID: 2, LayoutID: 20}, res)
}

func TestResolveSkipsInactive(t *testing.T) {
	high := customerWide(1, 10, 90)
	high.Active = false
	candidates := []Schedule{high, customerWide(2, 20, 20)}

	res, ok := Resolve(candidates, p1, at(2025, time.June, 2, 12, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, 2, res.ScheduleID)
}

func TestResolveSkipsOutOfWindow(t *testing.T) {
	high := customerWide(1, 10, 90)
	high.StartTime = str("09:00:00")
	high.EndTime = str("17:00:00")
	candidates := []Schedule{high, customerWide(2, 20, 20)}

	res, ok := Resolve(candidates, p1, at(2025, time.June, 2, 20, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, 2, res.ScheduleID)
}

func TestResolveTieBreakSpecificity(t *testing.T) {
	playerScoped := Schedule{
		ID: 5, LayoutID: 50, Priority: 50, Active: true,
		Assignments: []Assignment{{Type: ScopePlayer, TargetPlayerID: intp(101)}},
	}
	candidates := []Schedule{customerWide(4, 40, 50), playerScoped}

	res, ok := Resolve(candidates, p1, at(2025, time.June, 2, 12, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, 5, res.ScheduleID)

	// Order independence: same winner with the slice reversed.
	res, ok = Resolve([]Schedule{playerScoped, customerWide(4, 40, 50)}, p1, at(2025, time.June, 2, 12, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, 5, res.ScheduleID)
}

func TestResolveTieBreakScheduleID(t *testing.T) {
	candidates := []Schedule{
		customerWide(7, 70, 50),
		customerWide(3, 30, 50),
	}
	res, ok := Resolve(candidates, p1, at(2025, time.June, 2, 12, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, Resolution{ScheduleID: 3, LayoutID: 30}, res)
}

func TestResolveReverifiesScope(t *testing.T) {
	// A candidate that slipped through a broken pre-filter must still be
	// rejected here.
	foreign := Schedule{
		ID: 9, LayoutID: 90, Priority: 99, Active: true,
		Assignments: []Assignment{{Type: ScopeSite, TargetSiteID: intp(999)}},
	}
	candidates := []Schedule{foreign, customerWide(2, 20, 20)}

	res, ok := Resolve(candidates, p1, at(2025, time.June, 2, 12, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, 2, res.ScheduleID)
}

func TestResolveNoCandidates(t *testing.T) {
	_, ok := Resolve(nil, p1, at(2025, time.June, 2, 12, 0, 0))
	assert.False(t, ok)

	_, ok = Resolve([]Schedule{{ID: 1, Active: true}}, p1, at(2025, time.June, 2, 12, 0, 0))
	assert.False(t, ok)
}

// End-to-end fixture from the product brief: customer 1 has site A
// (players P1, P2) and site B (player P3). S1 shows L1 customer-wide all
// day at priority 50; S2 shows L2 on site A 09:00-17:00 at priority 80.
func TestResolveEndToEnd(t *testing.T) {
	siteA, siteB := 11, 12
	pA1 := PlayerIdentity{PlayerID: 101, SiteID: siteA, CustomerID: 1}
	pB3 := PlayerIdentity{PlayerID: 103, SiteID: siteB, CustomerID: 1}

	s1 := customerWide(1, 1, 50)
	s2 := Schedule{
		ID: 2, LayoutID: 2, Priority: 80, Active: true,
		StartTime:   str("09:00:00"),
		EndTime:     str("17:00:00"),
		Assignments: []Assignment{{Type: ScopeSite, TargetSiteID: &siteA}},
	}
	candidates := []Schedule{s1, s2}

	res, ok := Resolve(candidates, pA1, at(2025, time.June, 2, 10, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, 2, res.LayoutID, "P1 at 10:00 gets the site override")

	res, ok = Resolve(candidates, pB3, at(2025, time.June, 2, 10, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, 1, res.LayoutID, "P3 is on site B, S2 does not apply")

	res, ok = Resolve(candidates, pA1, at(2025, time.June, 2, 20, 0, 0))
	assert.True(t, ok)
	assert.Equal(t, 1, res.LayoutID, "S2 out of window at 20:00")
}
