package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

var p1 = PlayerIdentity{PlayerID: 101, SiteID: 11, CustomerID: 1}

func TestMatchesByScope(t *testing.T) {
	assert.True(t, Matches(Assignment{Type: ScopeCustomer, TargetCustomerID: intp(1)}, p1))
	assert.False(t, Matches(Assignment{Type: ScopeCustomer, TargetCustomerID: intp(2)}, p1))

	assert.True(t, Matches(Assignment{Type: ScopeSite, TargetSiteID: intp(11)}, p1))
	assert.False(t, Matches(Assignment{Type: ScopeSite, TargetSiteID: intp(12)}, p1))

	assert.True(t, Matches(Assignment{Type: ScopePlayer, TargetPlayerID: intp(101)}, p1))
	assert.False(t, Matches(Assignment{Type: ScopePlayer, TargetPlayerID: intp(102)}, p1))
}

func TestMatchesMissingTargetFailsClosed(t *testing.T) {
	assert.False(t, Matches(Assignment{Type: ScopeSite}, p1))
	assert.False(t, Matches(Assignment{Type: ScopePlayer, TargetSiteID: intp(11)}, p1))
	assert.False(t, Matches(Assignment{Type: Scope("group"), TargetSiteID: intp(11)}, p1))
}

func TestMatchesAnyIsOrAcrossAssignments(t *testing.T) {
	s := Schedule{Assignments: []Assignment{
		{Type: ScopeSite, TargetSiteID: intp(99)},
		{Type: ScopePlayer, TargetPlayerID: intp(101)},
	}}
	assert.True(t, MatchesAny(s, p1))

	none := Schedule{Assignments: []Assignment{
		{Type: ScopeSite, TargetSiteID: intp(99)},
	}}
	assert.False(t, MatchesAny(none, p1))

	// Zero assignments can never match anything.
	assert.False(t, MatchesAny(Schedule{}, p1))
}

func TestMatchSpecificityPicksMostSpecific(t *testing.T) {
	s := Schedule{Assignments: []Assignment{
		{Type: ScopeCustomer, TargetCustomerID: intp(1)},
		{Type: ScopePlayer, TargetPlayerID: intp(101)},
	}}
	assert.Equal(t, 3, matchSpecificity(s, p1))

	s = Schedule{Assignments: []Assignment{
		{Type: ScopeCustomer, TargetCustomerID: intp(1)},
		{Type: ScopePlayer, TargetPlayerID: intp(999)},
	}}
	assert.Equal(t, 1, matchSpecificity(s, p1))
}
