// Package schedule holds the pure scheduling core: deciding which layout a
// player should be showing at a given instant. Nothing in this package
// touches the database or the network, so it can be tested entirely with
// in-memory fixtures.
package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Scope is the granularity an assignment binds a schedule at.
type Scope string

const (
	ScopeCustomer Scope = "customer"
	ScopeSite     Scope = "site"
	ScopePlayer   Scope = "player"
)

// Assignment binds a schedule to exactly one target at one scope level.
type Assignment struct {
	ID               int
	Type             Scope
	TargetCustomerID *int
	TargetSiteID     *int
	TargetPlayerID   *int
}

// Schedule is the resolver's view of a schedule row plus its assignments.
// StartTime/EndTime are wall-clock strings ("15:04:05"); StartDate/EndDate
// carry only their calendar date. All of them are optional.
type Schedule struct {
	ID         int
	CustomerID int
	LayoutID   int
	Priority   int
	StartDate  *time.Time
	EndDate    *time.Time
	StartTime  *string
	EndTime    *string
	DaysOfWeek []string
	Active     bool

	Assignments []Assignment
}

// PlayerIdentity is the containment chain a player sits in.
type PlayerIdentity struct {
	PlayerID   int
	SiteID     int
	CustomerID int
}

// Resolution is the winning schedule for a player at an instant.
type Resolution struct {
	ScheduleID int
	LayoutID   int
}

var dayTokens = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// NormalizeDays canonicalizes a list of weekday tokens ("mon", "Wed", ...)
// into Mon..Sun form, deduplicated and sorted in week order. Unknown tokens
// are a validation error; this is the write-boundary guard that keeps the
// evaluator from ever seeing garbage.
func NormalizeDays(tokens []string) ([]string, error) {
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		canon := ""
		for _, d := range dayTokens {
			if strings.EqualFold(tok, d) {
				canon = d
				break
			}
		}
		if canon == "" {
			return nil, fmt.Errorf("unknown day token %q", tok)
		}
		seen[canon] = true
	}
	// iterating dayTokens keeps the output in week order
	out := make([]string, 0, len(seen))
	for _, d := range dayTokens {
		if seen[d] {
			out = append(out, d)
		}
	}
	return out, nil
}

// SplitDays parses the comma-separated form the store keeps ("Mon,Wed,Fri").
func SplitDays(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
