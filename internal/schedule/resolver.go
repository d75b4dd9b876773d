package schedule

import "time"

// Resolve picks the single schedule the player should be showing at now,
// which must already be in the player's site time zone. It re-checks scope
// matching even though the store query pre-filters by scope: the resolver
// never trusts that filtering alone.
//
// Selection order among active, matching candidates:
//  1. highest priority
//  2. most specific matching scope (player > site > customer)
//  3. lowest schedule id (deterministic final tie-break)
//
// The boolean is false when nothing is scheduled; that is a normal outcome,
// not an error, and callers fall back to their default layout.
func Resolve(candidates []Schedule, p PlayerIdentity, now time.Time) (Resolution, bool) {
	var (
		best     *Schedule
		bestSpec int
	)
	for i := range candidates {
		s := &candidates[i]
		spec := matchSpecificity(*s, p)
		if spec == 0 {
			continue
		}
		if !IsActiveAt(*s, now) {
			continue
		}
		if best == nil || wins(s, spec, best, bestSpec) {
			best, bestSpec = s, spec
		}
	}
	if best == nil {
		return Resolution{}, false
	}
	return Resolution{ScheduleID: best.ID, LayoutID: best.LayoutID}, true
}

func wins(s *Schedule, spec int, incumbent *Schedule, incumbentSpec int) bool {
	if s.Priority != incumbent.Priority {
		return s.Priority > incumbent.Priority
	}
	if spec != incumbentSpec {
		return spec > incumbentSpec
	}
	return s.ID < incumbent.ID
}
