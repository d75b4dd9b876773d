package schedule

// Matches reports whether a single assignment applies to the player. An
// assignment whose target pointer is missing for its declared type never
// matches; that shape is rejected at write time, so this is fail-closed
// defense only.
func Matches(a Assignment, p PlayerIdentity) bool {
	switch a.Type {
	case ScopeCustomer:
		return a.TargetCustomerID != nil && *a.TargetCustomerID == p.CustomerID
	case ScopeSite:
		return a.TargetSiteID != nil && *a.TargetSiteID == p.SiteID
	case ScopePlayer:
		return a.TargetPlayerID != nil && *a.TargetPlayerID == p.PlayerID
	}
	return false
}

// MatchesAny reports whether any assignment on the schedule applies to the
// player. A schedule with no assignments matches nothing.
func MatchesAny(s Schedule, p PlayerIdentity) bool {
	return matchSpecificity(s, p) > 0
}

// specificity ranks scopes: a player-level binding is more specific than a
// site-level one, which is more specific than a customer-level one.
func specificity(sc Scope) int {
	switch sc {
	case ScopePlayer:
		return 3
	case ScopeSite:
		return 2
	case ScopeCustomer:
		return 1
	}
	return 0
}

// matchSpecificity returns the specificity of the most specific assignment
// that applies to the player, or 0 when none do.
func matchSpecificity(s Schedule, p PlayerIdentity) int {
	best := 0
	for _, a := range s.Assignments {
		if !Matches(a, p) {
			continue
		}
		if spec := specificity(a.Type); spec > best {
			best = spec
		}
	}
	return best
}
