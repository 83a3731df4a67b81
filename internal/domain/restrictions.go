package domain

type Restriction string

const (
	RestrictionCannotRegister Restriction = "cannot_register_events"
	RestrictionCannotCreate   Restriction = "cannot_create_events"
	RestrictionSuspended      Restriction = "account_suspended"
)

// Platform-wide tiers. The registration tier can be moved per calendar via
// CalendarSettings; the create/suspend tiers are fixed.
const (
	TierRegister = DefaultPointsThreshold
	TierCreate   = 75
	TierSuspend  = 100
)

type Evaluation struct {
	Restrictions  []Restriction
	Notifications []string
}

func (e Evaluation) Has(r Restriction) bool {
	for _, v := range e.Restrictions {
		if v == r {
			return true
		}
	}
	return false
}

// EvaluateRestrictions maps an accumulated point total to the set of active
// restrictions using the fixed platform tiers. Tiers are cumulative: a user
// at 100 points carries all three restrictions. No side effects; safe to
// call on every read.
func EvaluateRestrictions(totalPoints int) Evaluation {
	return evaluate(totalPoints, TierRegister, true)
}

// EvaluateRestrictionsForCalendar applies a calendar's configured threshold
// to the registration tier. When the calendar's demerit system is disabled
// the registration block is skipped entirely; the create/suspend tiers stay
// platform-wide regardless of calendar configuration.
func EvaluateRestrictionsForCalendar(totalPoints int, settings CalendarSettings) Evaluation {
	threshold := settings.PointsThreshold
	if threshold <= 0 {
		threshold = DefaultPointsThreshold
	}
	return evaluate(totalPoints, threshold, settings.Enabled)
}

func evaluate(totalPoints, registerThreshold int, registerTierActive bool) Evaluation {
	var ev Evaluation

	if registerTierActive && totalPoints >= registerThreshold {
		ev.Restrictions = append(ev.Restrictions, RestrictionCannotRegister)
		ev.Notifications = append(ev.Notifications, "You can no longer register for events due to accumulated demerit points.")
	}
	if totalPoints >= TierCreate {
		ev.Restrictions = append(ev.Restrictions, RestrictionCannotCreate)
		ev.Notifications = append(ev.Notifications, "You can no longer create events due to accumulated demerit points.")
	}
	if totalPoints >= TierSuspend {
		ev.Restrictions = append(ev.Restrictions, RestrictionSuspended)
		ev.Notifications = append(ev.Notifications, "Your account has been suspended due to accumulated demerit points.")
	}
	return ev
}
