package domain

// DefaultPointsThreshold is the registration-block threshold applied when a
// calendar has no explicit configuration.
const DefaultPointsThreshold = 50

// CalendarSettings is the per-calendar (tenant) demerit configuration.
type CalendarSettings struct {
	CalendarID      string
	Enabled         bool
	PointsThreshold int
}

// DefaultCalendarSettings is what getDemeritSettings returns for a calendar
// that was never configured.
func DefaultCalendarSettings(calendarID string) CalendarSettings {
	return CalendarSettings{
		CalendarID:      calendarID,
		Enabled:         false,
		PointsThreshold: DefaultPointsThreshold,
	}
}
