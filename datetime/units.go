package datetime

// Time units accepted by DurationOf.
const (
	UnitYear         = "year"
	UnitYears        = "years"
	UnitMonth        = "month"
	UnitMonths       = "months"
	UnitWeek         = "week"
	UnitWeeks        = "weeks"
	UnitDay          = "day"
	UnitDays         = "days"
	UnitHour         = "hour"
	UnitHours        = "hours"
	UnitMinute       = "minute"
	UnitMinutes      = "minutes"
	UnitSecond       = "second"
	UnitSeconds      = "seconds"
	UnitS            = "s"
	UnitMillisecond  = "millisecond"
	UnitMilliseconds = "milliseconds"
	UnitMs           = "ms"
	UnitMicrosecond  = "microsecond"
	UnitMicroseconds = "microseconds"
	UnitUs           = "us"
)

// normalizeTimeUnit returns the canonical form of a time unit,
// accepting plural names and UCUM codes.
func normalizeTimeUnit(unit string) string {
	// Strip quotes if present
	if len(unit) >= 2 && unit[0] == '\'' && unit[len(unit)-1] == '\'' {
		unit = unit[1 : len(unit)-1]
	}

	switch unit {
	case UnitYear, UnitYears, "a":
		return UnitYear
	case UnitMonth, UnitMonths, "mo":
		return UnitMonth
	case UnitWeek, UnitWeeks, "wk":
		return UnitWeek
	case UnitDay, UnitDays, "d":
		return UnitDay
	case UnitHour, UnitHours, "h":
		return UnitHour
	case UnitMinute, UnitMinutes, "min":
		return UnitMinute
	case UnitSecond, UnitSeconds, UnitS:
		return UnitSecond
	case UnitMillisecond, UnitMilliseconds, UnitMs:
		return UnitMillisecond
	case UnitMicrosecond, UnitMicroseconds, UnitUs:
		return UnitMicrosecond
	}
	return unit
}

// DurationOf returns the Duration of value units, e.g. DurationOf(1.5, "h").
//
// Calendar units (years, months) have no fixed length and fail with ErrValue,
// as does any unknown unit.
func DurationOf(value float64, unit string) (Duration, error) {
	var f DurationFields
	switch normalizeTimeUnit(unit) {
	case UnitWeek:
		f.Weeks = value
	case UnitDay:
		f.Days = value
	case UnitHour:
		f.Hours = value
	case UnitMinute:
		f.Minutes = value
	case UnitSecond:
		f.Seconds = value
	case UnitMillisecond:
		f.Milliseconds = value
	case UnitMicrosecond:
		f.Microseconds = value
	case UnitYear, UnitMonth:
		return Duration{}, valueError("unit", unit, "calendar unit %q has no fixed duration", unit)
	default:
		return Duration{}, valueError("unit", unit, "invalid time unit: %v", unit)
	}
	return NewDuration(f)
}
