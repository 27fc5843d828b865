package datetime

import "golang.org/x/exp/constraints"

const (
	// MinYear is the smallest year allowed in a Date or DateTime.
	MinYear = 1
	// MaxYear is the largest year allowed in a Date or DateTime.
	MaxYear = 9999
)

const (
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1

	secondsPerDay      = 24 * 60 * 60
	microsPerSecond    = 1_000_000
	maxDurationDays    = 999_999_999
	maxOrdinal         = 3_652_059 // 9999-12-31
	maxTimeZoneSeconds = secondsPerDay
)

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysBeforeMonth[m] is the number of days of a common year preceding month m+1.
var daysBeforeMonth = func() [13]int {
	var ret [13]int
	for i, n := range daysPerMonth {
		ret[i+1] = ret[i] + n
	}
	return ret
}()

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month in year.
// It returns 0 for a month outside [1, 12].
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

func daysBefore(year, month int) int {
	n := daysBeforeMonth[month-1]
	if month > 2 && IsLeapYear(year) {
		n++
	}
	return n
}

// ordinalOf returns the proleptic Gregorian ordinal of a valid date,
// where 0001-01-01 is day 1.
func ordinalOf(year, month, day int) int {
	y := year - 1
	return y*365 + y/4 - y/100 + y/400 + daysBefore(year, month) + day
}

// dateOfOrdinal is the inverse of ordinalOf. n must be at least 1.
func dateOfOrdinal(n int) (year, month, day int) {
	n400, n := floorDivMod(n-1, daysPer400Years)
	n100, n := floorDivMod(n, daysPer100Years)
	n4, n := floorDivMod(n, daysPer4Years)
	n1, n := floorDivMod(n, 365)

	year = n400*400 + n100*100 + n4*4 + n1 + 1
	// The last day of a 4-year or 400-year block is December 31 of the leap
	// year closing it; the divisions above overshoot into the next year.
	if n1 == 4 || n100 == 4 {
		return year - 1, 12, 31
	}

	month = 1
	for month < 12 && daysBefore(year, month+1) <= n {
		month++
	}
	return year, month, n - daysBefore(year, month) + 1
}

// floorDivMod divides a by b rounding the quotient toward negative infinity,
// so the remainder always has the sign of b.
func floorDivMod[T constraints.Integer](a, b T) (q, r T) {
	q, r = a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}

func compareInts[T constraints.Integer](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
