package datetime

import "fmt"

// Date is a year, month and day in the proleptic Gregorian calendar.
type Date struct {
	year, month, day int
}

var (
	// MinDate is the earliest representable Date, 0001-01-01.
	MinDate = Date{year: MinYear, month: 1, day: 1}
	// MaxDate is the latest representable Date, 9999-12-31.
	MaxDate = Date{year: MaxYear, month: 12, day: 31}
	// DateResolution is the smallest difference between non-equal dates.
	DateResolution = Duration{days: 1}
)

// NewDate returns the Date year-month-day, failing with ErrValue if any
// field is out of range.
func NewDate(year, month, day int) (Date, error) {
	if err := validateDate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is like NewDate but panics on error.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromOrdinal returns the Date with the given proleptic Gregorian
// ordinal, where 0001-01-01 has ordinal 1.
func DateFromOrdinal(ordinal int) (Date, error) {
	if ordinal < 1 || ordinal > maxOrdinal {
		return Date{}, &Error{
			Kind:  ErrRange,
			Param: "ordinal",
			Value: ordinal,
			Msg:   fmt.Sprintf("ordinal must be between 1 and %d", maxOrdinal),
		}
	}
	y, m, d := dateOfOrdinal(ordinal)
	return Date{year: y, month: m, day: d}, nil
}

// Year is between MinYear and MaxYear.
func (d Date) Year() int { return d.year }

// Month is between 1 and 12.
func (d Date) Month() int { return d.month }

// Day is between 1 and the number of days in the month.
func (d Date) Day() int { return d.day }

// Ordinal returns the proleptic Gregorian ordinal of d.
// For every non-zero Date d, DateFromOrdinal(d.Ordinal()) == d. The zero Date has
// ordinal 0.
func (d Date) Ordinal() int {
	if d.IsZero() {
		return 0
	}
	return ordinalOf(d.year, d.month, d.day)
}

// IsZero reports whether d is the zero Date, which is not a valid date.
func (d Date) IsZero() bool {
	return d.month == 0
}

// Weekday returns the day of the week, Monday being 0 and Sunday 6.
func (d Date) Weekday() int {
	// 0001-01-01 was a Monday.
	return (d.Ordinal() + 6) % 7
}

// ISOWeekday returns the day of the week, Monday being 1 and Sunday 7.
func (d Date) ISOWeekday() int {
	return d.Weekday() + 1
}

// Replace returns d with the fields named by opts overridden.
// Only WithYear, WithMonth and WithDay apply to a Date.
func (d Date) Replace(opts ...Option) (Date, error) {
	f := fields{year: d.year, month: d.month, day: d.day}
	if err := f.apply(KindDate, dateFields, opts); err != nil {
		return Date{}, err
	}
	return NewDate(f.year, f.month, f.day)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// addDays moves d by days calendar days.
func (d Date) addDays(days int) (Date, error) {
	ordinal := d.Ordinal() + days
	if ordinal < 1 || ordinal > maxOrdinal {
		return Date{}, rangeError("date value out of range")
	}
	y, m, day := dateOfOrdinal(ordinal)
	return Date{year: y, month: m, day: day}, nil
}
