package datetime

import "math/bits"

type field uint16

const (
	fieldYear field = 1 << iota
	fieldMonth
	fieldDay
	fieldHour
	fieldMinute
	fieldSecond
	fieldMicrosecond
	fieldTZInfo
	fieldFold

	dateFields     = fieldYear | fieldMonth | fieldDay
	timeFields     = fieldHour | fieldMinute | fieldSecond | fieldMicrosecond | fieldTZInfo | fieldFold
	dateTimeFields = dateFields | timeFields
)

var fieldNames = [...]string{"year", "month", "day", "hour", "minute", "second", "microsecond", "tzinfo", "fold"}

// fields is the union of every field of Date, Time and DateTime.
type fields struct {
	year, month, day                  int
	hour, minute, second, microsecond int
	tz                                TZInfo
	fold                              int
	set                               field
}

// Option overrides a single field, either when constructing a Time or
// DateTime or when calling Replace.
type Option func(*fields)

func WithYear(year int) Option {
	return func(f *fields) { f.year = year; f.set |= fieldYear }
}

func WithMonth(month int) Option {
	return func(f *fields) { f.month = month; f.set |= fieldMonth }
}

func WithDay(day int) Option {
	return func(f *fields) { f.day = day; f.set |= fieldDay }
}

func WithHour(hour int) Option {
	return func(f *fields) { f.hour = hour; f.set |= fieldHour }
}

func WithMinute(minute int) Option {
	return func(f *fields) { f.minute = minute; f.set |= fieldMinute }
}

func WithSecond(second int) Option {
	return func(f *fields) { f.second = second; f.set |= fieldSecond }
}

func WithMicrosecond(microsecond int) Option {
	return func(f *fields) { f.microsecond = microsecond; f.set |= fieldMicrosecond }
}

// WithTZInfo sets the timezone. WithTZInfo(nil) makes the value naive,
// which differs from not passing WithTZInfo at all.
func WithTZInfo(tz TZInfo) Option {
	return func(f *fields) { f.tz = tz; f.set |= fieldTZInfo }
}

// WithFold sets the fold bit, 0 or 1.
func WithFold(fold int) Option {
	return func(f *fields) { f.fold = fold; f.set |= fieldFold }
}

// apply runs opts over f and rejects options naming a field kind does not have.
func (f *fields) apply(kind Kind, allowed field, opts []Option) error {
	for _, opt := range opts {
		opt(f)
	}
	if extra := f.set &^ allowed; extra != 0 {
		name := fieldNames[bits.TrailingZeros16(uint16(extra))]
		return typeError("%q is not a field of %v", name, kind)
	}
	return nil
}

func (f *fields) validateTime() error {
	if f.hour < 0 || f.hour > 23 {
		return valueError("hour", f.hour, "hour must be between 0 and 23")
	}
	if f.minute < 0 || f.minute > 59 {
		return valueError("minute", f.minute, "minute must be between 0 and 59")
	}
	if f.second < 0 || f.second > 59 {
		return valueError("second", f.second, "second must be between 0 and 59")
	}
	if f.microsecond < 0 || f.microsecond > 999_999 {
		return valueError("microsecond", f.microsecond, "microsecond must be between 0 and 999999")
	}
	if f.fold != 0 && f.fold != 1 {
		return valueError("fold", f.fold, "fold must be 0 or 1")
	}
	return nil
}

func validateDate(year, month, day int) error {
	if year < MinYear || year > MaxYear {
		return valueError("year", year, "year must be between %d and %d", MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return valueError("month", month, "month must be between 1 and 12")
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return valueError("day", day, "day %d is out of range for %04d-%02d", day, year, month)
	}
	return nil
}
