package datetime

import (
	"fmt"
	"strings"
)

// Time is a time of day, optionally attached to a zone.
//
// A Time is aware if its zone reports a known UTC offset and naive otherwise.
type Time struct {
	hour, minute, second, microsecond int
	tz                                TZInfo
	fold                              int
}

var (
	// MinTime is the earliest representable Time, 00:00:00.
	MinTime = Time{}
	// MaxTime is the latest representable Time, 23:59:59.999999.
	MaxTime = Time{hour: 23, minute: 59, second: 59, microsecond: 999_999}
	// TimeResolution is the smallest difference between non-equal times.
	TimeResolution = Duration{microseconds: 1}
)

// NewTime returns the naive Time hour:minute:second.microsecond with fold 0.
// WithTZInfo and WithFold set the remaining fields.
func NewTime(hour, minute, second, microsecond int, opts ...Option) (Time, error) {
	f := fields{hour: hour, minute: minute, second: second, microsecond: microsecond}
	if err := f.apply(KindTime, timeFields, opts); err != nil {
		return Time{}, err
	}
	return newTime(f)
}

// MustTime is like NewTime but panics on error.
func MustTime(hour, minute, second, microsecond int, opts ...Option) Time {
	t, err := NewTime(hour, minute, second, microsecond, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func newTime(f fields) (Time, error) {
	if err := f.validateTime(); err != nil {
		return Time{}, err
	}
	return Time{
		hour:        f.hour,
		minute:      f.minute,
		second:      f.second,
		microsecond: f.microsecond,
		tz:          f.tz,
		fold:        f.fold,
	}, nil
}

func (t Time) Hour() int        { return t.hour }
func (t Time) Minute() int      { return t.minute }
func (t Time) Second() int      { return t.second }
func (t Time) Microsecond() int { return t.microsecond }

// TZInfo returns the zone of t, or nil if none was given.
func (t Time) TZInfo() TZInfo { return t.tz }

// Fold is 0 or 1 and tells apart the two occurrences of a wall time
// repeated when clocks are turned back; 1 is the later one.
func (t Time) Fold() int { return t.fold }

// Replace returns t with the fields named by opts overridden.
func (t Time) Replace(opts ...Option) (Time, error) {
	f := t.fields()
	if err := f.apply(KindTime, timeFields, opts); err != nil {
		return Time{}, err
	}
	return newTime(f)
}

// UTCOffset returns the offset of the zone queried without a date.
// ok is false for a naive Time.
func (t Time) UTCOffset() (Duration, bool, error) {
	if t.tz == nil {
		return Duration{}, false, nil
	}
	offset, ok, err := t.tz.UTCOffset(nil)
	if err != nil || !ok {
		return Duration{}, false, err
	}
	if err := checkOffset("utcoffset", offset); err != nil {
		return Duration{}, false, err
	}
	return offset, true, nil
}

// DST returns the daylight saving adjustment of the zone queried without a date.
func (t Time) DST() (Duration, bool, error) {
	if t.tz == nil {
		return Duration{}, false, nil
	}
	return t.tz.DST(nil)
}

// TZName returns the zone name queried without a date.
func (t Time) TZName() (string, bool, error) {
	if t.tz == nil {
		return "", false, nil
	}
	return t.tz.TZName(nil)
}

func (t Time) fields() fields {
	return fields{
		hour:        t.hour,
		minute:      t.minute,
		second:      t.second,
		microsecond: t.microsecond,
		tz:          t.tz,
		fold:        t.fold,
	}
}

// secondOfDay returns the seconds elapsed since midnight.
func (t Time) secondOfDay() int64 {
	return int64(t.hour*3600 + t.minute*60 + t.second)
}

func (t Time) String() string {
	var b strings.Builder
	writeClock(&b, t.hour, t.minute, t.second, t.microsecond)
	if offset, ok, err := t.UTCOffset(); err == nil && ok {
		b.WriteString(offsetString(offset))
	}
	return b.String()
}

func writeClock(b *strings.Builder, hour, minute, second, microsecond int) {
	fmt.Fprintf(b, "%02d:%02d:%02d", hour, minute, second)
	if microsecond != 0 {
		fmt.Fprintf(b, ".%06d", microsecond)
	}
}
