package datetime

import "strings"

// DateTime is a Date and a time of day, optionally attached to a zone.
//
// Every Date invariant applies to its date portion; Year, Month, Day,
// Ordinal and Weekday behave as on the embedded Date.
type DateTime struct {
	date                              Date
	hour, minute, second, microsecond int
	tz                                TZInfo
	fold                              int
}

var (
	// MinDateTime is the earliest representable DateTime, 0001-01-01 00:00:00.
	MinDateTime = DateTime{date: MinDate}
	// MaxDateTime is the latest representable DateTime, 9999-12-31 23:59:59.999999.
	MaxDateTime = DateTime{date: MaxDate, hour: 23, minute: 59, second: 59, microsecond: 999_999}
	// DateTimeResolution is the smallest difference between non-equal DateTimes.
	DateTimeResolution = Duration{microseconds: 1}
)

// NewDateTime returns the naive DateTime with the given fields and fold 0.
// WithTZInfo and WithFold set the remaining fields.
func NewDateTime(year, month, day, hour, minute, second, microsecond int, opts ...Option) (DateTime, error) {
	f := fields{
		year: year, month: month, day: day,
		hour: hour, minute: minute, second: second, microsecond: microsecond,
	}
	if err := f.apply(KindDateTime, dateTimeFields, opts); err != nil {
		return DateTime{}, err
	}
	return newDateTime(f)
}

// MustDateTime is like NewDateTime but panics on error.
func MustDateTime(year, month, day, hour, minute, second, microsecond int, opts ...Option) DateTime {
	dt, err := NewDateTime(year, month, day, hour, minute, second, microsecond, opts...)
	if err != nil {
		panic(err)
	}
	return dt
}

func newDateTime(f fields) (DateTime, error) {
	d, err := NewDate(f.year, f.month, f.day)
	if err != nil {
		return DateTime{}, err
	}
	if err := f.validateTime(); err != nil {
		return DateTime{}, err
	}
	return DateTime{
		date:        d,
		hour:        f.hour,
		minute:      f.minute,
		second:      f.second,
		microsecond: f.microsecond,
		tz:          f.tz,
		fold:        f.fold,
	}, nil
}

// Combine returns the DateTime with the date of d and the time, zone and fold of t.
func Combine(d Date, t Time) DateTime {
	return CombineIn(d, t, t.tz)
}

// CombineIn is like Combine but uses tz as the zone.
func CombineIn(d Date, t Time, tz TZInfo) DateTime {
	return DateTime{
		date:        d,
		hour:        t.hour,
		minute:      t.minute,
		second:      t.second,
		microsecond: t.microsecond,
		tz:          tz,
		fold:        t.fold,
	}
}

func (dt DateTime) Year() int        { return dt.date.year }
func (dt DateTime) Month() int       { return dt.date.month }
func (dt DateTime) Day() int         { return dt.date.day }
func (dt DateTime) Hour() int        { return dt.hour }
func (dt DateTime) Minute() int      { return dt.minute }
func (dt DateTime) Second() int      { return dt.second }
func (dt DateTime) Microsecond() int { return dt.microsecond }
func (dt DateTime) TZInfo() TZInfo   { return dt.tz }
func (dt DateTime) Fold() int        { return dt.fold }
func (dt DateTime) Ordinal() int     { return dt.date.Ordinal() }
func (dt DateTime) Weekday() int     { return dt.date.Weekday() }

// IsZero reports whether the date portion of dt is the zero Date.
func (dt DateTime) IsZero() bool { return dt.date.IsZero() }

// Date returns the date portion of dt.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the naive time portion of dt, keeping the fold.
func (dt DateTime) Time() Time {
	return Time{hour: dt.hour, minute: dt.minute, second: dt.second, microsecond: dt.microsecond, fold: dt.fold}
}

// TimeTZ returns the time portion of dt together with its zone.
func (dt DateTime) TimeTZ() Time {
	t := dt.Time()
	t.tz = dt.tz
	return t
}

// Replace returns dt with the fields named by opts overridden.
// WithTZInfo(nil) makes the result naive without converting its fields.
func (dt DateTime) Replace(opts ...Option) (DateTime, error) {
	f := dt.fields()
	if err := f.apply(KindDateTime, dateTimeFields, opts); err != nil {
		return DateTime{}, err
	}
	return newDateTime(f)
}

// UTCOffset returns the offset of the zone at dt. ok is false for a naive DateTime.
func (dt DateTime) UTCOffset() (Duration, bool, error) {
	if dt.tz == nil {
		return Duration{}, false, nil
	}
	offset, ok, err := dt.tz.UTCOffset(&dt)
	if err != nil || !ok {
		return Duration{}, false, err
	}
	if err := checkOffset("utcoffset", offset); err != nil {
		return Duration{}, false, err
	}
	return offset, true, nil
}

// DST returns the daylight saving adjustment of the zone at dt.
func (dt DateTime) DST() (Duration, bool, error) {
	if dt.tz == nil {
		return Duration{}, false, nil
	}
	return dt.tz.DST(&dt)
}

// TZName returns the name of the zone at dt.
func (dt DateTime) TZName() (string, bool, error) {
	if dt.tz == nil {
		return "", false, nil
	}
	return dt.tz.TZName(&dt)
}

// AsTimeZone returns the DateTime in zone tz denoting the same instant as dt.
// A naive dt is presumed to be in the host's local zone, and a nil tz
// converts to the local zone and returns a naive result.
func (dt DateTime) AsTimeZone(tz TZInfo) (DateTime, error) {
	if sameZone(dt.tz, tz) {
		return dt, nil
	}
	offset, ok, err := dt.UTCOffset()
	if err != nil {
		return DateTime{}, err
	}
	if !ok && tz == nil {
		return dt, nil
	}

	var utc DateTime
	if ok {
		if utc, err = shiftDateTime(dt, offset, -1); err != nil {
			return DateTime{}, err
		}
	} else {
		local := dt
		local.tz = Local
		localOffset, _, err := local.UTCOffset()
		if err != nil {
			return DateTime{}, err
		}
		if utc, err = shiftDateTime(local, localOffset, -1); err != nil {
			return DateTime{}, err
		}
	}

	target := tz
	if target == nil {
		target = Local
	}
	utc.tz = target
	ret, err := target.FromUTC(utc)
	if err != nil {
		return DateTime{}, err
	}
	ret.tz = tz
	return ret, nil
}

func (dt DateTime) fields() fields {
	return fields{
		year:        dt.date.year,
		month:       dt.date.month,
		day:         dt.date.day,
		hour:        dt.hour,
		minute:      dt.minute,
		second:      dt.second,
		microsecond: dt.microsecond,
		tz:          dt.tz,
		fold:        dt.fold,
	}
}

func (dt DateTime) secondOfDay() int64 {
	return int64(dt.hour*3600 + dt.minute*60 + dt.second)
}

func (dt DateTime) String() string {
	var b strings.Builder
	b.WriteString(dt.date.String())
	b.WriteByte(' ')
	writeClock(&b, dt.hour, dt.minute, dt.second, dt.microsecond)
	if offset, ok, err := dt.UTCOffset(); err == nil && ok {
		b.WriteString(offsetString(offset))
	}
	return b.String()
}
