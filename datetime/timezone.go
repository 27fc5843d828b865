package datetime

import (
	"fmt"
	"reflect"
	"strings"
)

// TZInfo supplies timezone information to Time and DateTime values.
//
// Values compare their zones by identity: two values share a frame of
// reference only if they hold the very same TZInfo. Implementations should
// therefore be pointer types; every zone in this package is. Values holding
// a zone of an uncomparable type are always aligned through UTC.
type TZInfo interface {
	// UTCOffset returns the offset of local time from UTC, positive east of UTC.
	// ok is false when the offset is unknown. dt is nil for queries made
	// without a date, such as those of a Time.
	UTCOffset(dt *DateTime) (offset Duration, ok bool, err error)
	// DST returns the daylight saving adjustment included in UTCOffset.
	// ok is false when it is unknown.
	DST(dt *DateTime) (dst Duration, ok bool, err error)
	// TZName returns the display name of the zone at dt.
	TZName(dt *DateTime) (name string, ok bool, err error)
	// FromUTC takes a DateTime whose zone is the receiver and whose fields
	// hold a UTC time, and returns the same instant in local time.
	FromUTC(dt DateTime) (DateTime, error)
}

// UnimplementedTZInfo can be embedded in a TZInfo implementation;
// every method it provides fails with ErrNotImplemented.
type UnimplementedTZInfo struct{}

func (UnimplementedTZInfo) UTCOffset(*DateTime) (Duration, bool, error) {
	return Duration{}, false, notImplemented("UTCOffset")
}

func (UnimplementedTZInfo) DST(*DateTime) (Duration, bool, error) {
	return Duration{}, false, notImplemented("DST")
}

func (UnimplementedTZInfo) TZName(*DateTime) (string, bool, error) {
	return "", false, notImplemented("TZName")
}

func (UnimplementedTZInfo) FromUTC(DateTime) (DateTime, error) {
	return DateTime{}, notImplemented("FromUTC")
}

// FromUTC is the generic FromUTC algorithm for zones whose UTCOffset and DST
// are both known at dt. Custom zones can call it from their FromUTC method.
func FromUTC(tz TZInfo, dt DateTime) (DateTime, error) {
	if !sameZone(dt.tz, tz) {
		return DateTime{}, valueError("dt", dt, "dt.TZInfo() must be the same zone as the receiver")
	}
	offset, offsetOK, err := dt.UTCOffset()
	if err != nil {
		return DateTime{}, err
	}
	dst, dstOK, err := dt.DST()
	if err != nil {
		return DateTime{}, err
	}
	if !offsetOK || !dstOK {
		return DateTime{}, valueError("dt", dt, "FromUTC requires a known UTCOffset and DST")
	}

	standard, err := newDuration(
		int64(offset.days-dst.days),
		int64(offset.seconds-dst.seconds),
		int64(offset.microseconds-dst.microseconds),
	)
	if err != nil {
		return DateTime{}, err
	}
	if !standard.IsZero() {
		if dt, err = shiftDateTime(dt, standard, 1); err != nil {
			return DateTime{}, err
		}
		if dst, dstOK, err = dt.DST(); err != nil {
			return DateTime{}, err
		}
	}
	if !dstOK {
		return dt, nil
	}
	return shiftDateTime(dt, dst, 1)
}

// sameZone reports whether a and b are the same zone instance. Zones of an
// uncomparable type are never the same instance.
func sameZone(a, b TZInfo) bool {
	if t := reflect.TypeOf(a); t != nil && !t.Comparable() {
		return false
	}
	return a == b
}

// TimeZone is a zone with a fixed offset from UTC and no daylight saving time.
type TimeZone struct {
	offset Duration
	name   string
}

// UTC is the zone with a zero offset.
var UTC = MustTimeZone(Duration{}, "")

// NewTimeZone returns a fixed-offset zone. offset must be strictly between
// -24 and 24 hours. An empty name defaults to "UTC" for a zero offset and
// to "UTC±HH:MM" otherwise.
func NewTimeZone(offset Duration, name string) (*TimeZone, error) {
	if err := checkOffset("offset", offset); err != nil {
		return nil, err
	}
	if name == "" {
		name = "UTC"
		if !offset.IsZero() {
			name += offsetString(offset)
		}
	}
	return &TimeZone{offset: offset, name: name}, nil
}

// MustTimeZone is like NewTimeZone but panics on error.
func MustTimeZone(offset Duration, name string) *TimeZone {
	tz, err := NewTimeZone(offset, name)
	if err != nil {
		panic(err)
	}
	return tz
}

// UTCOffset returns the fixed offset; dt is ignored.
func (z *TimeZone) UTCOffset(*DateTime) (Duration, bool, error) {
	return z.offset, true, nil
}

// DST is always unknown for a fixed-offset zone.
func (z *TimeZone) DST(*DateTime) (Duration, bool, error) {
	return Duration{}, false, nil
}

func (z *TimeZone) TZName(*DateTime) (string, bool, error) {
	return z.name, true, nil
}

func (z *TimeZone) FromUTC(dt DateTime) (DateTime, error) {
	if !sameZone(dt.tz, z) {
		return DateTime{}, valueError("dt", dt, "dt.TZInfo() must be the same zone as the receiver")
	}
	return shiftDateTime(dt, z.offset, 1)
}

func (z *TimeZone) String() string {
	return z.name
}

// checkOffset rejects offsets of 24 hours or more in either direction.
func checkOffset(param string, offset Duration) error {
	if offset.days == 0 || (offset.days == -1 && (offset.seconds != 0 || offset.microseconds != 0)) {
		return nil
	}
	return valueError(param, offset, "offset must be strictly between -24 and 24 hours, got %v", offset)
}

// offsetString formats an offset of less than 24 hours as ±HH:MM[:SS[.ffffff]].
func offsetString(offset Duration) string {
	sign := "+"
	if offset.days < 0 {
		sign = "-"
		offset = Duration{
			seconds:      maxTimeZoneSeconds - offset.seconds,
			microseconds: offset.microseconds,
		}
		if offset.microseconds != 0 {
			offset.seconds--
			offset.microseconds = microsPerSecond - offset.microseconds
		}
	}
	var b strings.Builder
	minutes := offset.seconds / 60
	fmt.Fprintf(&b, "%s%02d:%02d", sign, minutes/60, minutes%60)
	switch {
	case offset.microseconds != 0:
		fmt.Fprintf(&b, ":%02d.%06d", offset.seconds%60, offset.microseconds)
	case offset.seconds%60 != 0:
		fmt.Fprintf(&b, ":%02d", offset.seconds%60)
	}
	return b.String()
}
