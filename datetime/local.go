package datetime

import (
	"strings"
	"time"
)

// LocalZone derives offsets from the host's local time calculation.
// Use the Local instance.
type LocalZone struct {
	loc *time.Location
	// std is the offset without daylight saving time.
	std Duration
}

// Local is the host's local timezone.
var Local = newLocalZone(time.Local)

func newLocalZone(loc *time.Location) *LocalZone {
	_, std := time.Date(2000, time.January, 1, 0, 0, 0, 0, loc).Zone()
	return &LocalZone{loc: loc, std: secondsDuration(std)}
}

// UTCOffset returns the offset in effect at dt, or the standard offset for a nil dt.
func (z *LocalZone) UTCOffset(dt *DateTime) (Duration, bool, error) {
	if dt == nil {
		return z.std, true, nil
	}
	_, offset := z.at(*dt).Zone()
	return secondsDuration(offset), true, nil
}

// DST returns the difference between the offset at dt and the standard offset.
func (z *LocalZone) DST(dt *DateTime) (Duration, bool, error) {
	if dt == nil {
		return Duration{}, true, nil
	}
	offset, _, _ := z.UTCOffset(dt)
	dst, err := newDuration(
		int64(offset.days-z.std.days),
		int64(offset.seconds-z.std.seconds),
		int64(offset.microseconds-z.std.microseconds),
	)
	return dst, err == nil, err
}

// TZName returns the zone abbreviation of the host at dt,
// or the offset in ±HH:MM form if the host has none.
func (z *LocalZone) TZName(dt *DateTime) (string, bool, error) {
	var t time.Time
	if dt == nil {
		t = time.Date(2000, time.January, 1, 0, 0, 0, 0, z.loc)
	} else {
		t = z.at(*dt)
	}
	name, offset := t.Zone()
	if name == "" || strings.ContainsAny(name[:1], "+-") {
		name = offsetString(secondsDuration(offset))
	}
	return name, true, nil
}

func (z *LocalZone) FromUTC(dt DateTime) (DateTime, error) {
	if !sameZone(dt.tz, z) {
		return DateTime{}, valueError("dt", dt, "dt.TZInfo() must be the same zone as the receiver")
	}
	t := time.Date(
		dt.Year(), time.Month(dt.Month()), dt.Day(),
		dt.hour, dt.minute, dt.second, dt.microsecond*1000,
		time.UTC,
	).In(z.loc)
	return NewDateTime(
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), dt.microsecond,
		WithTZInfo(z),
	)
}

func (z *LocalZone) String() string {
	return z.loc.String()
}

// at interprets the wall clock fields of dt in the host zone.
func (z *LocalZone) at(dt DateTime) time.Time {
	return time.Date(
		dt.Year(), time.Month(dt.Month()), dt.Day(),
		dt.hour, dt.minute, dt.second, dt.microsecond*1000,
		z.loc,
	)
}

func secondsDuration(seconds int) Duration {
	d, _ := newDuration(0, int64(seconds), 0)
	return d
}
