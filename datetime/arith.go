package datetime

// Add returns a + b. The defined combinations are
//
//	Duration + Duration → Duration
//	DateTime + Duration, Duration + DateTime → DateTime
//	Date + Duration, Duration + Date → Date (only the days of the Duration apply)
//	Time + Duration, Duration + Time → Time (wraps around midnight)
//
// Any other combination fails with ErrType. A zero Date or DateTime
// operand fails with ErrValue.
func Add(a, b Value) (Value, error) {
	if err := checkValid(a, b); err != nil {
		return nil, err
	}
	switch x := a.(type) {
	case Duration:
		switch y := b.(type) {
		case Duration:
			return result(addDurations(x, y, 1))
		case DateTime:
			return result(shiftDateTime(y, x, 1))
		case Date:
			return result(y.addDays(x.days))
		case Time:
			return shiftTime(y, x, 1), nil
		}
	case DateTime:
		if y, ok := b.(Duration); ok {
			return result(shiftDateTime(x, y, 1))
		}
	case Date:
		if y, ok := b.(Duration); ok {
			return result(x.addDays(y.days))
		}
	case Time:
		if y, ok := b.(Duration); ok {
			return shiftTime(x, y, 1), nil
		}
	}
	return nil, typeError("cannot add %s and %s", kindName(a), kindName(b))
}

// Sub returns a - b. The defined combinations are
//
//	Duration - Duration → Duration
//	DateTime - Duration → DateTime
//	DateTime - DateTime → Duration
//	Date - Duration → Date (only the days of the Duration apply)
//	Date - Date → Duration (whole days)
//	Time - Duration → Time (wraps around midnight)
//	Time - Time → Duration (less than a day, wrapped)
//
// Subtracting a naive value from an aware one, or the reverse, fails with
// ErrType, as does any other combination. A zero Date or DateTime operand
// fails with ErrValue.
func Sub(a, b Value) (Value, error) {
	if err := checkValid(a, b); err != nil {
		return nil, err
	}
	switch x := a.(type) {
	case Duration:
		if y, ok := b.(Duration); ok {
			return result(addDurations(x, y, -1))
		}
	case DateTime:
		switch y := b.(type) {
		case Duration:
			return result(shiftDateTime(x, y, -1))
		case DateTime:
			return result(subDateTimes(x, y))
		}
	case Date:
		switch y := b.(type) {
		case Duration:
			return result(x.addDays(-y.days))
		case Date:
			return result(newDuration(int64(x.Ordinal()-y.Ordinal()), 0, 0))
		}
	case Time:
		switch y := b.(type) {
		case Duration:
			return shiftTime(x, y, -1), nil
		case Time:
			return result(subTimes(x, y))
		}
	}
	return nil, typeError("cannot subtract %s from %s", kindName(b), kindName(a))
}

// Neg returns -a. It is defined for Duration only.
func Neg(a Value) (Value, error) {
	if x, ok := a.(Duration); ok {
		return result(newDuration(-int64(x.days), -int64(x.seconds), -int64(x.microseconds)))
	}
	return nil, typeError("cannot negate %s", kindName(a))
}

// Cmp returns -1, 0 or 1 as a is less than, equal to or greater than b.
//
// Durations compare by their normalised fields and Dates by ordinal.
// DateTimes and Times in different zones are first moved to UTC; comparing
// a naive value with an aware one fails with ErrType. Equal wall clocks
// differing only in fold compare unequal. Moving a DateTime to UTC resets
// its fold, so equal instants in different zones compare equal. Any other
// combination fails with ErrType, as does a zero Date or DateTime.
func Cmp(a, b Value) (int, error) {
	if err := checkValid(a, b); err != nil {
		return 0, err
	}
	switch x := a.(type) {
	case Duration:
		if y, ok := b.(Duration); ok {
			return cmpInstants(
				instant{int64(x.days), int64(x.seconds), int64(x.microseconds)},
				instant{int64(y.days), int64(y.seconds), int64(y.microseconds)},
			), nil
		}
	case Date:
		if y, ok := b.(Date); ok {
			return compareInts(x.Ordinal(), y.Ordinal()), nil
		}
	case DateTime:
		if y, ok := b.(DateTime); ok {
			l, r, wall, err := alignDateTimes(x, y, "compare")
			if err != nil {
				return 0, err
			}
			if c := cmpInstants(l, r); c != 0 || !wall {
				return c, nil
			}
			return compareInts(x.fold, y.fold), nil
		}
	case Time:
		if y, ok := b.(Time); ok {
			l, r, err := alignTimes(x, y, "compare")
			if err != nil {
				return 0, err
			}
			if c := cmpInstants(l, r); c != 0 {
				return c, nil
			}
			return compareInts(x.fold, y.fold), nil
		}
	}
	return 0, typeError("cannot compare %s to %s", kindName(a), kindName(b))
}

// checkValid rejects zero Dates and DateTimes, which no constructor returns.
func checkValid(vs ...Value) error {
	for _, v := range vs {
		var d Date
		switch x := v.(type) {
		case Date:
			d = x
		case DateTime:
			d = x.date
		default:
			continue
		}
		if d.IsZero() {
			return valueError("date", v, "zero %s is not a valid value", kindName(v))
		}
	}
	return nil
}

// result converts a typed result to a Value, keeping the Value nil on error.
func result[T Value](v T, err error) (Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

func addDurations(a, b Duration, sign int64) (Duration, error) {
	return newDuration(
		int64(a.days)+sign*int64(b.days),
		int64(a.seconds)+sign*int64(b.seconds),
		int64(a.microseconds)+sign*int64(b.microseconds),
	)
}

// instant is a point on a day/second/microsecond scale with
// seconds ∈ [0, 86399] and microseconds ∈ [0, 999999].
type instant struct {
	days, seconds, microseconds int64
}

func newInstant(days, seconds, microseconds int64) instant {
	carry, us := floorDivMod(microseconds, microsPerSecond)
	carry, s := floorDivMod(seconds+carry, secondsPerDay)
	return instant{days: days + carry, seconds: s, microseconds: us}
}

func (i instant) shift(d Duration, sign int64) instant {
	return newInstant(
		i.days+sign*int64(d.days),
		i.seconds+sign*int64(d.seconds),
		i.microseconds+sign*int64(d.microseconds),
	)
}

func cmpInstants(a, b instant) int {
	if c := compareInts(a.days, b.days); c != 0 {
		return c
	}
	if c := compareInts(a.seconds, b.seconds); c != 0 {
		return c
	}
	return compareInts(a.microseconds, b.microseconds)
}

func wallInstant(dt DateTime) instant {
	return instant{int64(dt.Ordinal()), dt.secondOfDay(), int64(dt.microsecond)}
}

// shiftDateTime moves dt by sign*d, carrying into the date. The result keeps
// the zone of dt and has fold 0.
func shiftDateTime(dt DateTime, d Duration, sign int64) (DateTime, error) {
	i := wallInstant(dt).shift(d, sign)
	if i.days < 1 || i.days > maxOrdinal {
		return DateTime{}, rangeError("date value out of range")
	}
	y, m, day := dateOfOrdinal(int(i.days))
	s := int(i.seconds)
	return DateTime{
		date:        Date{year: y, month: m, day: day},
		hour:        s / 3600,
		minute:      s % 3600 / 60,
		second:      s % 60,
		microsecond: int(i.microseconds),
		tz:          dt.tz,
	}, nil
}

// shiftTime moves t by sign*d modulo 24 hours; whole days are discarded.
// The result keeps the zone and fold of t.
func shiftTime(t Time, d Duration, sign int64) Time {
	i := instant{0, t.secondOfDay(), int64(t.microsecond)}.shift(d, sign)
	s := int(i.seconds)
	return Time{
		hour:        s / 3600,
		minute:      s % 3600 / 60,
		second:      s % 60,
		microsecond: int(i.microseconds),
		tz:          t.tz,
		fold:        t.fold,
	}
}

// alignDateTimes returns the instants of a and b in a common frame:
// their wall clocks if they share a zone or are both naive, UTC otherwise.
// wall reports the former; only wall clocks keep their fold.
func alignDateTimes(a, b DateTime, verb string) (l, r instant, wall bool, err error) {
	l, r = wallInstant(a), wallInstant(b)
	if sameZone(a.tz, b.tz) {
		return l, r, true, nil
	}
	aOffset, aAware, err := a.UTCOffset()
	if err != nil {
		return instant{}, instant{}, false, err
	}
	bOffset, bAware, err := b.UTCOffset()
	if err != nil {
		return instant{}, instant{}, false, err
	}
	if !aAware && !bAware {
		return l, r, true, nil
	}
	if aAware != bAware {
		return instant{}, instant{}, false, typeError("cannot %s naive and aware DateTime", verb)
	}
	return l.shift(aOffset, -1), r.shift(bOffset, -1), false, nil
}

// alignTimes is alignDateTimes for Time; moving to UTC wraps around midnight.
func alignTimes(a, b Time, verb string) (instant, instant, error) {
	l := instant{0, a.secondOfDay(), int64(a.microsecond)}
	r := instant{0, b.secondOfDay(), int64(b.microsecond)}
	if sameZone(a.tz, b.tz) {
		return l, r, nil
	}
	aOffset, aAware, err := a.UTCOffset()
	if err != nil {
		return instant{}, instant{}, err
	}
	bOffset, bAware, err := b.UTCOffset()
	if err != nil {
		return instant{}, instant{}, err
	}
	if !aAware && !bAware {
		return l, r, nil
	}
	if aAware != bAware {
		return instant{}, instant{}, typeError("cannot %s naive and aware Time", verb)
	}
	l, r = l.shift(aOffset, -1), r.shift(bOffset, -1)
	l.days, r.days = 0, 0
	return l, r, nil
}

func subDateTimes(a, b DateTime) (Duration, error) {
	l, r, _, err := alignDateTimes(a, b, "subtract")
	if err != nil {
		return Duration{}, err
	}
	return newDuration(l.days-r.days, l.seconds-r.seconds, l.microseconds-r.microseconds)
}

// subTimes returns a - b wrapped into [0, 24h).
func subTimes(a, b Time) (Duration, error) {
	l, r, err := alignTimes(a, b, "subtract")
	if err != nil {
		return Duration{}, err
	}
	diff := newInstant(0, l.seconds-r.seconds, l.microseconds-r.microseconds)
	return Duration{seconds: int(diff.seconds), microseconds: int(diff.microseconds)}, nil
}
