package datetime

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// durationPrecision keeps enough significant digits that carrying fractional
// days and seconds into microseconds is exact for every representable duration.
const durationPrecision uint32 = 34

var durationContext = apd.BaseContext.WithPrecision(durationPrecision)

// Duration is a signed span of time, normalised so that
// Days ∈ [-999999999, 999999999], Seconds ∈ [0, 86399] and
// Microseconds ∈ [0, 999999].
//
// The zero value is the empty duration.
type Duration struct {
	days         int
	seconds      int
	microseconds int
}

var (
	// MinDuration is the most negative Duration, -999999999 days.
	MinDuration = Duration{days: -maxDurationDays}
	// MaxDuration is the most positive Duration,
	// 999999999 days, 23:59:59.999999.
	MaxDuration = Duration{days: maxDurationDays, seconds: secondsPerDay - 1, microseconds: microsPerSecond - 1}
	// DurationResolution is the smallest difference between non-equal durations.
	DurationResolution = Duration{microseconds: 1}
)

// DurationFields holds the raw components a Duration is built from.
// Components may be negative, fractional or outside their natural range;
// NewDuration carries them into a normalised Duration.
type DurationFields struct {
	Weeks        float64
	Days         float64
	Hours        float64
	Minutes      float64
	Seconds      float64
	Milliseconds float64
	Microseconds float64
}

// NewDuration returns the normalised Duration equal to the sum of the components of f.
//
// Fractional days and seconds are carried into the next smaller unit and the
// resulting microseconds are rounded to the nearest integer (halves round up).
// Carrying uses floored division, so {Seconds: -1} becomes
// {days: -1, seconds: 86399}.
//
// A NaN component fails with ErrNaN, a result beyond MinDuration or
// MaxDuration fails with ErrRange.
func NewDuration(f DurationFields) (Duration, error) {
	components := []struct {
		name  string
		value float64
	}{
		{"weeks", f.Weeks}, {"days", f.Days}, {"hours", f.Hours}, {"minutes", f.Minutes},
		{"seconds", f.Seconds}, {"milliseconds", f.Milliseconds}, {"microseconds", f.Microseconds},
	}
	dec := make(map[string]*apd.Decimal, len(components))
	for _, c := range components {
		if math.IsNaN(c.value) {
			return Duration{}, &Error{Kind: ErrNaN, Param: c.name, Value: c.value, Msg: fmt.Sprintf("%s is not a number", c.name)}
		}
		if math.IsInf(c.value, 0) {
			return Duration{}, durationOverflow()
		}
		d, err := new(apd.Decimal).SetFloat64(c.value)
		if err != nil {
			return Duration{}, &Error{Kind: ErrNaN, Param: c.name, Value: c.value, Msg: err.Error()}
		}
		dec[c.name] = d
	}

	c := decCalc{ctx: durationContext}

	micros := c.add(dec["microseconds"], c.mul(dec["milliseconds"], apd.New(1000, 0)))
	seconds := c.add(dec["seconds"], c.add(
		c.mul(dec["minutes"], apd.New(60, 0)),
		c.mul(dec["hours"], apd.New(3600, 0)),
	))
	days := c.add(dec["days"], c.mul(dec["weeks"], apd.New(7, 0)))

	wholeDays := c.floor(days)
	seconds = c.add(seconds, c.mul(c.sub(days, wholeDays), apd.New(secondsPerDay, 0)))
	wholeSeconds := c.floor(seconds)
	micros = c.add(micros, c.mul(c.sub(seconds, wholeSeconds), apd.New(microsPerSecond, 0)))
	micros = c.floor(c.add(micros, apd.New(5, -1)))

	carry, micros := c.floorDivMod(micros, microsPerSecond)
	wholeSeconds = c.add(wholeSeconds, carry)
	carry, wholeSeconds = c.floorDivMod(wholeSeconds, secondsPerDay)
	wholeDays = c.add(wholeDays, carry)

	if c.err != nil {
		return Duration{}, durationOverflow()
	}
	if wholeDays.Cmp(apd.New(maxDurationDays, 0)) > 0 || wholeDays.Cmp(apd.New(-maxDurationDays, 0)) < 0 {
		return Duration{}, durationOverflow()
	}

	d, _ := wholeDays.Int64()
	s, _ := wholeSeconds.Int64()
	us, _ := micros.Int64()
	return Duration{days: int(d), seconds: int(s), microseconds: int(us)}, nil
}

// MustDuration is like NewDuration but panics on error.
func MustDuration(f DurationFields) Duration {
	d, err := NewDuration(f)
	if err != nil {
		panic(err)
	}
	return d
}

// newDuration normalises an integer triple with floored carries.
func newDuration(days, seconds, microseconds int64) (Duration, error) {
	carry, us := floorDivMod(microseconds, microsPerSecond)
	carry, s := floorDivMod(seconds+carry, secondsPerDay)
	days += carry
	if days < -maxDurationDays || days > maxDurationDays {
		return Duration{}, durationOverflow()
	}
	return Duration{days: int(days), seconds: int(s), microseconds: int(us)}, nil
}

func durationOverflow() *Error {
	return rangeError("duration must be between MinDuration and MaxDuration")
}

// Days is between -999999999 and 999999999 inclusive.
func (d Duration) Days() int { return d.days }

// Seconds is between 0 and 86399 inclusive.
func (d Duration) Seconds() int { return d.seconds }

// Microseconds is between 0 and 999999 inclusive.
func (d Duration) Microseconds() int { return d.microseconds }

// TotalSeconds returns the exact number of seconds d spans.
func (d Duration) TotalSeconds() *apd.Decimal {
	total := new(apd.Decimal)
	_, _ = durationContext.Add(
		total,
		apd.New(int64(d.days)*secondsPerDay+int64(d.seconds), 0),
		apd.New(int64(d.microseconds), -6),
	)
	total, _ = total.Reduce(total)
	return total
}

// IsZero reports whether d is the empty duration.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

func (d Duration) String() string {
	var b strings.Builder
	if d.days != 0 {
		fmt.Fprintf(&b, "%d day(s), ", d.days)
	}
	minutes := d.seconds / 60
	fmt.Fprintf(&b, "%d:%02d:%02d", minutes/60, minutes%60, d.seconds%60)
	if d.microseconds != 0 {
		fmt.Fprintf(&b, ".%06d", d.microseconds)
	}
	return b.String()
}

// decCalc chains apd operations and keeps the first error.
type decCalc struct {
	ctx *apd.Context
	err error
}

func (c *decCalc) op(f func(d *apd.Decimal) (apd.Condition, error)) *apd.Decimal {
	d := new(apd.Decimal)
	if c.err == nil {
		_, c.err = f(d)
	}
	return d
}

func (c *decCalc) add(x, y *apd.Decimal) *apd.Decimal {
	return c.op(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Add(d, x, y) })
}

func (c *decCalc) sub(x, y *apd.Decimal) *apd.Decimal {
	return c.op(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Sub(d, x, y) })
}

func (c *decCalc) mul(x, y *apd.Decimal) *apd.Decimal {
	return c.op(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Mul(d, x, y) })
}

func (c *decCalc) floor(x *apd.Decimal) *apd.Decimal {
	return c.op(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Floor(d, x) })
}

// floorDivMod divides the integral x by the positive divisor y with a floored quotient.
func (c *decCalc) floorDivMod(x *apd.Decimal, y int64) (q, r *apd.Decimal) {
	divisor := apd.New(y, 0)
	q = c.op(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.QuoInteger(d, x, divisor) })
	r = c.op(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Rem(d, x, divisor) })
	if c.err == nil && r.Sign() < 0 {
		q = c.sub(q, apd.New(1, 0))
		r = c.add(r, divisor)
	}
	return q, r
}
