// Package datetime provides immutable calendrical values and the arithmetic
// defined between them.
//
// The value family is closed: Duration, Date, Time, DateTime, and the
// expression operands Number and Boolean all implement Value. Add, Sub, Neg
// and Cmp dispatch on the pair of operand kinds and fail with ErrType for any
// combination they do not define.
//
// Dates follow the proleptic Gregorian calendar for years 1 through 9999.
// Time and DateTime values may carry a TZInfo. A value is aware if its zone
// reports a known UTC offset, naive otherwise. Values in different zones are
// moved to UTC before being compared or subtracted; values sharing the same
// zone instance are compared by wall clock.
//
// Example:
//
//	start := datetime.MustDateTime(2000, 1, 1, 12, 0, 0, 0, datetime.WithTZInfo(datetime.UTC))
//	later, err := datetime.Add(start, datetime.MustDuration(datetime.DurationFields{Hours: 36}))
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(later) // Output: 2000-01-03 00:00:00+00:00
package datetime
