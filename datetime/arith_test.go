package datetime_test

import (
	"errors"
	"testing"

	"github.com/damedic/datetime-toolbox-go/datetime"
	"github.com/damedic/datetime-toolbox-go/testdata/assert"
)

func dur(f datetime.DurationFields) datetime.Duration {
	return datetime.MustDuration(f)
}

var (
	plus5  = datetime.MustTimeZone(dur(datetime.DurationFields{Hours: 5}), "")
	minus3 = datetime.MustTimeZone(dur(datetime.DurationFields{Hours: -3}), "")
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b    datetime.Value
		want    datetime.Value
		wantErr error
	}{
		{
			name: "duration plus duration",
			a:    dur(datetime.DurationFields{Hours: -1, Minutes: 2}),
			b:    dur(datetime.DurationFields{Minutes: 4}),
			want: dur(datetime.DurationFields{Hours: -1, Minutes: 6}),
		},
		{
			name: "datetime plus duration crosses leap day",
			a:    datetime.MustDateTime(2000, 2, 28, 23, 0, 0, 0),
			b:    dur(datetime.DurationFields{Hours: 2}),
			want: datetime.MustDateTime(2000, 2, 29, 1, 0, 0, 0),
		},
		{
			name: "duration plus datetime crosses year",
			a:    datetime.DurationResolution,
			b:    datetime.MustDateTime(1999, 12, 31, 23, 59, 59, 999999),
			want: datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0),
		},
		{
			name: "datetime plus negative days",
			a:    datetime.MustDateTime(2000, 3, 1, 12, 0, 0, 0),
			b:    dur(datetime.DurationFields{Days: -366}),
			want: datetime.MustDateTime(1999, 3, 1, 12, 0, 0, 0),
		},
		{
			name:    "datetime past MaxDateTime",
			a:       datetime.MaxDateTime,
			b:       datetime.DurationResolution,
			wantErr: datetime.ErrRange,
		},
		{
			name: "date plus duration uses days only",
			a:    datetime.MustDate(2000, 1, 31),
			b:    dur(datetime.DurationFields{Days: 1, Hours: 23}),
			want: datetime.MustDate(2000, 2, 1),
		},
		{
			name: "date plus negative hours floors to previous day",
			a:    datetime.MustDate(2000, 1, 1),
			b:    dur(datetime.DurationFields{Hours: -1}),
			want: datetime.MustDate(1999, 12, 31),
		},
		{
			name:    "date before MinDate",
			a:       dur(datetime.DurationFields{Days: -1}),
			b:       datetime.MinDate,
			wantErr: datetime.ErrRange,
		},
		{
			name: "time wraps around midnight",
			a:    datetime.MustTime(23, 30, 0, 0),
			b:    dur(datetime.DurationFields{Hours: 1}),
			want: datetime.MustTime(0, 30, 0, 0),
		},
		{
			name: "time drops whole days",
			a:    dur(datetime.DurationFields{Days: 3, Minutes: 1}),
			b:    datetime.MustTime(12, 0, 0, 0),
			want: datetime.MustTime(12, 1, 0, 0),
		},
		{
			name:    "date plus date",
			a:       datetime.MustDate(2000, 1, 1),
			b:       datetime.MustDate(2000, 1, 1),
			wantErr: datetime.ErrType,
		},
		{
			name:    "time plus datetime",
			a:       datetime.MustTime(1, 0, 0, 0),
			b:       datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0),
			wantErr: datetime.ErrType,
		},
		{
			name:    "nil operand",
			a:       nil,
			b:       datetime.DurationResolution,
			wantErr: datetime.ErrType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datetime.Add(tt.a, tt.b)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.ValueEqual(t, tt.want, got)
			}
		})
	}
}

func TestAddKeepsZone(t *testing.T) {
	dt := datetime.MustDateTime(2000, 1, 1, 23, 0, 0, 0, datetime.WithTZInfo(plus5), datetime.WithFold(1))
	got, err := datetime.Add(dt, dur(datetime.DurationFields{Hours: 2}))
	if err != nil {
		t.Fatal(err)
	}
	shifted := got.(datetime.DateTime)
	if shifted.TZInfo() != plus5 {
		t.Errorf("TZInfo() = %v, want %v", shifted.TZInfo(), plus5)
	}
	if shifted.Fold() != 0 {
		t.Errorf("Fold() = %d, want 0", shifted.Fold())
	}

	tm := datetime.MustTime(23, 0, 0, 0, datetime.WithTZInfo(plus5), datetime.WithFold(1))
	got, err = datetime.Add(tm, dur(datetime.DurationFields{Hours: 2}))
	if err != nil {
		t.Fatal(err)
	}
	wrapped := got.(datetime.Time)
	if wrapped.TZInfo() != plus5 || wrapped.Fold() != 1 {
		t.Errorf("Add() = %v fold %d, want zone and fold kept", wrapped, wrapped.Fold())
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		name    string
		a, b    datetime.Value
		want    datetime.Value
		wantErr error
	}{
		{
			name: "duration minus duration",
			a:    dur(datetime.DurationFields{Minutes: 4}),
			b:    dur(datetime.DurationFields{Hours: 1}),
			want: dur(datetime.DurationFields{Minutes: -56}),
		},
		{
			name: "datetime minus duration",
			a:    datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0),
			b:    datetime.DurationResolution,
			want: datetime.MustDateTime(1999, 12, 31, 23, 59, 59, 999999),
		},
		{
			name: "naive datetimes",
			a:    datetime.MustDateTime(2000, 3, 1, 0, 0, 0, 0),
			b:    datetime.MustDateTime(2000, 2, 28, 12, 0, 0, 0),
			want: dur(datetime.DurationFields{Days: 1, Hours: 12}),
		},
		{
			name: "aware datetimes in different zones",
			a:    datetime.MustDateTime(2000, 1, 1, 12, 0, 0, 0, datetime.WithTZInfo(plus5)),
			b:    datetime.MustDateTime(2000, 1, 1, 7, 0, 0, 0, datetime.WithTZInfo(minus3)),
			want: dur(datetime.DurationFields{Hours: -3}),
		},
		{
			name: "aware datetimes in the same zone use the wall clock",
			a:    datetime.MustDateTime(2000, 1, 2, 0, 0, 0, 0, datetime.WithTZInfo(plus5)),
			b:    datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0, datetime.WithTZInfo(plus5)),
			want: dur(datetime.DurationFields{Days: 1}),
		},
		{
			name:    "naive minus aware datetime",
			a:       datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0),
			b:       datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0, datetime.WithTZInfo(datetime.UTC)),
			wantErr: datetime.ErrType,
		},
		{
			name: "date minus duration uses days only",
			a:    datetime.MustDate(2000, 3, 1),
			b:    dur(datetime.DurationFields{Days: 1, Hours: 12}),
			want: datetime.MustDate(2000, 2, 29),
		},
		{
			name: "date minus date",
			a:    datetime.MustDate(2000, 3, 1),
			b:    datetime.MustDate(2000, 2, 1),
			want: dur(datetime.DurationFields{Days: 29}),
		},
		{
			name: "time minus duration wraps",
			a:    datetime.MustTime(0, 30, 0, 0),
			b:    dur(datetime.DurationFields{Hours: 1}),
			want: datetime.MustTime(23, 30, 0, 0),
		},
		{
			name: "time minus time wraps into a day",
			a:    datetime.MustTime(1, 0, 0, 0),
			b:    datetime.MustTime(23, 0, 0, 0),
			want: dur(datetime.DurationFields{Hours: 2}),
		},
		{
			name: "aware times",
			a:    datetime.MustTime(12, 0, 0, 0, datetime.WithTZInfo(plus5)),
			b:    datetime.MustTime(6, 0, 0, 0, datetime.WithTZInfo(datetime.UTC)),
			want: dur(datetime.DurationFields{Hours: 1}),
		},
		{
			name:    "aware minus naive time",
			a:       datetime.MustTime(12, 0, 0, 0, datetime.WithTZInfo(plus5)),
			b:       datetime.MustTime(6, 0, 0, 0),
			wantErr: datetime.ErrType,
		},
		{
			name:    "duration minus date",
			a:       datetime.DurationResolution,
			b:       datetime.MinDate,
			wantErr: datetime.ErrType,
		},
		{
			name:    "date minus datetime",
			a:       datetime.MustDate(2000, 1, 1),
			b:       datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0),
			wantErr: datetime.ErrType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datetime.Sub(tt.a, tt.b)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.ValueEqual(t, tt.want, got)
			}
		})
	}
}

func TestNeg(t *testing.T) {
	tests := []struct {
		name    string
		a       datetime.Value
		want    datetime.Value
		wantErr error
	}{
		{
			name: "duration",
			a:    dur(datetime.DurationFields{Hours: -1, Minutes: 2}),
			want: dur(datetime.DurationFields{Minutes: 58}),
		},
		{
			name: "MinDuration",
			a:    datetime.MinDuration,
			want: dur(datetime.DurationFields{Days: 999999999}),
		},
		{
			name:    "MaxDuration",
			a:       datetime.MaxDuration,
			wantErr: datetime.ErrRange,
		},
		{
			name:    "date",
			a:       datetime.MinDate,
			wantErr: datetime.ErrType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datetime.Neg(tt.a)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.ValueEqual(t, tt.want, got)
			}
		})
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		name    string
		a, b    datetime.Value
		want    int
		wantErr error
	}{
		{
			name: "durations",
			a:    dur(datetime.DurationFields{Minutes: 4}),
			b:    dur(datetime.DurationFields{Hours: -1, Minutes: 2}),
			want: 1,
		},
		{
			name: "equal durations",
			a:    dur(datetime.DurationFields{Days: 1}),
			b:    dur(datetime.DurationFields{Hours: 24}),
			want: 0,
		},
		{
			name: "dates",
			a:    datetime.MustDate(1999, 12, 31),
			b:    datetime.MustDate(2000, 1, 1),
			want: -1,
		},
		{
			name: "same instant in different zones",
			a:    datetime.MustDateTime(2000, 1, 1, 12, 0, 0, 0, datetime.WithTZInfo(plus5)),
			b:    datetime.MustDateTime(2000, 1, 1, 7, 0, 0, 0, datetime.WithTZInfo(datetime.UTC)),
			want: 0,
		},
		{
			name: "aware datetimes across a date boundary",
			a:    datetime.MustDateTime(2000, 1, 1, 1, 0, 0, 0, datetime.WithTZInfo(plus5)),
			b:    datetime.MustDateTime(1999, 12, 31, 21, 0, 0, 0, datetime.WithTZInfo(minus3)),
			want: -1,
		},
		{
			name: "same instant in different zones ignores fold",
			a:    datetime.MustDateTime(2000, 1, 1, 12, 0, 0, 0, datetime.WithTZInfo(plus5), datetime.WithFold(1)),
			b:    datetime.MustDateTime(2000, 1, 1, 7, 0, 0, 0, datetime.WithTZInfo(datetime.UTC)),
			want: 0,
		},
		{
			name: "fold breaks ties in a shared zone",
			a:    datetime.MustDateTime(2000, 1, 1, 12, 0, 0, 0, datetime.WithTZInfo(plus5), datetime.WithFold(1)),
			b:    datetime.MustDateTime(2000, 1, 1, 12, 0, 0, 0, datetime.WithTZInfo(plus5)),
			want: 1,
		},
		{
			name: "fold breaks ties",
			a:    datetime.MustDateTime(2000, 10, 29, 1, 30, 0, 0),
			b:    datetime.MustDateTime(2000, 10, 29, 1, 30, 0, 0, datetime.WithFold(1)),
			want: -1,
		},
		{
			name:    "naive and aware datetimes",
			a:       datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0),
			b:       datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0, datetime.WithTZInfo(datetime.UTC)),
			wantErr: datetime.ErrType,
		},
		{
			name:    "aware and naive datetimes",
			a:       datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0, datetime.WithTZInfo(datetime.UTC)),
			b:       datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0),
			wantErr: datetime.ErrType,
		},
		{
			name: "times in different zones",
			a:    datetime.MustTime(12, 0, 0, 0, datetime.WithTZInfo(plus5)),
			b:    datetime.MustTime(7, 0, 0, 0, datetime.WithTZInfo(datetime.UTC)),
			want: 0,
		},
		{
			name:    "naive and aware times",
			a:       datetime.MustTime(12, 0, 0, 0),
			b:       datetime.MustTime(12, 0, 0, 0, datetime.WithTZInfo(datetime.UTC)),
			wantErr: datetime.ErrType,
		},
		{
			name:    "aware and naive times",
			a:       datetime.MustTime(12, 0, 0, 0, datetime.WithTZInfo(datetime.UTC)),
			b:       datetime.MustTime(12, 0, 0, 0),
			wantErr: datetime.ErrType,
		},
		{
			name:    "duration and time",
			a:       datetime.DurationResolution,
			b:       datetime.MinTime,
			wantErr: datetime.ErrType,
		},
		{
			name:    "date and datetime",
			a:       datetime.MustDate(2000, 1, 1),
			b:       datetime.MustDateTime(2000, 1, 1, 0, 0, 0, 0),
			wantErr: datetime.ErrType,
		},
		{
			name:    "nil",
			a:       datetime.MinDate,
			b:       nil,
			wantErr: datetime.ErrType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datetime.Cmp(tt.a, tt.b)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil && got != tt.want {
				t.Errorf("Cmp() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDurationAlgebra(t *testing.T) {
	durations := []datetime.Duration{
		{},
		datetime.DurationResolution,
		datetime.DateResolution,
		dur(datetime.DurationFields{Hours: -1, Minutes: 2}),
		dur(datetime.DurationFields{Weeks: 3, Seconds: 1.25}),
		dur(datetime.DurationFields{Days: -400, Microseconds: 17}),
	}

	for _, x := range durations {
		for _, y := range durations {
			xy, err := datetime.Add(x, y)
			if err != nil {
				t.Fatalf("Add(%v, %v) error = %v", x, y, err)
			}
			yx, err := datetime.Add(y, x)
			if err != nil {
				t.Fatalf("Add(%v, %v) error = %v", y, x, err)
			}
			if c, err := datetime.Cmp(xy, yx); err != nil || c != 0 {
				t.Errorf("Add(%v, %v) = %v, Add(%v, %v) = %v", x, y, xy, y, x, yx)
			}
			back, err := datetime.Sub(xy, y)
			if err != nil {
				t.Fatalf("Sub(%v, %v) error = %v", xy, y, err)
			}
			if c, err := datetime.Cmp(back, x); err != nil || c != 0 {
				t.Errorf("Sub(Add(%v, %v), %v) = %v", x, y, y, back)
			}
		}
	}
}

func TestCmpUnimplementedZone(t *testing.T) {
	type zone struct{ datetime.UnimplementedTZInfo }
	a := datetime.MustTime(12, 0, 0, 0, datetime.WithTZInfo(&zone{}))
	b := datetime.MustTime(12, 0, 0, 0, datetime.WithTZInfo(datetime.UTC))
	_, err := datetime.Cmp(a, b)
	if !errors.Is(err, datetime.ErrNotImplemented) {
		t.Errorf("Cmp() error = %v, want ErrNotImplemented", err)
	}
}

func TestZeroValues(t *testing.T) {
	tests := []struct {
		name string
		op   func() error
	}{
		{
			name: "add to zero date",
			op: func() error {
				_, err := datetime.Add(datetime.Date{}, datetime.Duration{})
				return err
			},
		},
		{
			name: "add zero datetime",
			op: func() error {
				_, err := datetime.Add(dur(datetime.DurationFields{Days: 1}), datetime.DateTime{})
				return err
			},
		},
		{
			name: "subtract zero date",
			op: func() error {
				_, err := datetime.Sub(datetime.MustDate(2000, 1, 1), datetime.Date{})
				return err
			},
		},
		{
			name: "compare zero datetimes",
			op: func() error {
				_, err := datetime.Cmp(datetime.DateTime{}, datetime.DateTime{})
				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.op(), datetime.ErrValue)
		})
	}

	var d datetime.Date
	if !d.IsZero() || d.Ordinal() != 0 {
		t.Errorf("zero Date: IsZero() = %v, Ordinal() = %d, want true and 0", d.IsZero(), d.Ordinal())
	}
	if datetime.MustDate(1, 1, 1).IsZero() {
		t.Errorf("0001-01-01 reported as zero")
	}
}

// sliceZone is a zone of an uncomparable type.
type sliceZone struct {
	datetime.UnimplementedTZInfo
	offsets []datetime.Duration
}

func (z sliceZone) UTCOffset(*datetime.DateTime) (datetime.Duration, bool, error) {
	return z.offsets[0], true, nil
}

func TestCmpUncomparableZone(t *testing.T) {
	z := sliceZone{offsets: []datetime.Duration{dur(datetime.DurationFields{Hours: 1})}}
	a := datetime.MustDateTime(2000, 1, 1, 13, 0, 0, 0, datetime.WithTZInfo(z))
	b := datetime.MustDateTime(2000, 1, 1, 12, 0, 0, 0, datetime.WithTZInfo(datetime.UTC))

	for _, pair := range [][2]datetime.Value{{a, b}, {a, a}} {
		got, err := datetime.Cmp(pair[0], pair[1])
		if err != nil {
			t.Fatalf("Cmp() error = %v", err)
		}
		if got != 0 {
			t.Errorf("Cmp(%v, %v) = %d, want 0", pair[0], pair[1], got)
		}
	}
}
