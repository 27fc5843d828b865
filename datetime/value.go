package datetime

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

//go:generate go run ../internal/cmd/generate kinds --out kind_gen.go

// Value is the closed family of operands accepted by Add, Sub, Neg and Cmp.
// It is implemented by Duration, Date, Time, DateTime, Number and Boolean only.
type Value interface {
	Kind() Kind
	fmt.Stringer
	isValue()
}

func (Duration) isValue() {}
func (Date) isValue()     {}
func (Time) isValue()     {}
func (DateTime) isValue() {}
func (Number) isValue()   {}
func (Boolean) isValue()  {}

func (Duration) Kind() Kind { return KindDuration }
func (Date) Kind() Kind     { return KindDate }
func (Time) Kind() Kind     { return KindTime }
func (DateTime) Kind() Kind { return KindDateTime }
func (Number) Kind() Kind   { return KindNumber }
func (Boolean) Kind() Kind  { return KindBoolean }

// Number is a plain numeric operand. It takes part in expressions as an
// operand, but no arithmetic or comparison is defined on it.
type Number struct {
	Value *apd.Decimal
}

// NumberOf returns the Number holding the exact decimal form of f.
func NumberOf(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, &Error{Kind: ErrNaN, Value: f, Msg: fmt.Sprintf("%v is not a finite number", f)}
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return Number{}, &Error{Kind: ErrNaN, Value: f, Msg: err.Error()}
	}
	return Number{Value: d}, nil
}

func (n Number) String() string {
	if n.Value == nil {
		return "0"
	}
	return n.Value.String()
}

// Boolean is the result of a comparison in an expression.
type Boolean bool

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

func kindName(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}
