package dtexpr

import (
	"strconv"
	"strings"

	"github.com/damedic/datetime-toolbox-go/datetime"
)

// Token is an element of an expression token stream: Text, Placeholder or Literal.
type Token interface {
	isToken()
}

// Text is a fragment of expression source. It may only contain whitespace,
// parentheses and the operators + - < <= == != > >=.
type Text string

// Placeholder stands for an operand bound by name at evaluation time.
type Placeholder struct {
	Name string
}

// Literal is an operand embedded directly in the token stream.
type Literal struct {
	Value datetime.Value
}

func (Text) isToken()        {}
func (Placeholder) isToken() {}
func (Literal) isToken()     {}

// placeholderMarker renders operands in flattened expression text.
const placeholderMarker = "?"

// Tokens is an expression token stream.
type Tokens []Token

// String flattens ts, rendering every operand as "?".
func (ts Tokens) String() string {
	var b strings.Builder
	for _, t := range ts {
		if text, ok := t.(Text); ok {
			b.WriteString(string(text))
		} else {
			b.WriteString(placeholderMarker)
		}
	}
	return b.String()
}

// column returns the offset of pos in the flattened text of ts.
func (ts Tokens) column(pos Position) int {
	col := 0
	for i := 0; i < pos.Token && i < len(ts); i++ {
		if text, ok := ts[i].(Text); ok {
			col += len(text)
		} else {
			col += len(placeholderMarker)
		}
	}
	return col + pos.Offset
}

// compact drops empty Text tokens.
func (ts Tokens) compact() Tokens {
	ret := make(Tokens, 0, len(ts))
	for _, t := range ts {
		if text, ok := t.(Text); ok && text == "" {
			continue
		}
		ret = append(ret, t)
	}
	return ret
}

// shape returns the cache key of ts: two streams share a key iff their
// Text tokens are equal and their placeholders sit at the same positions.
// ok is false if ts holds a Literal, whose value belongs to the parsed tree.
func (ts Tokens) shape() (key string, ok bool) {
	var b strings.Builder
	for _, t := range ts {
		switch t := t.(type) {
		case Text:
			b.WriteByte('t')
			b.WriteString(strconv.Itoa(len(t)))
			b.WriteByte(':')
			b.WriteString(string(t))
		case Placeholder:
			b.WriteByte('p')
			b.WriteString(strconv.Itoa(len(t.Name)))
			b.WriteByte(':')
			b.WriteString(t.Name)
		default:
			return "", false
		}
	}
	return b.String(), true
}

// Position locates a point in a token stream: a byte offset within the
// token at index Token. Operands only have offset 0.
type Position struct {
	Token  int
	Offset int
}
