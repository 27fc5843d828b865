package dtexpr

import (
	"context"
	"errors"

	"github.com/damedic/datetime-toolbox-go/datetime"
)

// Expression is a parsed expression over temporal operands.
type Expression struct {
	tokens Tokens
	root   node
}

// String returns the source text of the expression with operands rendered as "?".
func (e Expression) String() string {
	return e.tokens.String()
}

// Tokens returns the token stream the expression was parsed from, without
// empty Text tokens.
func (e Expression) Tokens() Tokens {
	return e.tokens
}

// Parse parses a token stream and returns an Expression object.
// If the tokens do not form an expression, a *SyntaxError is returned.
//
// Example:
//
//	expr, err := dtexpr.Parse(dtexpr.Tokens{
//	    dtexpr.Placeholder{Name: "start"},
//	    dtexpr.Text(" + "),
//	    dtexpr.Placeholder{Name: "length"},
//	})
//	if err != nil {
//	    // Handle error
//	}
func Parse(tokens Tokens) (Expression, error) {
	p := parser{tokens: tokens.compact()}
	root, err := p.parse()
	if err != nil {
		return Expression{}, err
	}
	return Expression{tokens: p.tokens, root: root}, nil
}

// MustParse parses a token stream and returns an Expression object.
// If the tokens cannot be parsed, it panics.
//
// This function is useful when you know the expression is valid and want to avoid
// error checking, such as in tests or with hardcoded expressions.
func MustParse(tokens Tokens) Expression {
	expr, err := Parse(tokens)
	if err != nil {
		panic(err)
	}
	return expr
}

// Evaluate evaluates expr with placeholders bound by env.
//
// Comparisons yield a datetime.Boolean, arithmetic yields the result of
// datetime.Add, datetime.Sub or datetime.Neg. Failures of those operations are
// reported as *ExecutionError wrapping the *datetime.Error.
func Evaluate(ctx context.Context, expr Expression, env Env) (datetime.Value, error) {
	if expr.root == nil {
		return nil, errors.New("dtexpr: evaluating an unparsed expression")
	}
	result, err := expr.root.execute(ctx, env)
	if err != nil {
		var execErr *ExecutionError
		if errors.As(err, &execErr) {
			execErr.Tokens = expr.tokens
		}
		return nil, err
	}
	return result, nil
}
