package dtexpr

import (
	"context"
	"errors"
	"fmt"

	"github.com/damedic/datetime-toolbox-go/datetime"
)

// Env binds placeholder names to operand values.
type Env map[string]datetime.Value

type node interface {
	execute(ctx context.Context, env Env) (datetime.Value, error)
}

type literalNode struct {
	value datetime.Value
}

func (n literalNode) execute(context.Context, Env) (datetime.Value, error) {
	return n.value, nil
}

type placeholderNode struct {
	at   Position
	name string
}

func (n placeholderNode) execute(_ context.Context, env Env) (datetime.Value, error) {
	v, ok := env[n.name]
	if !ok || v == nil {
		return nil, &ExecutionError{Pos: n.at, Err: fmt.Errorf("%w: %q", ErrUnbound, n.name)}
	}
	return v, nil
}

type negNode struct {
	at      Position
	operand node
}

func (n negNode) execute(ctx context.Context, env Env) (datetime.Value, error) {
	v, err := n.operand.execute(ctx, env)
	if err != nil {
		return nil, err
	}
	result, err := datetime.Neg(v)
	return traced(ctx, OperatorNegation, n.at, result, err)
}

type binaryNode struct {
	at          Position
	op          Operator
	left, right node
}

func (n binaryNode) execute(ctx context.Context, env Env) (datetime.Value, error) {
	left, err := n.left.execute(ctx, env)
	if err != nil {
		return nil, err
	}
	right, err := n.right.execute(ctx, env)
	if err != nil {
		return nil, err
	}

	var result datetime.Value
	switch n.op {
	case OperatorAddition:
		result, err = datetime.Add(left, right)
	case OperatorSubtraction:
		result, err = datetime.Sub(left, right)
	default:
		var c int
		c, err = datetime.Cmp(left, right)
		if err == nil {
			result = datetime.Boolean(holds(n.op, c))
		}
	}
	return traced(ctx, n.op, n.at, result, err)
}

// holds reports whether the comparison op is satisfied by the ordering c.
func holds(op Operator, c int) bool {
	switch op {
	case OperatorLesserThan:
		return c < 0
	case OperatorLesserOrEqual:
		return c <= 0
	case OperatorEqual:
		return c == 0
	case OperatorNotEqual:
		return c != 0
	case OperatorGreaterThan:
		return c > 0
	case OperatorGreaterOrEqual:
		return c >= 0
	}
	panic(fmt.Sprintf("not a comparison operator: %s", op))
}

// traced wraps a datetime failure of op into an ExecutionError, or hands a
// successful result to the tracer of ctx.
func traced(ctx context.Context, op Operator, at Position, result datetime.Value, err error) (datetime.Value, error) {
	if err != nil {
		var dtErr *datetime.Error
		if errors.As(err, &dtErr) {
			return nil, &ExecutionError{Pos: at, Op: op.String(), Err: err}
		}
		return nil, err
	}
	if t, ok := tracer(ctx); ok {
		if err := t.Log(op, at, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}
