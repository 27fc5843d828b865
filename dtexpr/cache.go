package dtexpr

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/damedic/datetime-toolbox-go/datetime"
)

// Evaluator evaluates expression templates, parsing each distinct template
// shape once. Parsed expressions are kept for the lifetime of the Evaluator.
//
// An Evaluator is safe for concurrent use.
type Evaluator struct {
	mu      sync.RWMutex
	cache   map[string]Expression
	onParse func(Tokens)
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithParseHook sets a function called with the token stream every time the
// Evaluator parses, that is on every cache miss.
func WithParseHook(hook func(Tokens)) EvaluatorOption {
	return func(e *Evaluator) {
		e.onParse = hook
	}
}

// NewEvaluator returns an Evaluator with an empty cache.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{cache: map[string]Expression{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Len returns the number of cached expressions.
func (e *Evaluator) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

// Eval evaluates the template formed by interleaving fragments with values:
// fragments[0] values[0] fragments[1] ... values[n-1] fragments[n].
// It requires len(fragments) == len(values)+1.
//
// Templates whose fragments are equal share one parsed expression, the
// values only bind its placeholders.
func (e *Evaluator) Eval(ctx context.Context, fragments []string, values ...datetime.Value) (datetime.Value, error) {
	if len(fragments) != len(values)+1 {
		return nil, fmt.Errorf("dtexpr: %d fragments cannot interleave %d values", len(fragments), len(values))
	}

	tokens := make(Tokens, 0, len(fragments)+len(values))
	env := make(Env, len(values))
	for i, v := range values {
		name := "$" + strconv.Itoa(i)
		tokens = append(tokens, Text(fragments[i]), Placeholder{Name: name})
		env[name] = v
	}
	tokens = append(tokens, Text(fragments[len(values)]))
	tokens = tokens.compact()

	expr, err := e.expression(tokens)
	if err != nil {
		return nil, err
	}
	return Evaluate(ctx, expr, env)
}

// expression returns the parsed form of tokens, parsing on a cache miss.
// Streams holding a Literal are parsed every time and never cached.
func (e *Evaluator) expression(tokens Tokens) (Expression, error) {
	key, cacheable := tokens.shape()
	if !cacheable {
		if e.onParse != nil {
			e.onParse(tokens)
		}
		return Parse(tokens)
	}

	e.mu.RLock()
	expr, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		return expr, nil
	}

	if e.onParse != nil {
		e.onParse(tokens)
	}
	expr, err := Parse(tokens)
	if err != nil {
		return Expression{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if cached, ok := e.cache[key]; ok {
		return cached, nil
	}
	e.cache[key] = expr
	return expr, nil
}

var defaultEvaluator = NewEvaluator()

// EvalFragments evaluates a template with the process-wide Evaluator.
// See Evaluator.Eval.
func EvalFragments(ctx context.Context, fragments []string, values ...datetime.Value) (datetime.Value, error) {
	return defaultEvaluator.Eval(ctx, fragments, values...)
}

// Eval evaluates template with the process-wide Evaluator, binding values in
// order to the "?" markers of template.
//
// Example:
//
//	later, err := dtexpr.Eval(ctx, "? + ? > ?", start, length, deadline)
func Eval(ctx context.Context, template string, values ...datetime.Value) (datetime.Value, error) {
	fragments := strings.Split(template, placeholderMarker)
	if len(fragments) != len(values)+1 {
		return nil, fmt.Errorf("dtexpr: template %q has %d markers for %d values", template, len(fragments)-1, len(values))
	}
	return defaultEvaluator.Eval(ctx, fragments, values...)
}
