package dtexpr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/damedic/datetime-toolbox-go/datetime"
)

// Tracer defines the interface for logging evaluation steps
type Tracer interface {
	// Log logs the result of the operator op at pos
	Log(op Operator, pos Position, result datetime.Value) error
}

// StdoutTracer writes traces to io.Stdout.
type StdoutTracer struct{}

func (w StdoutTracer) Log(op Operator, pos Position, result datetime.Value) error {
	_, err := fmt.Printf("%s@%d:%d: %v\n", op, pos.Token, pos.Offset, result)
	return err
}

// SlogTracer writes traces as debug records to Logger, or to slog.Default()
// if Logger is nil.
type SlogTracer struct {
	Logger *slog.Logger
}

func (w SlogTracer) Log(op Operator, pos Position, result datetime.Value) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("dtexpr",
		slog.String("op", op.String()),
		slog.Int("token", pos.Token),
		slog.Int("offset", pos.Offset),
		slog.String("kind", result.Kind().String()),
		slog.String("result", result.String()),
	)
	return nil
}

type tracerKey struct{}

// WithTracer installs the given trace logger into the context.
//
// By default, evaluation is not traced.
//
//	ctx = dtexpr.WithTracer(ctx, dtexpr.SlogTracer{Logger: logger})
func WithTracer(ctx context.Context, logger Tracer) context.Context {
	return context.WithValue(ctx, tracerKey{}, logger)
}

func tracer(ctx context.Context) (Tracer, bool) {
	if ctx == nil {
		return nil, false
	}
	logger, ok := ctx.Value(tracerKey{}).(Tracer)
	return logger, ok && logger != nil
}
