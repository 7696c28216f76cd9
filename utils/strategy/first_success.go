// Package strategy implements "try each provider in priority order".
package strategy

import (
	"context"
	"errors"
	"fmt"

	apperrors "newsdeck/utils/errors"
)

// Strategy is one named way of producing a result.
type Strategy[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, error)
}

// Accept decides whether a strategy's result counts as a success.
type Accept[T any] func(T) bool

// Outcome reports which strategy produced the result.
type Outcome[T any] struct {
	Value    T
	Strategy string
	Attempts int
}

// FirstSuccess runs strategies in order and returns the first result that
// comes back without error and passes accept. Later strategies are not run.
// When all fail the returned error wraps ErrAllStrategiesFailed and every
// individual failure.
func FirstSuccess[T any](ctx context.Context, strategies []Strategy[T], accept Accept[T]) (Outcome[T], error) {
	var errs []error

	for i, s := range strategies {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		value, err := s.Run(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
			continue
		}
		if accept != nil && !accept(value) {
			errs = append(errs, fmt.Errorf("%s: result rejected", s.Name))
			continue
		}

		return Outcome[T]{Value: value, Strategy: s.Name, Attempts: i + 1}, nil
	}

	var zero Outcome[T]
	zero.Attempts = len(errs)
	return zero, errors.Join(append([]error{apperrors.ErrAllStrategiesFailed}, errs...)...)
}

// NonEmpty accepts any non-empty slice.
func NonEmpty[E any](items []E) bool {
	return len(items) > 0
}
