package strategy

import (
	"context"
	"errors"
	"testing"

	apperrors "newsdeck/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstSuccess(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name         string
		results      map[string][]int
		errs         map[string]error
		wantStrategy string
		wantValue    []int
		wantCalls    []string
		wantErr      bool
	}{
		{
			name:         "first strategy wins",
			results:      map[string][]int{"a": {1}, "b": {2}},
			wantStrategy: "a",
			wantValue:    []int{1},
			wantCalls:    []string{"a"},
		},
		{
			name:         "error falls through to next",
			results:      map[string][]int{"b": {2}},
			errs:         map[string]error{"a": boom},
			wantStrategy: "b",
			wantValue:    []int{2},
			wantCalls:    []string{"a", "b"},
		},
		{
			name:         "empty result is rejected",
			results:      map[string][]int{"a": {}, "b": {}, "c": {3, 4}},
			wantStrategy: "c",
			wantValue:    []int{3, 4},
			wantCalls:    []string{"a", "b", "c"},
		},
		{
			name:      "all fail",
			results:   map[string][]int{"b": nil},
			errs:      map[string]error{"a": boom, "c": boom},
			wantCalls: []string{"a", "b", "c"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			var strategies []Strategy[[]int]
			for _, name := range []string{"a", "b", "c"} {
				name := name
				strategies = append(strategies, Strategy[[]int]{
					Name: name,
					Run: func(ctx context.Context) ([]int, error) {
						calls = append(calls, name)
						return tt.results[name], tt.errs[name]
					},
				})
			}

			out, err := FirstSuccess(context.Background(), strategies, NonEmpty[int])

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrAllStrategiesFailed)
				assert.ErrorIs(t, err, boom)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStrategy, out.Strategy)
			assert.Equal(t, tt.wantValue, out.Value)
			assert.Equal(t, len(tt.wantCalls), out.Attempts)
		})
	}
}

func TestFirstSuccess_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := FirstSuccess(ctx, []Strategy[[]int]{{
		Name: "never",
		Run: func(ctx context.Context) ([]int, error) {
			called = true
			return []int{1}, nil
		},
	}}, NonEmpty[int])

	assert.False(t, called)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFirstSuccess_NilAcceptTakesAnyValue(t *testing.T) {
	out, err := FirstSuccess(context.Background(), []Strategy[[]int]{{
		Name: "empty",
		Run:  func(ctx context.Context) ([]int, error) { return nil, nil },
	}}, nil)

	require.NoError(t, err)
	assert.Equal(t, "empty", out.Strategy)
}
