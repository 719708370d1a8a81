package stream

import (
	"context"
	"errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestJust_Collect(t *testing.T) {
	result, err := Just(1, 2, 3).Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, result)
}

func TestJust_EmptyStream(t *testing.T) {
	result, err := Just[int]().Collect(context.Background())
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestJust_Reusable(t *testing.T) {
	s := Just(1, 2, 3)
	require.Equal(t, []int{1, 2, 3}, s.MustCollect())
	require.Equal(t, []int{1, 2, 3}, s.MustCollect())
}

func TestFilter_KeepsMatching(t *testing.T) {
	result := Just(1, 2, 3, 4, 5).
		Filter(func(v int) bool {
			return v > 2
		}).
		MustCollect()
	require.Equal(t, []int{3, 4, 5}, result)
}

func TestMap_Transforms(t *testing.T) {
	result := Map(Just(1, 2, 3), func(v int) int {
		return v * 10
	}).MustCollect()
	require.Equal(t, []int{10, 20, 30}, result)
}

func TestCount_Materializes(t *testing.T) {
	count, err := Just(1, 2, 3, 4).Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, count)
}

func TestEmpty_CollectsNothing(t *testing.T) {
	require.Empty(t, Empty[string]().MustCollect())
}

func TestError_FailsOnOpen(t *testing.T) {
	boom := errors.New("boom")
	_, err := Error[int](boom).Collect(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestConsumeWithErr_ConsumerErrorStopsAndCloses(t *testing.T) {
	boom := errors.New("boom")
	closed := 0
	n := 0
	s := NewSimpleStream(func(_ context.Context) (int, error) {
		n++
		return n, nil
	}, WithCloseFuncOption(func() {
		closed++
	}))

	err := s.ConsumeWithErr(context.Background(), func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, closed)
}

func TestConsume_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Just(1, 2, 3).Consume(ctx, func(int) {})
	require.ErrorIs(t, err, context.Canceled)
}
