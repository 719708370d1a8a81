package stream

import (
	"context"
	"errors"
	"github.com/shpandrak/smalliter"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestFromIter_ConsumesToCompletion(t *testing.T) {
	it := smalliter.Of(1, 2, 3)
	result, err := FromIter(&it).Collect(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, result)
	require.Equal(t, 0, it.Remaining())
}

func TestFromIter_EarlyStopReleasesRemainder(t *testing.T) {
	boom := errors.New("boom")
	it := smalliter.Of(1, 2, 3, 4)

	err := FromIter(&it).ConsumeWithErr(context.Background(), func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	// The stream's close released the unconsumed tail
	require.Equal(t, 0, it.Remaining())
}

func TestFromIter_PipelineComposes(t *testing.T) {
	it := smalliter.FromSlice([]int{1, 2, 3, 4, 5})
	result := Map(
		FromIter(&it).Filter(func(v int) bool {
			return v%2 == 1
		}),
		func(v int) int {
			return v * 100
		},
	).MustCollect()
	require.Equal(t, []int{100, 300, 500}, result)
}

func TestFromIter_CancelledContextStillCloses(t *testing.T) {
	it := smalliter.Of(1, 2, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := FromIter(&it).Consume(ctx, func(int) {})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, it.Remaining())
}
