package goscatter

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSplitEven_EvenSplit(t *testing.T) {
	partitions, err := SplitEven(8, 2)
	require.NoError(t, err)
	require.Equal(t, []Partition{
		{Index: 0, Offset: 0, Length: 4},
		{Index: 1, Offset: 4, Length: 4},
	}, partitions)
}

func TestSplitEven_RemainderGoesToEarliestPartitions(t *testing.T) {
	partitions, err := SplitEven(10, 3)
	require.NoError(t, err)

	lengths := make([]int, len(partitions))
	for i, p := range partitions {
		lengths[i] = p.Length
	}
	require.Equal(t, []int{4, 3, 3}, lengths)
}

func TestSplitEven_MoreWorkersThanSamples(t *testing.T) {
	partitions, err := SplitEven(3, 5)
	require.NoError(t, err)
	require.Len(t, partitions, 3)
	for _, p := range partitions {
		require.Equal(t, 1, p.Length)
	}
}

func TestSplitEven_InvalidArguments(t *testing.T) {
	cases := []struct {
		name        string
		datasetSize int
		workerCount int
	}{
		{"zero dataset", 0, 4},
		{"negative dataset", -1, 4},
		{"zero workers", 10, 0},
		{"negative workers", 10, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SplitEven(tc.datasetSize, tc.workerCount)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSplitEven_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		datasetSize := rapid.IntRange(1, 10_000).Draw(t, "datasetSize")
		workerCount := rapid.IntRange(1, 128).Draw(t, "workerCount")

		partitions, err := SplitEven(datasetSize, workerCount)
		require.NoError(t, err)

		require.LessOrEqual(t, len(partitions), workerCount)

		// Contiguous, non-overlapping, covering, no zero-length partitions.
		offset := 0
		total := 0
		for i, p := range partitions {
			require.Equal(t, i, p.Index)
			require.Equal(t, offset, p.Offset)
			require.Greater(t, p.Length, 0)
			offset += p.Length
			total += p.Length
		}
		require.Equal(t, datasetSize, total)

		// Deterministic layout.
		again, err := SplitEven(datasetSize, workerCount)
		require.NoError(t, err)
		require.Equal(t, partitions, again)
	})
}
