package goscatter

import "fmt"

// Partition describes one contiguous sub-range of the dataset assigned to a
// single worker. Partitions produced by SplitEven are non-overlapping and
// together cover the dataset exactly.
type Partition struct {
	Index  int
	Offset int
	Length int
}

// SplitEven divides datasetSize samples into at most workerCount contiguous
// partitions of near-equal length. When the size does not divide evenly,
// earlier partitions absorb one extra sample each until the remainder is
// exhausted, so the layout is deterministic. When workerCount exceeds
// datasetSize, only datasetSize single-sample partitions are produced; no
// partition ever has zero length.
func SplitEven(datasetSize, workerCount int) ([]Partition, error) {
	if datasetSize <= 0 {
		return nil, fmt.Errorf("%w: dataset size must be positive, got %d", ErrInvalidArgument, datasetSize)
	}
	if workerCount <= 0 {
		return nil, fmt.Errorf("%w: worker count must be positive, got %d", ErrInvalidArgument, workerCount)
	}
	if workerCount > datasetSize {
		workerCount = datasetSize
	}

	base := datasetSize / workerCount
	remainder := datasetSize % workerCount

	partitions := make([]Partition, workerCount)
	offset := 0
	for i := range partitions {
		length := base
		if i < remainder {
			length++
		}
		partitions[i] = Partition{Index: i, Offset: offset, Length: length}
		offset += length
	}
	return partitions, nil
}
