package goscatter

import "fmt"

// Reducer combines the ordered collection of partial results into the final
// output. The collection is always indexed by partition, ascending, regardless
// of worker completion order.
type Reducer interface {
	Reduce(partials [][]float64) ([]float64, error)
}

// ReducerFunc adapts a plain function to the Reducer interface.
type ReducerFunc func(partials [][]float64) ([]float64, error)

func (f ReducerFunc) Reduce(partials [][]float64) ([]float64, error) {
	return f(partials)
}

// TransposeSum is the default reducer: each partition's result is treated as
// one row and the rows are summed element-wise. The output is truncated or
// zero-padded to Width samples; a non-positive Width keeps the length of the
// longest partial result.
type TransposeSum struct {
	Width int
}

func (r TransposeSum) Reduce(partials [][]float64) ([]float64, error) {
	if len(partials) == 0 {
		return nil, fmt.Errorf("%w: no partial results", ErrInvalidReducerInput)
	}
	longest := 0
	for i, partial := range partials {
		if len(partial) == 0 {
			return nil, fmt.Errorf("%w: partition %d produced no values", ErrInvalidReducerInput, i)
		}
		if len(partial) > longest {
			longest = len(partial)
		}
	}

	width := r.Width
	if width <= 0 {
		width = longest
	}

	out := make([]float64, width)
	for _, partial := range partials {
		n := min(width, len(partial))
		for i := range n {
			out[i] += partial[i]
		}
	}
	return out, nil
}
