package goscatter

// Transform maps one partition's samples to a partial result. Implementations
// must be stateless: the coordinator invokes the same transform concurrently
// on every partition, and the samples slice aliases the shared dataset and
// must not be mutated.
type Transform interface {
	Apply(samples []float64) ([]float64, error)
}

// TransformFunc adapts a plain function to the Transform interface.
type TransformFunc func(samples []float64) ([]float64, error)

func (f TransformFunc) Apply(samples []float64) ([]float64, error) {
	return f(samples)
}
