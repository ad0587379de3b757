package goscatter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPool_DispatchResolvesFuture(t *testing.T) {
	p := NewPool(2)
	p.Start()
	defer p.Close()

	dataset := []float64{1, 2, 3, 4}
	double := TransformFunc(func(samples []float64) ([]float64, error) {
		out := make([]float64, len(samples))
		for i, x := range samples {
			out[i] = 2 * x
		}
		return out, nil
	})

	future := p.Dispatch(context.Background(), dataset, Partition{Index: 0, Offset: 2, Length: 2}, double)
	<-future.Done()

	result, err := future.Result()
	require.NoError(t, err)
	require.Equal(t, []float64{6, 8}, result)
}

func TestPool_TransformErrorCarriesPartitionIndex(t *testing.T) {
	p := NewPool(1)
	p.Start()
	defer p.Close()

	boom := errors.New("boom")
	failing := TransformFunc(func([]float64) ([]float64, error) {
		return nil, boom
	})

	future := p.Dispatch(context.Background(), []float64{1}, Partition{Index: 7, Offset: 0, Length: 1}, failing)
	<-future.Done()

	_, err := future.Result()
	var computeErr *ComputeError
	require.ErrorAs(t, err, &computeErr)
	require.Equal(t, 7, computeErr.Partition)
	require.ErrorIs(t, err, boom)
}

func TestPool_PanicBecomesComputeError(t *testing.T) {
	p := NewPool(1)
	p.Start()
	defer p.Close()

	panicking := TransformFunc(func([]float64) ([]float64, error) {
		panic("kaboom")
	})

	future := p.Dispatch(context.Background(), []float64{1}, Partition{Index: 0, Offset: 0, Length: 1}, panicking)
	<-future.Done()

	_, err := future.Result()
	var computeErr *ComputeError
	require.ErrorAs(t, err, &computeErr)
	require.Contains(t, err.Error(), "panicked")
}

func TestPool_CancelledContextResolvesUnavailable(t *testing.T) {
	p := NewPool(1)
	p.Start()
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	future := p.Dispatch(ctx, []float64{1}, Partition{Index: 0, Offset: 0, Length: 1}, identity)
	<-future.Done()

	_, err := future.Result()
	require.ErrorIs(t, err, ErrWorkerUnavailable)
}

func TestPool_CloseStopsIntakeWithoutWaiting(t *testing.T) {
	p := NewPool(1)
	p.Start()

	slow := TransformFunc(func(samples []float64) ([]float64, error) {
		time.Sleep(50 * time.Millisecond)
		return samples, nil
	})

	future := p.Dispatch(context.Background(), []float64{1}, Partition{Index: 0, Offset: 0, Length: 1}, slow)

	p.Close()
	p.Wait()

	// The in-flight task still resolved before the workers exited.
	select {
	case <-future.Done():
	default:
		t.Fatal("future not resolved after Wait")
	}
}

func TestFuture_ResolveIsOneShot(t *testing.T) {
	future := NewFuture(Partition{Index: 3})
	future.Resolve([]float64{1}, nil)
	future.Resolve(nil, errors.New("late failure"))

	<-future.Done()
	result, err := future.Result()
	require.NoError(t, err)
	require.Equal(t, []float64{1}, result)
	require.Equal(t, 3, future.Partition().Index)
}
