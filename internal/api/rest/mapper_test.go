package rest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nemanja-m/goscatter/internal/runs"
)

func TestSubmitRunRequest_ToSubmission(t *testing.T) {
	req := SubmitRunRequest{
		Transform:     "dft",
		Samples:       []float64{1, 2, 3},
		Workers:       3,
		TimeoutMillis: 1500,
		Width:         8,
	}

	sub := req.ToSubmission()
	require.Equal(t, "dft", sub.Transform)
	require.Equal(t, []float64{1, 2, 3}, sub.Samples)
	require.Equal(t, 3, sub.Workers)
	require.Equal(t, 1500*time.Millisecond, sub.Timeout)
	require.Equal(t, 8, sub.Width)
}

func TestToGetRunResponse_FailureBlock(t *testing.T) {
	partition := 2
	run := &runs.Run{
		ID:              uuid.New(),
		Transform:       "identity",
		Status:          runs.StatusFailed,
		Error:           "partition 2: compute failed: boom",
		FailedPartition: &partition,
		SubmittedAt:     time.Now().UTC(),
	}

	resp := toGetRunResponse(run)
	require.NotNil(t, resp.Failure)
	require.Equal(t, 2, *resp.Failure.FailedPartition)
	require.Contains(t, resp.Failure.Error, "boom")
}

func TestToGetRunResponse_NoFailureBlockOnSuccess(t *testing.T) {
	run := &runs.Run{
		ID:          uuid.New(),
		Transform:   "identity",
		Status:      runs.StatusCompleted,
		Result:      []float64{1},
		SubmittedAt: time.Now().UTC(),
	}

	resp := toGetRunResponse(run)
	require.Nil(t, resp.Failure)
	require.Equal(t, []float64{1}, resp.Result)
}
