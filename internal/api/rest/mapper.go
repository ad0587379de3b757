package rest

import (
	"fmt"
	"time"

	"github.com/nemanja-m/goscatter/internal/runs"
)

func (req *SubmitRunRequest) ToSubmission() runs.Submission {
	return runs.Submission{
		Transform: req.Transform,
		Samples:   req.Samples,
		Workers:   req.Workers,
		Timeout:   time.Duration(req.TimeoutMillis) * time.Millisecond,
		Width:     req.Width,
	}
}

func toSubmitRunResponse(run *runs.Run) SubmitRunResponse {
	return SubmitRunResponse{
		RunID:       run.ID.String(),
		Status:      string(run.Status),
		SubmittedAt: run.SubmittedAt,
		Links: Links{
			Self: fmt.Sprintf("/api/runs/%s", run.ID.String()),
		},
	}
}

func toGetRunResponse(run *runs.Run) GetRunResponse {
	resp := GetRunResponse{
		RunID:       run.ID.String(),
		Transform:   run.Transform,
		Status:      string(run.Status),
		Workers:     run.Workers,
		DatasetSize: run.DatasetSize,
		Width:       run.Width,
		Result:      run.Result,
		Timestamps: TimestampsInfo{
			Submitted: run.SubmittedAt,
			Started:   run.StartedAt,
			Completed: run.CompletedAt,
		},
	}
	if run.Error != "" {
		resp.Failure = &FailureInfo{
			Error:                run.Error,
			FailedPartition:      run.FailedPartition,
			UnresolvedPartitions: run.UnresolvedPartitions,
		}
	}
	return resp
}

func toRunSummary(run *runs.Run) RunSummary {
	return RunSummary{
		RunID:       run.ID.String(),
		Transform:   run.Transform,
		Status:      string(run.Status),
		SubmittedAt: run.SubmittedAt,
		CompletedAt: run.CompletedAt,
	}
}
