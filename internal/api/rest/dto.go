package rest

import "time"

type SubmitRunRequest struct {
	Transform string    `json:"transform"`
	Samples   []float64 `json:"samples"`
	// Workers and TimeoutMillis fall back to server defaults when omitted.
	Workers       int `json:"workers,omitempty"`
	TimeoutMillis int `json:"timeout_ms,omitempty"`
	// Width sets the reduced output width; zero keeps the longest partial.
	Width int `json:"width,omitempty"`
}

type SubmitRunResponse struct {
	RunID       string    `json:"run_id"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
	Links       Links     `json:"links"`
}

type Links struct {
	Self string `json:"self"`
}

type GetRunResponse struct {
	RunID       string         `json:"run_id"`
	Transform   string         `json:"transform"`
	Status      string         `json:"status"`
	Workers     int            `json:"workers"`
	DatasetSize int            `json:"dataset_size"`
	Width       int            `json:"width,omitempty"`
	Result      []float64      `json:"result,omitempty"`
	Failure     *FailureInfo   `json:"failure,omitempty"`
	Timestamps  TimestampsInfo `json:"timestamps"`
}

type FailureInfo struct {
	Error                string `json:"error"`
	FailedPartition      *int   `json:"failed_partition,omitempty"`
	UnresolvedPartitions []int  `json:"unresolved_partitions,omitempty"`
}

type TimestampsInfo struct {
	Submitted time.Time  `json:"submitted"`
	Started   *time.Time `json:"started,omitempty"`
	Completed *time.Time `json:"completed,omitempty"`
}

type ListRunsResponse struct {
	Runs       []RunSummary `json:"runs"`
	Total      int          `json:"total"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
	NextOffset *int         `json:"next_offset,omitempty"`
}

type RunSummary struct {
	RunID       string     `json:"run_id"`
	Transform   string     `json:"transform"`
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ListTransformsResponse struct {
	Transforms []string `json:"transforms"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}
