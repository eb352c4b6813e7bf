package models

import "time"

// RunState - состояние конечного автомата запуска
type RunState string

const (
	StateInit      RunState = "init"
	StateFetchRate RunState = "fetch_rate"
	StateCombine   RunState = "combine"
	StateDone      RunState = "done"
	StateAborted   RunState = "aborted"
)

const (
	RunStatusRunning   = "running"
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// RunSummary описывает один запуск конвейера
type RunSummary struct {
	RunID             string           `json:"run_id"`
	State             RunState         `json:"state"`
	Status            string           `json:"status"`
	StartedAt         time.Time        `json:"started_at"`
	FinishedAt        *time.Time       `json:"finished_at,omitempty"`
	Combinations      int              `json:"combinations"`
	Persisted         int              `json:"persisted"`
	Skipped           int              `json:"skipped"`
	UsualCount        int              `json:"usual_count"`
	BigCount          int              `json:"big_count"`
	SkippedCurrencies map[string]int   `json:"skipped_currencies,omitempty"`
	Error             string           `json:"error,omitempty"`
	Stats             map[string]int64 `json:"stats,omitempty"`
}
