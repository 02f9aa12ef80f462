package pipeline

import "time"

// Stage describes a step applied to each file.
type Stage string

const (
	StageLoad  Stage = "load"
	StageCache Stage = "cache"
	StageScan  Stage = "scan"
	StageFix   Stage = "fix"
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file, or for the whole run when File is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use: files report from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}
