package pipeline

import (
	"encoding/json"
	"time"

	"transcript-tasks/internal/extraction"
	"transcript-tasks/pkg/whisper"
)

// Status is the outcome of filing one task.
type Status string

const (
	StatusCreated   Status = "created"
	StatusFailed    Status = "failed"
	StatusDuplicate Status = "duplicate"
)

// ExtractInput is the input for Extract.
type ExtractInput struct {
	Text string
}

// ExtractOutput carries the extracted tasks and the assignee guess.
type ExtractOutput struct {
	Tasks    []extraction.Task
	Assignee string // empty when no known name occurs
}

// FileIssuesInput is the input for FileIssues.
type FileIssuesInput struct {
	Tasks []extraction.Task
}

// TaskResult reports what happened to one task.
type TaskResult struct {
	Task         extraction.Task
	Status       Status
	IssueKey     string
	IssueURL     string
	CalendarLink string
	Error        string
	Raw          json.RawMessage
}

// FileIssuesOutput holds one result per input task, in input order.
type FileIssuesOutput struct {
	Results    []TaskResult
	Created    int
	Failed     int
	Duplicates int
}

// ProcessInput is the input for Process. MediaPath is read but never removed.
type ProcessInput struct {
	MediaPath    string
	Language     string // "", "auto", "en", "ru", ...
	ExtractTasks bool
	FileIssues   bool
}

// Timings records how long each stage took.
type Timings struct {
	Transcode  time.Duration
	Transcribe time.Duration
	Extract    time.Duration
	File       time.Duration
}

// ProcessOutput is everything one recording produced.
type ProcessOutput struct {
	RunID         string
	Transcript    string
	Language      string
	Segments      []whisper.Segment
	Tasks         []extraction.Task
	Assignee      string
	Filing        *FileIssuesOutput // nil when filing was not requested or skipped
	FilingSkipped bool
	Timings       Timings
	StartedAt     time.Time
	FinishedAt    time.Time
}
