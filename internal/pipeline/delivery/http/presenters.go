package http

import (
	"encoding/json"
	"strings"

	"transcript-tasks/internal/extraction"
	"transcript-tasks/internal/pipeline"
	"transcript-tasks/pkg/response"
	"transcript-tasks/pkg/whisper"
)

// --- Request DTOs ---

type extractReq struct {
	Text string `json:"text"`
}

func (r extractReq) toInput() pipeline.ExtractInput {
	return pipeline.ExtractInput{Text: r.Text}
}

type taskReq struct {
	Summary     string `json:"summary"     binding:"required,max=255"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"    binding:"omitempty,datetime=2006-01-02"`
}

type fileIssuesReq struct {
	Tasks []taskReq `json:"tasks" binding:"required,min=1,dive"`
}

func (r fileIssuesReq) toInput() pipeline.FileIssuesInput {
	tasks := make([]extraction.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = extraction.Task{
			Summary:     strings.TrimSpace(t.Summary),
			Description: t.Description,
			DueDate:     t.DueDate,
		}
	}
	return pipeline.FileIssuesInput{Tasks: tasks}
}

type processReq struct {
	Language     string `form:"language"      binding:"omitempty,max=16"`
	ExtractTasks *bool  `form:"extract_tasks"`
	FileIssues   bool   `form:"file_issues"`
}

func (r processReq) toInput(mediaPath string) pipeline.ProcessInput {
	extract := true
	if r.ExtractTasks != nil {
		extract = *r.ExtractTasks
	}
	return pipeline.ProcessInput{
		MediaPath:    mediaPath,
		Language:     r.Language,
		ExtractTasks: extract,
		FileIssues:   r.FileIssues,
	}
}

// --- Response DTOs ---

type taskResp struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	DueDate     string `json:"due_date,omitempty"`
}

func newTaskResps(tasks []extraction.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = taskResp{Summary: t.Summary, Description: t.Description, DueDate: t.DueDate}
	}
	return out
}

type extractResp struct {
	Tasks    []taskResp `json:"tasks"`
	Assignee string     `json:"assignee,omitempty"`
}

func (h *handler) newExtractResp(out pipeline.ExtractOutput) extractResp {
	return extractResp{Tasks: newTaskResps(out.Tasks), Assignee: out.Assignee}
}

type resultResp struct {
	Summary      string          `json:"summary"`
	DueDate      string          `json:"due_date,omitempty"`
	Status       string          `json:"status"`
	IssueKey     string          `json:"issue_key,omitempty"`
	IssueURL     string          `json:"issue_url,omitempty"`
	CalendarLink string          `json:"calendar_link,omitempty"`
	Error        string          `json:"error,omitempty"`
	Issue        json.RawMessage `json:"issue,omitempty"`
}

type fileIssuesResp struct {
	Results    []resultResp `json:"results"`
	Created    int          `json:"created"`
	Failed     int          `json:"failed"`
	Duplicates int          `json:"duplicates"`
}

func (h *handler) newFileIssuesResp(out pipeline.FileIssuesOutput) fileIssuesResp {
	results := make([]resultResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = resultResp{
			Summary:      r.Task.Summary,
			DueDate:      r.Task.DueDate,
			Status:       string(r.Status),
			IssueKey:     r.IssueKey,
			IssueURL:     r.IssueURL,
			CalendarLink: r.CalendarLink,
			Error:        r.Error,
			Issue:        r.Raw,
		}
	}
	return fileIssuesResp{
		Results:    results,
		Created:    out.Created,
		Failed:     out.Failed,
		Duplicates: out.Duplicates,
	}
}

type timingsResp struct {
	TranscodeMS  int64 `json:"transcode_ms"`
	TranscribeMS int64 `json:"transcribe_ms"`
	ExtractMS    int64 `json:"extract_ms"`
	FileMS       int64 `json:"file_ms"`
}

type processResp struct {
	RunID         string            `json:"run_id"`
	Transcript    string            `json:"transcript"`
	Language      string            `json:"language,omitempty"`
	Segments      []whisper.Segment `json:"segments"`
	Tasks         []taskResp        `json:"tasks"`
	Assignee      string            `json:"assignee,omitempty"`
	Filing        *fileIssuesResp   `json:"filing,omitempty"`
	FilingSkipped bool              `json:"filing_skipped"`
	Timings       timingsResp       `json:"timings"`
	StartedAt     response.DateTime `json:"started_at"`
	FinishedAt    response.DateTime `json:"finished_at"`
}

func (h *handler) newProcessResp(out pipeline.ProcessOutput) processResp {
	resp := processResp{
		RunID:         out.RunID,
		Transcript:    out.Transcript,
		Language:      out.Language,
		Segments:      out.Segments,
		Tasks:         newTaskResps(out.Tasks),
		Assignee:      out.Assignee,
		FilingSkipped: out.FilingSkipped,
		StartedAt:     response.DateTime(out.StartedAt),
		FinishedAt:    response.DateTime(out.FinishedAt),
		Timings: timingsResp{
			TranscodeMS:  out.Timings.Transcode.Milliseconds(),
			TranscribeMS: out.Timings.Transcribe.Milliseconds(),
			ExtractMS:    out.Timings.Extract.Milliseconds(),
			FileMS:       out.Timings.File.Milliseconds(),
		},
	}
	if resp.Segments == nil {
		resp.Segments = []whisper.Segment{}
	}
	if out.Filing != nil {
		filing := h.newFileIssuesResp(*out.Filing)
		resp.Filing = &filing
	}
	return resp
}
