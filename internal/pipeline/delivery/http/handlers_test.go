package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"transcript-tasks/internal/extraction"
	"transcript-tasks/internal/pipeline"
	"transcript-tasks/pkg/log"
)

type mockUseCase struct {
	extractOut pipeline.ExtractOutput
	fileOut    pipeline.FileIssuesOutput
	processOut pipeline.ProcessOutput
	err        error

	fileIn    pipeline.FileIssuesInput
	processIn pipeline.ProcessInput
	mediaSeen bool
}

func (m *mockUseCase) Extract(ctx context.Context, in pipeline.ExtractInput) (pipeline.ExtractOutput, error) {
	return m.extractOut, m.err
}

func (m *mockUseCase) FileIssues(ctx context.Context, in pipeline.FileIssuesInput) (pipeline.FileIssuesOutput, error) {
	m.fileIn = in
	return m.fileOut, m.err
}

func (m *mockUseCase) Process(ctx context.Context, in pipeline.ProcessInput) (pipeline.ProcessOutput, error) {
	m.processIn = in
	_, statErr := os.Stat(in.MediaPath)
	m.mediaSeen = statErr == nil
	return m.processOut, m.err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func serve(t *testing.T, fn gin.HandlerFunc, req *http.Request) (int, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	fn(c)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func jsonReq(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func uploadReq(t *testing.T, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		fw.Write(content)
	}
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recordings", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newTestHandler(uc *mockUseCase, maxUpload int64) *handler {
	return New(log.NewNop(), uc, Config{MaxUploadBytes: maxUpload}).(*handler)
}

func TestExtractHandler(t *testing.T) {
	uc := &mockUseCase{extractOut: pipeline.ExtractOutput{
		Tasks:    []extraction.Task{{Summary: "fix login bug", Description: "- fix login bug"}},
		Assignee: "Aisulu",
	}}
	h := newTestHandler(uc, 0)

	t.Run("ok", func(t *testing.T) {
		code, env := serve(t, h.Extract, jsonReq("/api/v1/extract", `{"text":"- fix login bug"}`))
		if code != http.StatusOK || env.ErrorCode != 0 {
			t.Fatalf("status %d code %d", code, env.ErrorCode)
		}
		var data extractResp
		json.Unmarshal(env.Data, &data)
		if len(data.Tasks) != 1 || data.Tasks[0].Summary != "fix login bug" || data.Assignee != "Aisulu" {
			t.Errorf("unexpected data: %s", env.Data)
		}
		if strings.Contains(string(env.Data), "due_date") {
			t.Errorf("empty due date must be omitted: %s", env.Data)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		code, _ := serve(t, h.Extract, jsonReq("/api/v1/extract", `{"text":`))
		if code != http.StatusBadRequest {
			t.Errorf("status %d, want 400", code)
		}
	})
}

func TestFileIssuesHandler(t *testing.T) {
	t.Run("per-task results", func(t *testing.T) {
		uc := &mockUseCase{fileOut: pipeline.FileIssuesOutput{
			Results: []pipeline.TaskResult{
				{Task: extraction.Task{Summary: "a"}, Status: pipeline.StatusCreated, IssueKey: "OPS-1", Raw: json.RawMessage(`{"key":"OPS-1","extra":true}`)},
				{Task: extraction.Task{Summary: "b"}, Status: pipeline.StatusFailed, Error: "jira create issue failed: 400 bad"},
			},
			Created: 1,
			Failed:  1,
		}}
		h := newTestHandler(uc, 0)

		code, env := serve(t, h.FileIssues, jsonReq("/api/v1/issues",
			`{"tasks":[{"summary":" a ","description":"- a","due_date":"2024-01-15"},{"summary":"b"}]}`))
		if code != http.StatusOK {
			t.Fatalf("status %d: %s", code, env.Message)
		}
		if got := uc.fileIn.Tasks; len(got) != 2 || got[0].Summary != "a" || got[0].DueDate != "2024-01-15" {
			t.Errorf("unexpected input: %+v", got)
		}
		var data fileIssuesResp
		json.Unmarshal(env.Data, &data)
		if data.Created != 1 || data.Failed != 1 || data.Results[1].Error == "" {
			t.Errorf("unexpected data: %s", env.Data)
		}
		if !strings.Contains(string(data.Results[0].Issue), `"extra":true`) {
			t.Errorf("raw issue body not passed through: %s", data.Results[0].Issue)
		}
	})

	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "no tasks", body: `{"tasks":[]}`, want: http.StatusBadRequest},
		{name: "missing summary", body: `{"tasks":[{"description":"x"}]}`, want: http.StatusBadRequest},
		{name: "bad due date", body: `{"tasks":[{"summary":"x","due_date":"next monday"}]}`, want: http.StatusBadRequest},
		{name: "tracker not configured", body: `{"tasks":[{"summary":"x"}]}`, err: pipeline.ErrTrackerNotConfigured, want: http.StatusServiceUnavailable},
		{name: "unexpected error", body: `{"tasks":[{"summary":"x"}]}`, err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockUseCase{err: tt.err}, 0)
			code, env := serve(t, h.FileIssues, jsonReq("/api/v1/issues", tt.body))
			if code != tt.want {
				t.Errorf("status %d, want %d (%s)", code, tt.want, env.Message)
			}
		})
	}
}

func TestProcessRecordingHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &mockUseCase{processOut: pipeline.ProcessOutput{
			RunID:      "run-1",
			Transcript: "fix login bug",
			Tasks:      []extraction.Task{{Summary: "fix login bug", Description: "fix login bug"}},
			StartedAt:  time.Date(2024, 1, 2, 15, 4, 5, 0, time.FixedZone("UTC+5", 5*3600)),
			FinishedAt: time.Date(2024, 1, 2, 10, 6, 0, 0, time.UTC),
		}}
		h := newTestHandler(uc, 1<<20)

		code, env := serve(t, h.ProcessRecording, uploadReq(t, "standup.M4A", []byte("audio"), map[string]string{
			"language":    "ru",
			"file_issues": "true",
		}))
		if code != http.StatusOK {
			t.Fatalf("status %d: %s", code, env.Message)
		}
		if !uc.mediaSeen {
			t.Errorf("upload was not stored before processing")
		}
		if _, err := os.Stat(uc.processIn.MediaPath); !os.IsNotExist(err) {
			t.Errorf("upload not cleaned up: %v", err)
		}
		in := uc.processIn
		if in.Language != "ru" || !in.FileIssues || !in.ExtractTasks || !strings.HasSuffix(in.MediaPath, ".m4a") {
			t.Errorf("unexpected input: %+v", in)
		}
		var data struct {
			RunID      string            `json:"run_id"`
			Tasks      []taskResp        `json:"tasks"`
			Segments   []json.RawMessage `json:"segments"`
			Filing     *fileIssuesResp   `json:"filing"`
			StartedAt  string            `json:"started_at"`
			FinishedAt string            `json:"finished_at"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("invalid data %s: %v", env.Data, err)
		}
		if data.RunID != "run-1" || len(data.Tasks) != 1 || data.Segments == nil || data.Filing != nil {
			t.Errorf("unexpected data: %s", env.Data)
		}
		if data.StartedAt != "2024-01-02 10:04:05" || data.FinishedAt != "2024-01-02 10:06:00" {
			t.Errorf("run window = %q .. %q", data.StartedAt, data.FinishedAt)
		}
	})

	t.Run("extraction can be turned off", func(t *testing.T) {
		uc := &mockUseCase{}
		h := newTestHandler(uc, 1<<20)
		code, _ := serve(t, h.ProcessRecording, uploadReq(t, "a.wav", []byte("x"), map[string]string{"extract_tasks": "false"}))
		if code != http.StatusOK || uc.processIn.ExtractTasks {
			t.Errorf("status %d, input %+v", code, uc.processIn)
		}
	})

	tests := []struct {
		name     string
		filename string
		content  []byte
		err      error
		want     int
	}{
		{name: "missing file", want: http.StatusBadRequest},
		{name: "unsupported extension", filename: "notes.txt", content: []byte("x"), want: http.StatusBadRequest},
		{name: "too large", filename: "big.wav", content: bytes.Repeat([]byte("x"), 2048), want: http.StatusBadRequest},
		{name: "undecodable", filename: "a.mp3", content: []byte("x"), err: pipeline.ErrTranscode, want: http.StatusUnprocessableEntity},
		{name: "recogniser down", filename: "a.mp3", content: []byte("x"), err: pipeline.ErrTranscribe, want: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockUseCase{err: tt.err}, 1024)
			code, env := serve(t, h.ProcessRecording, uploadReq(t, tt.filename, tt.content, nil))
			if code != tt.want {
				t.Errorf("status %d, want %d (%s)", code, tt.want, env.Message)
			}
		})
	}
}
