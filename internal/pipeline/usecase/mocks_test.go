package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"transcript-tasks/internal/extraction"
	"transcript-tasks/pkg/datemath"
	"transcript-tasks/pkg/gcalendar"
	"transcript-tasks/pkg/jira"
	"transcript-tasks/pkg/whisper"
)

// tuesday is 2024-01-02.
var tuesday = time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any) {
	m.record(fmt.Sprint(args...))
}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any) {
	m.record(fmt.Sprintf(format, args...))
}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func (m *mockLogger) record(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, s)
}

func (m *mockLogger) warnings() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.warns)
}

// mockTracker hands out OPS-1, OPS-2, ... and fails summaries listed in failOn.
type mockTracker struct {
	failOn map[string]error
	calls  []jira.CreateIssueRequest
}

func (m *mockTracker) CreateIssue(ctx context.Context, req jira.CreateIssueRequest) (*jira.Issue, error) {
	m.calls = append(m.calls, req)
	if err, ok := m.failOn[req.Summary]; ok {
		return nil, err
	}
	key := fmt.Sprintf("OPS-%d", len(m.calls))
	raw, _ := json.Marshal(map[string]string{"id": "100", "key": key})
	return &jira.Issue{ID: "100", Key: key, Raw: raw}, nil
}

type mockCalendar struct {
	fail   bool
	events []gcalendar.DueDateEvent
}

func (m *mockCalendar) CreateDueDateEvent(ctx context.Context, ev gcalendar.DueDateEvent) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("calendar down")
	}
	m.events = append(m.events, ev)
	return &gcalendar.Event{ID: "ev", HTMLLink: "https://calendar.test/" + ev.Date, Date: ev.Date}, nil
}

type mockNotifier struct {
	fail     bool
	messages []string
}

func (m *mockNotifier) SendMessage(ctx context.Context, text, parseMode string) error {
	if m.fail {
		return errors.New("chat down")
	}
	m.messages = append(m.messages, text)
	return nil
}

// mockTranscoder writes an empty wav into dir.
type mockTranscoder struct {
	dir  string
	err  error
	last string
}

func (m *mockTranscoder) ToWAV(ctx context.Context, inputPath string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.last = filepath.Join(m.dir, "out_16k.wav")
	if err := os.WriteFile(m.last, []byte("RIFF"), 0o600); err != nil {
		return "", err
	}
	return m.last, nil
}

type mockTranscriber struct {
	transcript whisper.Transcript
	err        error
	req        whisper.TranscribeRequest
	deadline   bool
}

func (m *mockTranscriber) Transcribe(ctx context.Context, req whisper.TranscribeRequest) (whisper.Transcript, error) {
	m.req = req
	_, m.deadline = ctx.Deadline()
	if m.err != nil {
		return whisper.Transcript{}, m.err
	}
	return m.transcript, nil
}

func newExtractor(t *testing.T) *extraction.Extractor {
	t.Helper()
	r, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	e, err := extraction.New(extraction.DefaultVocabulary(), r.WithClock(func() time.Time { return tuesday }))
	if err != nil {
		t.Fatalf("extractor: %v", err)
	}
	return e
}
