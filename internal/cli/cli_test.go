package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"transcript-tasks/internal/cli"
	"transcript-tasks/internal/extraction"
	"transcript-tasks/internal/pipeline"
	"transcript-tasks/internal/pipeline/usecase"
	"transcript-tasks/pkg/datemath"
	"transcript-tasks/pkg/jira"
	"transcript-tasks/pkg/log"
)

type mockTracker struct {
	calls int
}

func (m *mockTracker) CreateIssue(ctx context.Context, req jira.CreateIssueRequest) (*jira.Issue, error) {
	m.calls++
	if strings.Contains(req.Summary, "broken") {
		return nil, &jira.APIError{StatusCode: 400, Body: "bad"}
	}
	return &jira.Issue{Key: fmt.Sprintf("OPS-%d", m.calls), Raw: json.RawMessage(`{"key":"x"}`)}, nil
}

func newUseCase(t *testing.T, tracker pipeline.IssueTracker) pipeline.UseCase {
	t.Helper()
	r, err := datemath.NewResolver("UTC")
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	tuesday := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	e, err := extraction.New(extraction.DefaultVocabulary(), r.WithClock(func() time.Time { return tuesday }))
	if err != nil {
		t.Fatalf("extractor: %v", err)
	}
	return usecase.New(log.NewNop(), e, usecase.Options{Tracker: tracker})
}

func run(t *testing.T, uc pipeline.UseCase, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmd(cli.Options{
		In:  strings.NewReader(stdin),
		Out: &out,
		Build: func(ctx context.Context) (pipeline.UseCase, error) {
			if uc == nil {
				return nil, errors.New("no config")
			}
			return uc, nil
		},
	})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestExtractCommand(t *testing.T) {
	out, err := run(t, newUseCase(t, nil), "- fix login bug\nPrepare report for next Monday\nask Самат", "extract", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got struct {
		Tasks    []extraction.Task `json:"tasks"`
		Assignee string            `json:"assignee"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(got.Tasks) != 2 || got.Tasks[1].DueDate != "2024-01-15" || got.Assignee != "Самат" {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestExtractCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")
	os.WriteFile(path, []byte("no action items here"), 0o600)

	out, err := run(t, newUseCase(t, nil), "", "extract", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"summary": "no action items here"`) {
		t.Errorf("expected fallback task, got %s", out)
	}

	if _, err := run(t, newUseCase(t, nil), "", "extract", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("expected read error")
	}
}

func TestFileCommand(t *testing.T) {
	tracker := &mockTracker{}
	uc := newUseCase(t, tracker)

	out, err := run(t, uc, "- fix login bug\n- broken thing\n- write docs", "file", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tracker.calls != 3 {
		t.Errorf("tracker called %d times, want 3", tracker.calls)
	}
	var got struct {
		Created int `json:"created"`
		Failed  int `json:"failed"`
	}
	json.Unmarshal([]byte(out), &got)
	if got.Created != 2 || got.Failed != 1 {
		t.Errorf("unexpected output: %s", out)
	}

	if _, err := run(t, uc, "- broken thing", "file", "--fail-on-error", "-"); err == nil {
		t.Errorf("expected --fail-on-error to fail")
	}
}

func TestFileCommandWithoutTracker(t *testing.T) {
	_, err := run(t, newUseCase(t, nil), "- fix login bug", "file", "-")
	if !errors.Is(err, pipeline.ErrTrackerNotConfigured) {
		t.Errorf("expected ErrTrackerNotConfigured, got %v", err)
	}
}

func TestBuildFailure(t *testing.T) {
	if _, err := run(t, nil, "x", "extract", "-"); err == nil || !strings.Contains(err.Error(), "no config") {
		t.Errorf("expected build error, got %v", err)
	}
}

func TestVersionAndCalendarAuth(t *testing.T) {
	cli.SetVersionInfo("1.2.3", "abc")
	out, err := run(t, nil, "", "version")
	if err != nil || !strings.Contains(out, "tasks 1.2.3") {
		t.Errorf("version output %q, err %v", out, err)
	}

	if _, err := run(t, nil, "", "calendar-auth", filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Errorf("expected missing credentials error")
	}
}
