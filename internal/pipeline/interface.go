package pipeline

import (
	"context"

	"transcript-tasks/pkg/gcalendar"
	"transcript-tasks/pkg/jira"
)

// UseCase runs transcript to issue-tracker processing.
type UseCase interface {
	// Extract pulls candidate tasks and an assignee guess out of plain text.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// FileIssues submits tasks to the issue tracker one by one. A failed task
	// never stops the remaining ones.
	FileIssues(ctx context.Context, input FileIssuesInput) (FileIssuesOutput, error)

	// Process transcodes and transcribes a recording, then extracts and
	// optionally files its tasks.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}

// IssueTracker files a single issue. *jira.Client satisfies it.
type IssueTracker interface {
	CreateIssue(ctx context.Context, req jira.CreateIssueRequest) (*jira.Issue, error)
}

// CalendarMirror places a due date on a calendar. *gcalendar.Client satisfies it.
type CalendarMirror interface {
	CreateDueDateEvent(ctx context.Context, ev gcalendar.DueDateEvent) (*gcalendar.Event, error)
}

// Notifier delivers the run summary to a chat. *telegram.Bot satisfies it.
type Notifier interface {
	SendMessage(ctx context.Context, text, parseMode string) error
}
