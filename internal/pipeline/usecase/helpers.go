package usecase

import (
	"fmt"
	"strings"

	"transcript-tasks/internal/pipeline"
	"transcript-tasks/pkg/telegram"
)

const summaryParseMode = telegram.ParseModeMarkdown

func (uc *implUseCase) issueURL(key string) string {
	if uc.browseBaseURL == "" || key == "" {
		return ""
	}
	return uc.browseBaseURL + "/browse/" + key
}

// buildSummaryMessage renders a Markdown report of one filing run.
func buildSummaryMessage(out pipeline.FileIssuesOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Filed %d of %d tasks*", out.Created, len(out.Results))
	if out.Duplicates > 0 {
		fmt.Fprintf(&b, " (%d already filed)", out.Duplicates)
	}
	b.WriteString("\n")

	for _, r := range out.Results {
		summary := telegram.EscapeMarkdown(r.Task.Summary)
		switch r.Status {
		case pipeline.StatusCreated:
			fmt.Fprintf(&b, "\n✅ %s %s", issueRef(r), summary)
		case pipeline.StatusDuplicate:
			fmt.Fprintf(&b, "\n♻️ %s %s", issueRef(r), summary)
		default:
			fmt.Fprintf(&b, "\n❌ %s: %s", summary, telegram.EscapeMarkdown(r.Error))
		}
		if r.Task.HasDueDate() && r.Status != pipeline.StatusFailed {
			fmt.Fprintf(&b, " (due %s)", r.Task.DueDate)
		}
	}
	return b.String()
}

func issueRef(r pipeline.TaskResult) string {
	if r.IssueURL == "" {
		return "*" + telegram.EscapeMarkdown(r.IssueKey) + "*"
	}
	return "[" + telegram.EscapeMarkdown(r.IssueKey) + "](" + r.IssueURL + ")"
}
