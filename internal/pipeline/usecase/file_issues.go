package usecase

import (
	"context"

	"transcript-tasks/internal/extraction"
	"transcript-tasks/internal/pipeline"
	"transcript-tasks/pkg/gcalendar"
	"transcript-tasks/pkg/jira"
)

// FileIssues creates one tracker issue per task, sequentially.
func (uc *implUseCase) FileIssues(ctx context.Context, input pipeline.FileIssuesInput) (pipeline.FileIssuesOutput, error) {
	if len(input.Tasks) == 0 {
		return pipeline.FileIssuesOutput{}, pipeline.ErrNoTasks
	}
	if uc.tracker == nil {
		return pipeline.FileIssuesOutput{}, pipeline.ErrTrackerNotConfigured
	}

	out := pipeline.FileIssuesOutput{Results: make([]pipeline.TaskResult, 0, len(input.Tasks))}

	for _, t := range input.Tasks {
		fp := fingerprint(t)
		if key, ok := uc.ledger.lookup(fp); ok {
			uc.l.Infof(ctx, "FileIssues: %q already filed as %s, skipping", t.Summary, key)
			out.Results = append(out.Results, pipeline.TaskResult{
				Task:     t,
				Status:   pipeline.StatusDuplicate,
				IssueKey: key,
				IssueURL: uc.issueURL(key),
			})
			out.Duplicates++
			continue
		}

		issue, err := uc.tracker.CreateIssue(ctx, jira.CreateIssueRequest{
			Summary:     t.Summary,
			Description: t.Description,
			DueDate:     t.DueDate,
		})
		if err != nil {
			uc.l.Errorf(ctx, "FileIssues: failed to create issue %q: %v", t.Summary, err)
			out.Results = append(out.Results, pipeline.TaskResult{
				Task:   t,
				Status: pipeline.StatusFailed,
				Error:  err.Error(),
			})
			out.Failed++
			continue
		}

		uc.ledger.remember(fp, issue.Key)
		out.Results = append(out.Results, pipeline.TaskResult{
			Task:         t,
			Status:       pipeline.StatusCreated,
			IssueKey:     issue.Key,
			IssueURL:     uc.issueURL(issue.Key),
			CalendarLink: uc.tryCreateCalendarEvent(ctx, t, issue.Key),
			Raw:          issue.Raw,
		})
		out.Created++
		uc.l.Infof(ctx, "FileIssues: created %s for %q", issue.Key, t.Summary)
	}

	uc.l.Infof(ctx, "FileIssues: created=%d failed=%d duplicates=%d", out.Created, out.Failed, out.Duplicates)
	uc.tryNotify(ctx, out)

	return out, nil
}

// tryCreateCalendarEvent mirrors a due date as an all-day event.
// Returns the event link, or "" on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t extraction.Task, key string) string {
	if uc.calendar == nil || !t.HasDueDate() {
		return ""
	}

	description := t.Description
	if link := uc.issueURL(key); link != "" {
		description += "\n\n" + link
	}

	event, err := uc.calendar.CreateDueDateEvent(ctx, gcalendar.DueDateEvent{
		CalendarID:  uc.calendarID,
		Summary:     "[" + key + "] " + t.Summary,
		Description: description,
		Date:        t.DueDate,
	})
	if err != nil {
		uc.l.Warnf(ctx, "FileIssues: calendar event for %s failed (non-fatal): %v", key, err)
		return ""
	}
	return event.HTMLLink
}

// tryNotify posts the run summary to chat; failures are only logged.
func (uc *implUseCase) tryNotify(ctx context.Context, out pipeline.FileIssuesOutput) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.SendMessage(ctx, buildSummaryMessage(out), summaryParseMode); err != nil {
		uc.l.Warnf(ctx, "FileIssues: notification failed (non-fatal): %v", err)
	}
}
