package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"transcript-tasks/internal/extraction"
	"transcript-tasks/internal/pipeline"
)

type extractOutput struct {
	Tasks    []extraction.Task `json:"tasks"`
	Assignee string            `json:"assignee,omitempty"`
}

type resultOutput struct {
	Summary  string          `json:"summary"`
	DueDate  string          `json:"due_date,omitempty"`
	Status   pipeline.Status `json:"status"`
	IssueKey string          `json:"issue_key,omitempty"`
	IssueURL string          `json:"issue_url,omitempty"`
	Calendar string          `json:"calendar_link,omitempty"`
	Error    string          `json:"error,omitempty"`
	Issue    json.RawMessage `json:"issue,omitempty"`
}

type fileOutput struct {
	Assignee   string         `json:"assignee,omitempty"`
	Results    []resultOutput `json:"results"`
	Created    int            `json:"created"`
	Failed     int            `json:"failed"`
	Duplicates int            `json:"duplicates"`
}

func newFileOutput(assignee string, out pipeline.FileIssuesOutput) fileOutput {
	results := make([]resultOutput, len(out.Results))
	for i, r := range out.Results {
		results[i] = resultOutput{
			Summary:  r.Task.Summary,
			DueDate:  r.Task.DueDate,
			Status:   r.Status,
			IssueKey: r.IssueKey,
			IssueURL: r.IssueURL,
			Calendar: r.CalendarLink,
			Error:    r.Error,
			Issue:    r.Raw,
		}
	}
	return fileOutput{
		Assignee:   assignee,
		Results:    results,
		Created:    out.Created,
		Failed:     out.Failed,
		Duplicates: out.Duplicates,
	}
}

func (a *app) newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file|->",
		Short: "Print the action items found in a transcript as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			uc, err := a.useCase(cmd.Context())
			if err != nil {
				return err
			}
			out, err := uc.Extract(cmd.Context(), pipeline.ExtractInput{Text: text})
			if err != nil {
				return fmt.Errorf("extracting tasks: %w", err)
			}
			return a.printJSON(extractOutput{Tasks: out.Tasks, Assignee: out.Assignee})
		},
	}
}

func (a *app) newFileCmd() *cobra.Command {
	var failOnError bool

	cmd := &cobra.Command{
		Use:   "file <file|->",
		Short: "Extract action items and file each one as an issue",
		Long: `Extract action items from a transcript and create one Task issue per item.

A failed item is reported in the output and the remaining items are still filed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			uc, err := a.useCase(cmd.Context())
			if err != nil {
				return err
			}
			extracted, err := uc.Extract(cmd.Context(), pipeline.ExtractInput{Text: text})
			if err != nil {
				return fmt.Errorf("extracting tasks: %w", err)
			}
			filed, err := uc.FileIssues(cmd.Context(), pipeline.FileIssuesInput{Tasks: extracted.Tasks})
			if err != nil {
				return fmt.Errorf("filing issues: %w", err)
			}
			if err := a.printJSON(newFileOutput(extracted.Assignee, filed)); err != nil {
				return err
			}
			if failOnError && filed.Failed > 0 {
				return fmt.Errorf("%d of %d issues failed", filed.Failed, len(filed.Results))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "Exit non-zero when any issue could not be filed")
	return cmd
}

type processOutput struct {
	RunID         string            `json:"run_id"`
	Transcript    string            `json:"transcript"`
	Language      string            `json:"language,omitempty"`
	Tasks         []extraction.Task `json:"tasks"`
	Assignee      string            `json:"assignee,omitempty"`
	Filing        *fileOutput       `json:"filing,omitempty"`
	FilingSkipped bool              `json:"filing_skipped,omitempty"`
}

func (a *app) newProcessCmd() *cobra.Command {
	var (
		language   string
		fileIssues bool
		noExtract  bool
	)

	cmd := &cobra.Command{
		Use:   "process <media-file>",
		Short: "Transcribe a recording and extract its action items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.useCase(cmd.Context())
			if err != nil {
				return err
			}
			out, err := uc.Process(cmd.Context(), pipeline.ProcessInput{
				MediaPath:    args[0],
				Language:     language,
				ExtractTasks: !noExtract,
				FileIssues:   fileIssues,
			})
			if err != nil {
				return fmt.Errorf("processing %s: %w", args[0], err)
			}

			res := processOutput{
				RunID:         out.RunID,
				Transcript:    out.Transcript,
				Language:      out.Language,
				Tasks:         out.Tasks,
				Assignee:      out.Assignee,
				FilingSkipped: out.FilingSkipped,
			}
			if out.Filing != nil {
				f := newFileOutput(out.Assignee, *out.Filing)
				res.Filing = &f
			}
			return a.printJSON(res)
		},
	}
	cmd.Flags().StringVar(&language, "language", "auto", "Language hint (auto, en, ru, ...)")
	cmd.Flags().BoolVar(&fileIssues, "file-issues", false, "File extracted tasks in the issue tracker")
	cmd.Flags().BoolVar(&noExtract, "no-extract", false, "Only transcribe")
	return cmd
}
