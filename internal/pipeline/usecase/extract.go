package usecase

import (
	"context"

	"transcript-tasks/internal/pipeline"
)

// Extract runs the task extractor and the assignee guesser over input.Text.
func (uc *implUseCase) Extract(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractOutput, error) {
	tasks := uc.extractor.Extract(input.Text)
	assignee, _ := uc.extractor.GuessAssignee(input.Text)

	uc.l.Infof(ctx, "Extract: input_length=%d tasks=%d assignee=%q", len(input.Text), len(tasks), assignee)

	return pipeline.ExtractOutput{
		Tasks:    tasks,
		Assignee: assignee,
	}, nil
}
