package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"transcript-tasks/internal/pipeline"
	"transcript-tasks/pkg/log"
	"transcript-tasks/pkg/media"
	"transcript-tasks/pkg/whisper"
)

// Process runs one recording through transcode, transcribe, extract and file.
func (uc *implUseCase) Process(ctx context.Context, input pipeline.ProcessInput) (out pipeline.ProcessOutput, err error) {
	if strings.TrimSpace(input.MediaPath) == "" {
		return pipeline.ProcessOutput{}, pipeline.ErrMediaRequired
	}
	if !media.IsSupported(input.MediaPath) {
		return pipeline.ProcessOutput{}, fmt.Errorf("%w: %q", pipeline.ErrUnsupportedMedia, media.SniffType(input.MediaPath))
	}
	if uc.transcoder == nil {
		return pipeline.ProcessOutput{}, pipeline.ErrTranscoderNotConfigured
	}
	if uc.transcriber == nil {
		return pipeline.ProcessOutput{}, pipeline.ErrTranscriberNotConfigured
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	out = pipeline.ProcessOutput{RunID: uuid.NewString(), StartedAt: time.Now()}
	defer func() { out.FinishedAt = time.Now() }()
	ctx = context.WithValue(ctx, log.RunIDKey, out.RunID)
	uc.l.Infof(ctx, "Process: media=%s language=%q", media.SniffType(input.MediaPath), input.Language)

	// Step 1: normalise to mono 16 kHz WAV
	start := time.Now()
	wavPath, err := uc.transcoder.ToWAV(ctx, input.MediaPath)
	if err != nil {
		return out, fmt.Errorf("%w: %w", pipeline.ErrTranscode, err)
	}
	defer func() {
		if rmErr := os.Remove(wavPath); rmErr != nil && !os.IsNotExist(rmErr) {
			uc.l.Warnf(ctx, "Process: failed to remove %s: %v", wavPath, rmErr)
		}
	}()
	out.Timings.Transcode = time.Since(start)

	// Step 2: speech recognition
	start = time.Now()
	tr, err := uc.transcriber.Transcribe(ctx, whisper.TranscribeRequest{AudioPath: wavPath, Language: input.Language})
	if err != nil {
		return out, fmt.Errorf("%w: %w", pipeline.ErrTranscribe, err)
	}
	out.Timings.Transcribe = time.Since(start)
	out.Transcript = tr.Text
	out.Language = tr.Language
	out.Segments = tr.Segments
	uc.l.Infof(ctx, "Process: transcribed %d segments in %s", len(tr.Segments), out.Timings.Transcribe)

	if !input.ExtractTasks {
		return out, nil
	}

	// Step 3: task extraction
	start = time.Now()
	extracted, err := uc.Extract(ctx, pipeline.ExtractInput{Text: tr.Text})
	if err != nil {
		return out, err
	}
	out.Timings.Extract = time.Since(start)
	out.Tasks = extracted.Tasks
	out.Assignee = extracted.Assignee

	if !input.FileIssues || len(out.Tasks) == 0 {
		return out, nil
	}

	// Step 4: issue filing (skipped without tracker credentials)
	if uc.tracker == nil {
		uc.l.Warn(ctx, "Process: issue tracker credentials not set, skipping filing")
		out.FilingSkipped = true
		return out, nil
	}

	start = time.Now()
	filed, err := uc.FileIssues(ctx, pipeline.FileIssuesInput{Tasks: out.Tasks})
	if err != nil {
		return out, err
	}
	out.Timings.File = time.Since(start)
	out.Filing = &filed

	return out, nil
}
