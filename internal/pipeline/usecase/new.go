package usecase

import (
	"strings"
	"time"

	"transcript-tasks/internal/extraction"
	"transcript-tasks/internal/pipeline"
	"transcript-tasks/pkg/log"
	"transcript-tasks/pkg/media"
	"transcript-tasks/pkg/whisper"
)

// Options carries the optional collaborators. Nil fields disable the
// corresponding stage.
type Options struct {
	Tracker     pipeline.IssueTracker
	Transcoder  media.Transcoder
	Transcriber whisper.Transcriber
	Calendar    pipeline.CalendarMirror
	Notifier    pipeline.Notifier

	CalendarID    string
	BrowseBaseURL string // e.g. https://acme.atlassian.net; used for issue links
	DedupTTL      time.Duration
	DedupSize     int
	Timeout       time.Duration // bounds one Process run; 0 means no limit
}

type implUseCase struct {
	l             log.Logger
	extractor     *extraction.Extractor
	tracker       pipeline.IssueTracker
	transcoder    media.Transcoder
	transcriber   whisper.Transcriber
	calendar      pipeline.CalendarMirror
	notifier      pipeline.Notifier
	calendarID    string
	browseBaseURL string
	ledger        *ledger
	timeout       time.Duration
}

// New creates a pipeline UseCase.
func New(l log.Logger, extractor *extraction.Extractor, opts Options) pipeline.UseCase {
	return &implUseCase{
		l:             l,
		extractor:     extractor,
		tracker:       opts.Tracker,
		transcoder:    opts.Transcoder,
		transcriber:   opts.Transcriber,
		calendar:      opts.Calendar,
		notifier:      opts.Notifier,
		calendarID:    opts.CalendarID,
		browseBaseURL: strings.TrimRight(opts.BrowseBaseURL, "/"),
		ledger:        newLedger(opts.DedupSize, opts.DedupTTL),
		timeout:       opts.Timeout,
	}
}
