package pipeline

import "errors"

// Domain-specific errors for the pipeline package.
var (
	ErrNoTasks                  = errors.New("no tasks to file")
	ErrTrackerNotConfigured     = errors.New("issue tracker is not configured")
	ErrMediaRequired            = errors.New("media path is required")
	ErrUnsupportedMedia         = errors.New("unsupported media type")
	ErrTranscoderNotConfigured  = errors.New("transcoder is not configured")
	ErrTranscriberNotConfigured = errors.New("transcriber is not configured")
	ErrTranscode                = errors.New("failed to transcode media")
	ErrTranscribe               = errors.New("failed to transcribe audio")
)
