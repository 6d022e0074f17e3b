package whisper

import (
	"context"
	"time"
)

// Segment is one timed piece of the recognised speech.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the recogniser output the pipeline consumes.
type Transcript struct {
	Text     string        `json:"text"`
	Language string        `json:"language,omitempty"`
	Duration time.Duration `json:"duration"`
	Segments []Segment     `json:"segments"`
}

// TranscribeRequest selects the audio file and an optional language hint.
type TranscribeRequest struct {
	AudioPath string
	Language  string // "" or "auto" means detect
}

// Transcriber turns a WAV file into a Transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, req TranscribeRequest) (Transcript, error)
}

// verboseResponse is the verbose_json body of /v1/audio/transcriptions.
type verboseResponse struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Duration float64   `json:"duration"`
	Segments []Segment `json:"segments"`
}
