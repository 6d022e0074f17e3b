package media

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
)

// SampleRate is the rate every recording is normalised to.
const SampleRate = 16000

// Transcoder converts an arbitrary audio/video file to mono 16 kHz WAV.
type Transcoder interface {
	ToWAV(ctx context.Context, inputPath string) (string, error)
}

// supportedTypes lists the upload extensions accepted by the pipeline.
var supportedTypes = map[string]bool{
	"wav": true, "mp3": true, "m4a": true, "aac": true, "flac": true, "ogg": true,
	"opus": true, "webm": true, "mp4": true, "mov": true, "mkv": true,
}

// SniffType returns the lower-cased extension of path without the dot.
func SniffType(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// IsSupported reports whether the file extension is an accepted media type.
func IsSupported(path string) bool {
	return supportedTypes[SniffType(path)]
}

// SupportedTypes returns the accepted extensions in alphabetical order.
func SupportedTypes() []string {
	out := make([]string, 0, len(supportedTypes))
	for ext := range supportedTypes {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
