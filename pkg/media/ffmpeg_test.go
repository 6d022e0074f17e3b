package media_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"transcript-tasks/pkg/media"
)

func TestArgs(t *testing.T) {
	got := media.Args("in.mp4", "out.wav")
	want := []string{"-y", "-i", "in.mp4", "-ac", "1", "-ar", "16000", "-f", "wav", "out.wav"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %v, want %v", got, want)
	}
}

func TestSniffType(t *testing.T) {
	tests := map[string]string{
		"meeting.MP4":        "mp4",
		"/tmp/a.b/voice.ogg": "ogg",
		"noext":              "",
	}
	for in, want := range tests {
		if got := media.SniffType(in); got != want {
			t.Errorf("SniffType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsSupported(t *testing.T) {
	for _, ok := range []string{"a.wav", "b.M4A", "c.mkv", "d.opus"} {
		if !media.IsSupported(ok) {
			t.Errorf("%s should be supported", ok)
		}
	}
	for _, bad := range []string{"a.txt", "b", "c.exe"} {
		if media.IsSupported(bad) {
			t.Errorf("%s should not be supported", bad)
		}
	}
}

func TestFFmpeg_MissingBinary(t *testing.T) {
	dir := t.TempDir()
	f := media.NewFFmpeg(filepath.Join(dir, "no-such-ffmpeg"), dir)

	_, err := f.ToWAV(context.Background(), "input.mp3")
	if err == nil || !strings.Contains(err.Error(), "ffmpeg") {
		t.Fatalf("expected ffmpeg error, got %v", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("failed run must not leave output files, found %d", len(entries))
	}
}

func TestSupportedTypes(t *testing.T) {
	got := media.SupportedTypes()
	if len(got) != 11 || got[0] != "aac" || got[len(got)-1] != "webm" {
		t.Errorf("SupportedTypes() = %v", got)
	}
}
