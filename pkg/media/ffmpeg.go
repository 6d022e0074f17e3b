package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// FFmpeg shells out to an ffmpeg binary.
type FFmpeg struct {
	binary string
	tmpDir string
}

// NewFFmpeg returns a transcoder. An empty binary means "ffmpeg" on PATH and an
// empty tmpDir means os.TempDir().
func NewFFmpeg(binary, tmpDir string) *FFmpeg {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &FFmpeg{binary: binary, tmpDir: tmpDir}
}

// ToWAV writes <tmpDir>/<base>_16k.wav and returns its path. The caller owns
// the output file.
func (f *FFmpeg) ToWAV(ctx context.Context, inputPath string) (string, error) {
	dir := f.tmpDir
	if dir == "" {
		dir = os.TempDir()
	}
	out, err := os.CreateTemp(dir, outputPattern(inputPath))
	if err != nil {
		return "", fmt.Errorf("failed to create wav output: %w", err)
	}
	outPath := out.Name()
	out.Close()

	cmd := exec.CommandContext(ctx, f.binary, Args(inputPath, outPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Remove(outPath)
		return "", fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.String()))
	}
	return outPath, nil
}

// Args builds: -y -i <in> -ac 1 -ar 16000 -f wav <out>.
func Args(inputPath, outputPath string) []string {
	return []string{
		"-y", "-i", inputPath,
		"-ac", "1",
		"-ar", strconv.Itoa(SampleRate),
		"-f", "wav",
		outputPath,
	}
}

func outputPattern(inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return base + "_16k_*.wav"
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
