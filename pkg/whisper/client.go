package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.openai.com"
	DefaultModel   = "whisper-1"
	DefaultTimeout = 30 * time.Minute
)

// Client talks to an OpenAI-compatible speech-to-text endpoint
// (OpenAI, faster-whisper-server, LocalAI, ...).
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a transcription client. The client is meant to be built
// once and shared for the lifetime of the process.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Transcribe uploads the audio file and returns text plus segments.
func (c *Client) Transcribe(ctx context.Context, req TranscribeRequest) (Transcript, error) {
	f, err := os.Open(req.AudioPath)
	if err != nil {
		return Transcript{}, fmt.Errorf("failed to open audio: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"model":           c.model,
		"response_format": "verbose_json",
	}
	if lang := strings.TrimSpace(req.Language); lang != "" && lang != "auto" {
		fields["language"] = lang
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return Transcript{}, fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}
	fw, err := mw.CreateFormFile("file", filepath.Base(req.AudioPath))
	if err != nil {
		return Transcript{}, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return Transcript{}, fmt.Errorf("failed to copy audio into request: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Transcript{}, fmt.Errorf("failed to finalise multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/audio/transcriptions", &body)
	if err != nil {
		return Transcript{}, fmt.Errorf("failed to build transcription request: %w", err)
	}
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Transcript{}, fmt.Errorf("failed to call transcription API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return Transcript{}, fmt.Errorf("transcription API error %d: %s", resp.StatusCode, string(raw))
	}

	var vr verboseResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return Transcript{}, fmt.Errorf("failed to decode transcription response: %w", err)
	}
	return toTranscript(vr), nil
}

// toTranscript joins trimmed segment texts with single spaces; without
// segments the top-level text is used.
func toTranscript(vr verboseResponse) Transcript {
	tr := Transcript{
		Language: vr.Language,
		Duration: time.Duration(vr.Duration * float64(time.Second)),
		Segments: make([]Segment, 0, len(vr.Segments)),
	}
	parts := make([]string, 0, len(vr.Segments))
	for _, s := range vr.Segments {
		s.Text = strings.TrimSpace(s.Text)
		tr.Segments = append(tr.Segments, s)
		parts = append(parts, s.Text)
	}
	if len(parts) > 0 {
		tr.Text = strings.TrimSpace(strings.Join(parts, " "))
	} else {
		tr.Text = strings.TrimSpace(vr.Text)
	}
	return tr
}
