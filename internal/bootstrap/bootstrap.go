// Package bootstrap turns configuration into a wired pipeline use case. Both
// the API server and the CLI start from here.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os/exec"

	"transcript-tasks/config"
	"transcript-tasks/internal/extraction"
	"transcript-tasks/internal/pipeline"
	"transcript-tasks/internal/pipeline/usecase"
	"transcript-tasks/pkg/datemath"
	"transcript-tasks/pkg/gcalendar"
	"transcript-tasks/pkg/jira"
	"transcript-tasks/pkg/log"
	"transcript-tasks/pkg/media"
	"transcript-tasks/pkg/telegram"
	"transcript-tasks/pkg/whisper"
)

// Integration names reported by Components.Integrations.
const (
	IntegrationJira     = "jira"
	IntegrationWhisper  = "whisper"
	IntegrationFFmpeg   = "ffmpeg"
	IntegrationCalendar = "google_calendar"
	IntegrationTelegram = "telegram"
)

// Components is the result of Build.
type Components struct {
	UseCase      pipeline.UseCase
	Integrations map[string]bool
}

// Build wires every collaborator named in cfg. Optional integrations that fail
// to initialise are logged and left out.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (Components, error) {
	integrations := map[string]bool{}

	// Date resolver
	resolver, err := datemath.NewResolver(cfg.Extraction.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Extraction.Timezone, err)
		resolver, _ = datemath.NewResolver("UTC")
	}
	l.Infof(ctx, "Date resolver ready: timezone=%s", resolver.Location())

	// Extractor
	vocab := extraction.DefaultVocabulary().Merge(extraction.Vocabulary{
		Verbs: cfg.Extraction.Verbs,
		Names: cfg.Extraction.Names,
	})
	extractor, err := extraction.New(vocab, resolver)
	if err != nil {
		return Components{}, fmt.Errorf("failed to build extractor: %w", err)
	}
	l.Infof(ctx, "Extractor ready: languages=%v names=%d", vocab.Languages(), len(vocab.Names))

	opts := usecase.Options{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		DedupTTL:   cfg.Pipeline.DedupTTL,
		DedupSize:  cfg.Pipeline.DedupSize,
		Timeout:    cfg.Pipeline.Timeout,
	}

	// Issue tracker (optional)
	if cfg.Jira.Configured() {
		client, jiraErr := jira.NewClient(jira.Credentials{
			BaseURL:    cfg.Jira.URL,
			Email:      cfg.Jira.Email,
			APIToken:   cfg.Jira.APIToken,
			ProjectKey: cfg.Jira.ProjectKey,
		}, jira.WithHTTPClient(&http.Client{Timeout: cfg.Jira.Timeout}))
		if jiraErr != nil {
			l.Warnf(ctx, "Jira not available: %v", jiraErr)
		} else {
			opts.Tracker = client
			opts.BrowseBaseURL = cfg.Jira.URL
			integrations[IntegrationJira] = true
			l.Infof(ctx, "Jira initialized: project=%s", client.ProjectKey())
		}
	} else {
		l.Warn(ctx, "Jira credentials not set: JIRA_URL, JIRA_EMAIL, JIRA_API, JIRA_PROJECT; issues will not be filed")
	}

	// Transcoding and speech recognition
	ffmpegPath := cfg.Media.FFmpegPath
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	opts.Transcoder = media.NewFFmpeg(ffmpegPath, cfg.Media.TmpDir)
	if _, lookErr := exec.LookPath(ffmpegPath); lookErr != nil {
		l.Warnf(ctx, "ffmpeg not found at %q, recordings will fail to transcode: %v", ffmpegPath, lookErr)
	} else {
		integrations[IntegrationFFmpeg] = true
	}
	transcriber := whisper.NewClient(cfg.Whisper.BaseURL, cfg.Whisper.APIKey, cfg.Whisper.Model, cfg.Whisper.Timeout)
	opts.Transcriber = transcriber
	integrations[IntegrationWhisper] = true
	l.Infof(ctx, "Whisper client ready: model=%s", transcriber.Model())

	// Google Calendar (optional)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			opts.Calendar = calendarClient
			integrations[IntegrationCalendar] = true
			l.Info(ctx, "Google Calendar initialized")
		}
	}

	// Telegram (optional)
	if cfg.Telegram.BotToken != "" {
		opts.Notifier = telegram.NewBot(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		integrations[IntegrationTelegram] = true
		l.Info(ctx, "Telegram notifications enabled")
	}

	return Components{
		UseCase:      usecase.New(l, extractor, opts),
		Integrations: integrations,
	}, nil
}
