package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Pipeline
	Jira       JiraConfig
	Whisper    WhisperConfig
	Media      MediaConfig
	Extraction ExtractionConfig
	Pipeline   PipelineConfig

	// Optional integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
	MaxUploadMB     int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
	ClientTTLMin   int
}

type JiraConfig struct {
	URL        string
	Email      string
	APIToken   string
	ProjectKey string
	Timeout    time.Duration
}

// Configured reports whether all four credentials are present.
func (j JiraConfig) Configured() bool {
	return j.URL != "" && j.Email != "" && j.APIToken != "" && j.ProjectKey != ""
}

type WhisperConfig struct {
	BaseURL  string
	APIKey   string
	Model    string
	Language string
	Timeout  time.Duration
}

type MediaConfig struct {
	FFmpegPath string
	TmpDir     string
}

type ExtractionConfig struct {
	Timezone string
	Verbs    map[string][]string // language tag -> verbs, added to the defaults
	Names    []string            // added to the default names
}

type PipelineConfig struct {
	DedupTTL  time.Duration
	DedupSize int
	Timeout   time.Duration
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.HTTPServer.MaxUploadMB = viper.GetInt("http_server.max_upload_mb")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")
	cfg.RateLimit.ClientTTLMin = viper.GetInt("rate_limit.client_ttl_min")

	// Jira
	cfg.Jira.URL = viper.GetString("jira.url")
	cfg.Jira.Email = viper.GetString("jira.email")
	cfg.Jira.APIToken = viper.GetString("jira.api_token")
	cfg.Jira.ProjectKey = viper.GetString("jira.project_key")
	cfg.Jira.Timeout = viper.GetDuration("jira.timeout")
	if v := viper.GetString("jira_url"); v != "" {
		cfg.Jira.URL = v
	}
	if v := viper.GetString("jira_email"); v != "" {
		cfg.Jira.Email = v
	}
	if v := viper.GetString("jira_api"); v != "" {
		cfg.Jira.APIToken = v
	}
	if v := viper.GetString("jira_project"); v != "" {
		cfg.Jira.ProjectKey = v
	}

	// Speech recognition & media
	cfg.Whisper.BaseURL = viper.GetString("whisper.base_url")
	cfg.Whisper.APIKey = viper.GetString("whisper.api_key")
	cfg.Whisper.Model = viper.GetString("whisper.model")
	cfg.Whisper.Language = viper.GetString("whisper.language")
	cfg.Whisper.Timeout = viper.GetDuration("whisper.timeout")
	if v := viper.GetString("whisper_api_key"); v != "" {
		cfg.Whisper.APIKey = v
	}
	cfg.Media.FFmpegPath = viper.GetString("media.ffmpeg_path")
	cfg.Media.TmpDir = viper.GetString("media.tmp_dir")

	// Extraction
	cfg.Extraction.Timezone = viper.GetString("extraction.timezone")
	cfg.Extraction.Verbs = viper.GetStringMapStringSlice("extraction.verbs")
	cfg.Extraction.Names = splitList(viper.GetStringSlice("extraction.names"))

	// Pipeline
	cfg.Pipeline.DedupTTL = viper.GetDuration("pipeline.dedup_ttl")
	cfg.Pipeline.DedupSize = viper.GetInt("pipeline.dedup_size")
	cfg.Pipeline.Timeout = viper.GetDuration("pipeline.timeout")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	if v := viper.GetString("telegram_bot_token"); v != "" {
		cfg.Telegram.BotToken = v
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if v := viper.GetString("google_calendar_credentials"); v != "" {
		cfg.GoogleCalendar.CredentialsPath = v
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("http_server.max_upload_mb", 512)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.max_clients", 1000)
	viper.SetDefault("rate_limit.client_ttl_min", 5)

	viper.SetDefault("jira.timeout", "30s")
	viper.SetDefault("whisper.base_url", "https://api.openai.com")
	viper.SetDefault("whisper.model", "whisper-1")
	viper.SetDefault("whisper.language", "auto")
	viper.SetDefault("whisper.timeout", "30m")
	viper.SetDefault("media.ffmpeg_path", "ffmpeg")

	viper.SetDefault("extraction.timezone", "UTC")
	viper.SetDefault("pipeline.dedup_ttl", "0s")
	viper.SetDefault("pipeline.dedup_size", 4096)
	viper.SetDefault("pipeline.timeout", "45m")

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Pipeline.DedupTTL < 0 {
		return fmt.Errorf("pipeline.dedup_ttl must not be negative")
	}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required when a bot token is set")
	}
	return nil
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
