package http

import (
	"github.com/gin-gonic/gin"

	"transcript-tasks/internal/pipeline"
	"transcript-tasks/pkg/log"
)

const defaultMaxUploadBytes = 512 << 20

// Handler is the public interface for the pipeline HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	FileIssues(c *gin.Context)
	ProcessRecording(c *gin.Context)
}

// Config tunes recording uploads.
type Config struct {
	MaxUploadBytes int64
	UploadDir      string // "" means os.TempDir()
}

type handler struct {
	l              log.Logger
	uc             pipeline.UseCase
	maxUploadBytes int64
	uploadDir      string
}

// New creates a new HTTP handler for the pipeline domain.
func New(l log.Logger, uc pipeline.UseCase, cfg Config) Handler {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: cfg.MaxUploadBytes,
		uploadDir:      cfg.UploadDir,
	}
}
