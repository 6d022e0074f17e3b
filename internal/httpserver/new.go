package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"transcript-tasks/internal/middleware"
	pipelineHTTP "transcript-tasks/internal/pipeline/delivery/http"
	"transcript-tasks/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Pipeline domain
	pipelineHandler pipelineHTTP.Handler
	middleware      middleware.Middleware
	integrations    map[string]bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PipelineHandler pipelineHTTP.Handler
	Middleware      middleware.Middleware

	// Integrations reports which optional collaborators are wired, for /ready.
	Integrations map[string]bool
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		pipelineHandler: cfg.PipelineHandler,
		middleware:      cfg.Middleware,
		integrations:    cfg.Integrations,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.pipelineHandler == nil {
		return errors.New("pipeline handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
