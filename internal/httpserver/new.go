package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"nextstep/internal/middleware"
	"nextstep/pkg/gemini"
	"nextstep/pkg/log"
	"nextstep/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	llm        gemini.IGemini
	scope      scope.Manager

	// Domain knobs
	chatMaxSessions  int
	detailsCacheSize int
	rateLimit        middleware.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB   *sql.DB
	Gemini       gemini.IGemini
	ScopeManager scope.Manager

	ChatMaxSessions  int
	DetailsCacheSize int
	RateLimit        middleware.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		postgresDB:       cfg.PostgresDB,
		llm:              cfg.Gemini,
		scope:            cfg.ScopeManager,
		chatMaxSessions:  cfg.ChatMaxSessions,
		detailsCacheSize: cfg.DetailsCacheSize,
		rateLimit:        cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

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
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.llm == nil {
		return errors.New("gemini client is required")
	}
	if srv.scope == nil {
		return errors.New("scope manager is required")
	}
	return nil
}
