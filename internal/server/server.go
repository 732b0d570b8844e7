// Package server exposes the scoring pipeline over HTTP: a health check, a
// JSON score endpoint, a query-parameter score endpoint, a multipart
// file-upload score endpoint and language detection. It is a thin adapter;
// every endpoint ends up calling the orchestrator with two plain-text
// strings.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/baauozar/cvmatch/internal/config"
	"github.com/baauozar/cvmatch/internal/extract"
	"github.com/baauozar/cvmatch/internal/language"
	"github.com/baauozar/cvmatch/internal/scoring"
	"github.com/baauozar/cvmatch/internal/semantic"
)

// maxUploadBytes caps multipart uploads.
const maxUploadBytes = 25 << 20

// Server is the HTTP front of the scoring service.
type Server struct {
	engine       *gin.Engine
	httpServer   *http.Server
	orchestrator *scoring.Orchestrator
	extractor    *extract.Extractor
	detector     *language.Detector
	log          *zap.Logger
	addr         string
}

// New wires the pipeline from configuration and registers all routes.
func New(cfg *config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	sidecar := semantic.NewClient(cfg.Semantic.BaseURL, cfg.Semantic.Timeout, log)

	s := &Server{
		orchestrator: scoring.NewDefault(cfg, log),
		extractor:    extract.NewExtractor(sidecar, log),
		detector:     language.NewDetector(cfg.Lexicons.TurkishHints, cfg.Lexicons.EnglishHints),
		log:          log,
		addr:         cfg.Server.Address(),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(log))
	engine.MaxMultipartMemory = maxUploadBytes

	s.registerRoutes(engine)
	s.engine = engine
	return s
}

func (s *Server) registerRoutes(engine *gin.Engine) {
	api := engine.Group("/api/v1")
	{
		api.GET("/health", s.handleHealth)
		api.POST("/score", s.handleScoreJSON)
		api.GET("/score", s.handleScoreQuery)
		api.POST("/score/file", s.handleScoreFile)
		api.POST("/detect-language", s.handleDetectLanguageJSON)
		api.GET("/detect-language", s.handleDetectLanguageQuery)
	}
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.log.Info("server listening", zap.String("addr", s.addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
