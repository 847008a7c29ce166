// Package server exposes the HTTP API: document upload and lifecycle, face
// and text search, the XLSX register export, and health.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/export"
	"github.com/scanworks/scanvault/internal/index"
	"github.com/scanworks/scanvault/internal/ingest"
	"github.com/scanworks/scanvault/internal/queue"
	"github.com/scanworks/scanvault/internal/repository"
	"github.com/scanworks/scanvault/internal/search"
)

// HealthProbe reports whether one dependency answers.
type HealthProbe func(ctx context.Context) error

// Probes bundles the connectivity checks surfaced by /healthz. A nil probe
// is reported as skipped rather than failing.
type Probes struct {
	Store  HealthProbe
	Index  HealthProbe
	Broker HealthProbe
}

// Server wires the HTTP handlers to the services behind them.
type Server struct {
	Logger     *slog.Logger
	GinMode    string
	Ingestor   ingest.Ingestor
	Dispatcher queue.Dispatcher
	Documents  repository.DocumentRepository
	Attempts   repository.AttemptRepository
	Fields     repository.StructuredFieldsRepository
	Faces      repository.FaceRepository
	Failures   repository.FailureRepository
	Searcher   *search.Service
	Exporter   *export.Service
	Index      index.Writer // nil skips index cleanup on delete
	Probes     Probes
}

func New(
	logger *slog.Logger,
	ginMode string,
	ingestor ingest.Ingestor,
	dispatcher queue.Dispatcher,
	documents repository.DocumentRepository,
	attempts repository.AttemptRepository,
	fields repository.StructuredFieldsRepository,
	faces repository.FaceRepository,
	failures repository.FailureRepository,
	searcher *search.Service,
	exporter *export.Service,
	idx index.Writer,
	probes Probes,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		Logger:     logger,
		GinMode:    ginMode,
		Ingestor:   ingestor,
		Dispatcher: dispatcher,
		Documents:  documents,
		Attempts:   attempts,
		Fields:     fields,
		Faces:      faces,
		Failures:   failures,
		Searcher:   searcher,
		Exporter:   exporter,
		Index:      idx,
		Probes:     probes,
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	if s.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLog())

	r.GET("/healthz", s.Healthz)

	docs := r.Group("/documents")
	{
		docs.POST("", s.UploadDocument)
		docs.GET("", s.ListDocuments)
		docs.GET("/:id", s.GetDocument)
		docs.DELETE("/:id", s.DeleteDocument)
		docs.POST("/:id/reprocess", s.ReprocessDocument)
	}

	sr := r.Group("/search")
	{
		sr.POST("/face", s.SearchFace)
		sr.POST("/text", s.SearchText)
	}

	r.GET("/export/documents.xlsx", s.ExportDocuments)

	return r
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Request = c.Request.WithContext(common.WithRequestID(c.Request.Context(), requestID))
		c.Header("X-Request-ID", requestID)

		c.Next()

		s.Logger.Info("http.request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

// respondError maps an error onto its HTTP status and a JSON body.
func (s *Server) respondError(c *gin.Context, err error) {
	status := common.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed",
			"request_id", common.RequestIDFromContext(c.Request.Context()),
			"path", c.Request.URL.Path,
			"error", err)
	}

	var appErr *common.AppError
	if errors.As(err, &appErr) {
		c.JSON(status, gin.H{"error": appErr.Message, "code": appErr.Code})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
