package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/gen/ent"
	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/entity"
	"github.com/scanworks/scanvault/internal/utils"
)

// UploadDocument accepts a multipart file, registers it, and queues a
// processing run. A known fingerprint returns the existing document with
// duplicate=true and queues nothing.
func (s *Server) UploadDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		s.respondError(c, common.InvalidArgumentError("file is required"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	ctx := c.Request.Context()
	res, err := s.Ingestor.IngestUpload(ctx, header.Filename, file)
	if err != nil {
		s.respondError(c, err)
		return
	}

	row, err := s.Documents.GetByID(ctx, res.DocumentID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if res.Deduplicated {
		s.Logger.Info("server.upload.duplicate", "document_id", res.DocumentID, "hash", res.HashHex)
		c.JSON(http.StatusOK, gin.H{"document": utils.ToDocument(row), "duplicate": true})
		return
	}

	if err := s.Dispatcher.Dispatch(ctx, res.DocumentID); err != nil {
		s.respondError(c, err)
		return
	}

	s.Logger.Info("server.upload.accepted", "document_id", res.DocumentID, "filename", res.Filename)
	c.JSON(http.StatusAccepted, gin.H{"document": utils.ToDocument(row), "duplicate": false})
}

// ListDocuments returns a page of documents, newest first.
func (s *Server) ListDocuments(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !validStatusFilter(status) {
		s.respondError(c, common.InvalidArgumentErrorf("unknown status %q", status))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, total, err := s.Documents.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		s.respondError(c, err)
		return
	}

	out := make([]entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, *utils.ToDocument(row))
	}
	c.JSON(http.StatusOK, gin.H{
		"data": out,
		"pagination": gin.H{
			"total":  total,
			"limit":  limit,
			"offset": offset,
		},
	})
}

// GetDocument returns the document with its attempts, structured fields,
// faces, and failure log.
func (s *Server) GetDocument(c *gin.Context) {
	id, ok := s.documentID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	row, err := s.Documents.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		s.respondError(c, common.NotFoundError("document not found"))
		return
	}
	if err != nil {
		s.respondError(c, err)
		return
	}

	detail := entity.DocumentDetail{
		Document: *utils.ToDocument(row),
		Attempts: []entity.Attempt{},
		Faces:    []entity.Face{},
		Failures: []entity.Failure{},
	}

	attempts, err := s.Attempts.ListForDocument(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	for _, a := range attempts {
		detail.Attempts = append(detail.Attempts, *utils.ToAttempt(a))
	}

	if row.HasStructuredFields {
		f, err := s.Fields.GetForDocument(ctx, id)
		if err != nil && !ent.IsNotFound(err) {
			s.respondError(c, err)
			return
		}
		if err == nil {
			detail.Fields = utils.ToStructuredFields(f)
		}
	}

	faces, err := s.Faces.ListForDocument(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	for _, f := range faces {
		detail.Faces = append(detail.Faces, *utils.ToFace(f))
	}

	failures, err := s.Failures.ListForDocument(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	for _, f := range failures {
		detail.Failures = append(detail.Failures, *utils.ToFailure(f))
	}

	c.JSON(http.StatusOK, detail)
}

// DeleteDocument removes the document, every row it owns, and its index
// entries. Index cleanup failures are logged and do not block the delete;
// the index is rebuilt from the store on reprocess.
func (s *Server) DeleteDocument(c *gin.Context) {
	id, ok := s.documentID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := s.Documents.GetByID(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			s.respondError(c, common.NotFoundError("document not found"))
			return
		}
		s.respondError(c, err)
		return
	}

	if s.Index != nil {
		if err := s.Index.DeleteDocumentFaces(ctx, id); err != nil {
			s.Logger.Warn("server.delete.face_index", "document_id", id, "error", err)
		}
		if err := s.Index.DeleteDocument(ctx, id); err != nil {
			s.Logger.Warn("server.delete.document_index", "document_id", id, "error", err)
		}
	}

	if err := s.Documents.Delete(ctx, id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReprocessDocument queues another run for an existing document. The run
// replaces earlier outputs instead of appending to them.
func (s *Server) ReprocessDocument(c *gin.Context) {
	id, ok := s.documentID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := s.Documents.GetByID(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			s.respondError(c, common.NotFoundError("document not found"))
			return
		}
		s.respondError(c, err)
		return
	}

	if err := s.Dispatcher.Dispatch(ctx, id); err != nil {
		s.respondError(c, err)
		return
	}

	s.Logger.Info("server.reprocess.queued", "document_id", id)
	c.JSON(http.StatusAccepted, gin.H{"document_id": id, "queued": true})
}

func (s *Server) documentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		s.respondError(c, common.InvalidArgumentError("document id must be a positive integer"))
		return 0, false
	}
	return id, true
}

func validStatusFilter(s string) bool {
	for _, v := range constants.ProcessingStatuses {
		if s == v {
			return true
		}
	}
	return false
}
