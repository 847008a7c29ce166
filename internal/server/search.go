package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/internal/common"
)

// SearchFace runs a similarity search for the face in an uploaded image.
// Threshold and limit fall back to the service defaults when omitted.
func (s *Server) SearchFace(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		s.respondError(c, common.InvalidArgumentError("image is required"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	ext := constants.NormalizeExt(filepath.Ext(header.Filename))
	if constants.MapExtToKind(ext) != constants.IMAGE {
		s.respondError(c, common.InvalidArgumentError("query image must be jpg, jpeg, or png"))
		return
	}

	var threshold float64
	if v := c.PostForm("threshold"); v != "" {
		threshold, err = strconv.ParseFloat(v, 64)
		if err != nil || threshold < 0 || threshold > 1 {
			s.respondError(c, common.InvalidArgumentError("threshold must be a number in [0,1]"))
			return
		}
	}
	var limit int
	if v := c.PostForm("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			s.respondError(c, common.InvalidArgumentError("limit must be a non-negative integer"))
			return
		}
	}

	path, cleanup, err := saveQueryImage(file, ext)
	if err != nil {
		s.respondError(c, fmt.Errorf("store query image: %w", err))
		return
	}
	defer cleanup()

	res, err := s.Searcher.SearchByFace(c.Request.Context(), path, threshold, limit)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type textSearchRequest struct {
	Query string `json:"query"`
	Scope string `json:"scope"`
	Limit int    `json:"limit"`
}

// SearchText runs a ranked text search over extracted text and structured
// fields.
func (s *Server) SearchText(c *gin.Context) {
	var req textSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, common.InvalidArgumentError("invalid request body"))
		return
	}

	res, err := s.Searcher.SearchByText(c.Request.Context(), req.Query, req.Scope, req.Limit)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// saveQueryImage spools the uploaded query image to a temp file so the face
// engine can read it by path. The caller removes it when done.
func saveQueryImage(file multipart.File, ext string) (string, func(), error) {
	tmp, err := os.CreateTemp("", "scanvault-query-*."+ext)
	if err != nil {
		return "", nil, err
	}
	name := tmp.Name()
	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return "", nil, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return "", nil, err
	}
	return name, func() { _ = os.Remove(name) }, nil
}
