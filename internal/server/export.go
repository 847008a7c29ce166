package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scanworks/scanvault/internal/common"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportDocuments streams the document register as an XLSX workbook,
// optionally filtered by processing status.
func (s *Server) ExportDocuments(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !validStatusFilter(status) {
		s.respondError(c, common.InvalidArgumentErrorf("unknown status %q", status))
		return
	}

	data, err := s.Exporter.ExportDocumentsXLSX(c.Request.Context(), status)
	if err != nil {
		s.respondError(c, err)
		return
	}

	name := fmt.Sprintf("documents-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}
