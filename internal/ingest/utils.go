package ingest

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/scanworks/scanvault/constants"
)

// AllowedExt checks if a file extension is in the allowed set (defaults to pdf/jpg/jpeg/png).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// SniffKind maps the detected content type of a file header to a file kind.
// Returns "" when the content type is not one we recognize.
func SniffKind(header []byte) constants.FileKind {
	switch http.DetectContentType(header) {
	case "application/pdf":
		return constants.PDF
	case "image/jpeg", "image/png":
		return constants.IMAGE
	default:
		return ""
	}
}
