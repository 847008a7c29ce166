package constants

import "strings"

// FileKind is the coarse source type stored on a document.
type FileKind string

const (
	PDF   FileKind = "PDF"
	IMAGE FileKind = "IMAGE"
)

// FileKinds holds the allowed values for the file_kind field in Document.
var FileKinds = []string{string(PDF), string(IMAGE)}

// AllowedExtensions holds the file extensions accepted for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToKind maps a normalized extension to its file kind, or "" if unsupported.
func MapExtToKind(ext string) FileKind {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png":
		return IMAGE
	}
	return ""
}
