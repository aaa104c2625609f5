// Package mimetype maps filenames to MIME types by extension.
package mimetype

import (
	"mime"
	"strings"

	"filebridge/internal/pathutil"
)

// DefaultType is returned when no MIME type can be inferred.
const DefaultType = "application/octet-stream"

// fallbackTypes covers common extensions the host registry may not know.
//
//nolint:gochecknoglobals // Package-level lookup table
var fallbackTypes = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".csv":  "text/csv",
	".html": "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".json": "application/json",
	".xml":  "application/xml",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".mp4":  "video/mp4",
	".wasm": "application/wasm",
	".bin":  "application/octet-stream",
}

// ByFilename infers a MIME type from the filename extension. Parameters such
// as charset are stripped; unknown extensions yield DefaultType.
func ByFilename(filename string) string {
	ext := strings.ToLower(pathutil.ExtName(filename))
	if ext == "" {
		return DefaultType
	}

	if t := mime.TypeByExtension(ext); t != "" {
		if idx := strings.Index(t, ";"); idx != -1 {
			t = strings.TrimSpace(t[:idx])
		}
		return t
	}

	if t, ok := fallbackTypes[ext]; ok {
		return t
	}
	return DefaultType
}
