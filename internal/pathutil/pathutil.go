// Package pathutil provides pure path string helpers tolerant of both
// forward- and back-slash separators, plus filename sanitization.
package pathutil

import (
	"path"
	"regexp"
	"strings"
)

// normalize rewrites backslash separators so the slash-based path helpers
// behave the same for Windows-style inputs.
func normalize(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// ExtName returns the file extension including the leading dot, or the
// empty string when there is none.
func ExtName(p string) string {
	return path.Ext(normalize(p))
}

// BaseName returns the last element of the path.
func BaseName(p string) string {
	return path.Base(normalize(p))
}

// DirName returns all but the last element of the path.
func DirName(p string) string {
	return path.Dir(normalize(p))
}

// Filename sanitization utilities

var (
	invalidChars        = regexp.MustCompile(`[<>:"/\\|?*]`)
	multipleUnderscores = regexp.MustCompile(`_+`)
)

// SanitizeFilename removes or replaces invalid characters from filenames
func SanitizeFilename(filename string) string {
	// Replace invalid characters with underscores
	sanitized := invalidChars.ReplaceAllString(filename, "_")

	// Remove consecutive underscores
	sanitized = multipleUnderscores.ReplaceAllString(sanitized, "_")

	// Trim underscores from start and end
	sanitized = strings.Trim(sanitized, "_")

	// Ensure filename is not empty
	if sanitized == "" {
		sanitized = "unnamed"
	}

	return sanitized
}
