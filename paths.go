package filebridge

import "filebridge/internal/pathutil"

// Path string helpers, tolerant of both forward- and back-slash separators.

// ExtName returns the file extension including the leading dot.
func ExtName(p string) string {
	return pathutil.ExtName(p)
}

// BaseName returns the last element of the path.
func BaseName(p string) string {
	return pathutil.BaseName(p)
}

// DirName returns all but the last element of the path.
func DirName(p string) string {
	return pathutil.DirName(p)
}

// SanitizeFilename removes or replaces characters unsafe in filenames.
func SanitizeFilename(name string) string {
	return pathutil.SanitizeFilename(name)
}
