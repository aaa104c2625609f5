package filebridge

import (
	"filebridge/internal/backend/browser"
	"filebridge/internal/config"
	"filebridge/internal/domain"
)

// Re-exported core types so callers never import internal packages.
type (
	Settings         = config.Settings
	Options          = domain.Options
	Envelope         = domain.Envelope
	Format           = domain.Format
	Strategy         = domain.Strategy
	Blob             = domain.Blob
	File             = domain.File
	BlobLike         = domain.BlobLike
	DownloadResource = domain.DownloadResource
	DownloadTrigger  = domain.DownloadTrigger
	TriggerFunc      = browser.TriggerFunc
)

// Canonical formats.
const (
	FormatText        = domain.FormatText
	FormatJSON        = domain.FormatJSON
	FormatBinary      = domain.FormatBinary
	FormatArrayBuffer = domain.FormatArrayBuffer
	FormatBlob        = domain.FormatBlob
)

// Backend strategies.
const (
	StrategyLocal   = domain.StrategyLocal
	StrategyBrowser = domain.StrategyBrowser
)

// DefaultSettings returns the baseline client settings.
func DefaultSettings() Settings {
	return config.Defaults()
}

// LoadSettings reads settings from FILEBRIDGE_* environment variables and
// the optional YAML config file.
func LoadSettings() (*Settings, error) {
	return config.Load()
}

// NewBlob creates an anonymous in-memory payload tagged with a MIME type.
func NewBlob(data []byte, mimeType string) *Blob {
	return domain.NewBlob(data, mimeType)
}

// NewFile creates a named in-memory payload.
func NewFile(data []byte, name, mimeType string) *File {
	return domain.NewFile(data, name, mimeType)
}
