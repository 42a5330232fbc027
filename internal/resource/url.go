// Package resource rewrites stored image paths into public URLs.
package resource

import "strings"

// Storage types.
const (
	StorageLocal = "local"
	StorageOSS   = "oss"
)

// Resolver maps relative resource paths onto the base URL of the active
// storage backend.
type Resolver struct {
	StorageType  string
	LocalBaseURL string
	OSSBaseURL   string
}

// BaseURL returns the base URL for the configured storage type.
func (r Resolver) BaseURL() string {
	if r.StorageType == StorageOSS {
		return r.OSSBaseURL
	}
	return r.LocalBaseURL
}

// Resolve returns path as a public URL. Empty stays empty and absolute
// http(s) URLs are returned unchanged.
func (r Resolver) Resolve(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := strings.TrimSuffix(r.BaseURL(), "/")
	if base == "" {
		return path
	}
	return base + "/" + strings.TrimPrefix(path, "/")
}

