package service

import (
	"net/url"
	"strings"
)

// DefaultImage is shown for businesses without a usable image.
const DefaultImage = "/static/images/default-business.svg"

// ImageResolver turns stored image references into browser URLs.
type ImageResolver struct {
	StorageBaseURL string
}

// Resolve returns an absolute URL as is, prefixes storage paths with the
// public object store URL and falls back to DefaultImage.
func (r ImageResolver) Resolve(path *string) string {
	if path == nil || strings.TrimSpace(*path) == "" {
		return DefaultImage
	}
	p := strings.TrimSpace(*path)

	if strings.HasPrefix(p, "http") {
		u, err := url.Parse(p)
		if err != nil || u.Host == "" {
			return DefaultImage
		}
		return p
	}

	base := strings.TrimRight(r.StorageBaseURL, "/")
	if base == "" {
		return DefaultImage
	}
	clean := strings.TrimPrefix(strings.TrimLeft(p, "/"), "storage/")
	return base + "/storage/v1/object/public/" + clean
}
