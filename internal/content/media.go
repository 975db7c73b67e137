package content

import "strings"

// Resolver rewrites media references to absolute URLs. It is the single
// point responsible for the relative-to-absolute rewrite: every media field
// exposed by the pipeline passes through Resolve.
type Resolver struct {
	origin string
}

// NewResolver creates a Resolver for the given origin. The origin is the
// API base URL with its API path suffix stripped, no trailing slash.
func NewResolver(origin string) *Resolver {
	return &Resolver{origin: strings.TrimRight(origin, "/")}
}

// Resolve returns an absolute URL for the reference. Empty references
// resolve to the fallback, absolute references pass through unchanged, and
// relative paths are joined to the origin with exactly one separating slash.
func (r *Resolver) Resolve(ref, fallback string) string {
	if ref == "" {
		return fallback
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return r.origin + "/" + strings.TrimLeft(ref, "/")
}
