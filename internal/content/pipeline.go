// Package content implements the fetch/normalize pipeline for the site's
// read-only content resources. One generic pipeline serves every resource,
// parameterized by a declarative descriptor: collection path, publish-flag
// filter, order sort, and a field map into the view model. Any failure
// degrades to the resource's static fallback collection; failures are
// logged and never surfaced.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"

	"go.uber.org/zap"

	"github.com/nepalailab/labsite/internal/httpapi"
	"github.com/nepalailab/labsite/pkg/types"
)

// ErrPostNotFound is returned by BlogPostBySlug when no published post has
// the requested slug. A slug miss is a state, not a failure.
var ErrPostNotFound = errors.New("blog post not found")

// errBadShape marks response bodies that are neither a sequence nor a
// paginated envelope.
var errBadShape = errors.New("response body is not a sequence or envelope")

// Pipeline fetches and normalizes content collections.
type Pipeline struct {
	client *httpapi.Client
	media  *Resolver
	log    *zap.Logger
}

// NewPipeline creates a Pipeline over the given client. A nil logger
// disables diagnostics.
func NewPipeline(client *httpapi.Client, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		client: client,
		media:  NewResolver(client.Origin()),
		log:    logger,
	}
}

// record is one raw backend object before field mapping.
type record map[string]any

// str returns the string value for key, or "" when absent or non-string.
func (r record) str(key string) string {
	s, _ := r[key].(string)
	return s
}

// num returns the numeric value for key, or 0. JSON numbers decode as
// float64.
func (r record) num(key string) float64 {
	n, _ := r[key].(float64)
	return n
}

// id returns the integer value for key, or 0.
func (r record) id(key string) int {
	return int(r.num(key))
}

// flag returns the boolean value for key, or false.
func (r record) flag(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// descriptor is the declarative configuration for one resource type.
type descriptor[T any] struct {
	// path is the collection endpoint relative to the API base URL.
	path string

	// flagKey names the publish/active gate. Empty means the resource
	// has no gate and every item is exposed.
	flagKey string

	// orderKey names the integer sort field. Empty means arrival order.
	orderKey string

	// transform maps one raw record to the view model. Media rewriting
	// happens here, through the resolver.
	transform func(rec record, media *Resolver) T

	// fallback is the static collection substituted in its entirety when
	// any pipeline step fails.
	fallback []T
}

// unwrap extracts the collection from a response body: a raw sequence is
// used as-is, an envelope object contributes its results field, and
// anything else fails with errBadShape. A JSON null decodes without error
// into a nil slice, so both branches require a non-nil result to tell an
// absent collection from an empty one.
func unwrap(data []byte) ([]record, error) {
	var seq []record
	if err := json.Unmarshal(data, &seq); err == nil && seq != nil {
		return seq, nil
	}

	var envelope struct {
		Results []record `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results, nil
	}

	return nil, errBadShape
}

// collect fetches and unwraps one collection.
func (p *Pipeline) collect(ctx context.Context, path string) ([]record, error) {
	resp, err := p.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	recs, err := unwrap(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// fetch runs the full pipeline for one resource: collect, gate, sort,
// transform. On any failure the descriptor's fallback is returned whole;
// live and fallback data are never mixed.
func fetch[T any](ctx context.Context, p *Pipeline, d descriptor[T]) []T {
	recs, err := p.collect(ctx, d.path)
	if err != nil {
		p.log.Warn("content fetch failed, serving fallback",
			zap.String("path", d.path),
			zap.Error(err))
		return append([]T(nil), d.fallback...)
	}

	if d.flagKey != "" {
		kept := recs[:0]
		for _, rec := range recs {
			if rec.flag(d.flagKey) {
				kept = append(kept, rec)
			}
		}
		recs = kept
	}

	if d.orderKey != "" {
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].num(d.orderKey) < recs[j].num(d.orderKey)
		})
	}

	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		out = append(out, d.transform(rec, p.media))
	}
	return out
}

// Carousel returns the active hero slides in display order.
func (p *Pipeline) Carousel(ctx context.Context) []types.Slide {
	return fetch(ctx, p, carouselResource)
}

// Products returns the product collection.
func (p *Pipeline) Products(ctx context.Context) []types.Product {
	return fetch(ctx, p, productsResource)
}

// Services returns the offered services.
func (p *Pipeline) Services(ctx context.Context) []types.Service {
	return fetch(ctx, p, servicesResource)
}

// Team returns the team member profiles.
func (p *Pipeline) Team(ctx context.Context) []types.TeamMember {
	return fetch(ctx, p, teamResource)
}

// Testimonials returns the community feedback entries.
func (p *Pipeline) Testimonials(ctx context.Context) []types.Testimonial {
	return fetch(ctx, p, testimonialsResource)
}

// TechStack returns the technology entries in display order.
func (p *Pipeline) TechStack(ctx context.Context) []types.TechEntry {
	return fetch(ctx, p, techResource)
}

// Partners returns the partner organizations.
func (p *Pipeline) Partners(ctx context.Context) []types.Partner {
	return fetch(ctx, p, partnersResource)
}

// Insights returns the research article teasers.
func (p *Pipeline) Insights(ctx context.Context) []types.Insight {
	return fetch(ctx, p, insightsResource)
}

// BlogPosts returns the published blog posts.
func (p *Pipeline) BlogPosts(ctx context.Context) []types.BlogPost {
	return fetch(ctx, p, blogResource)
}

// BlogPostBySlug looks up one post through a filtered fetch and takes the
// first match. It returns ErrPostNotFound when no post matches; fetch
// failures are returned as-is, without a fallback.
func (p *Pipeline) BlogPostBySlug(ctx context.Context, slug string) (types.BlogPost, error) {
	path := blogResource.path + "?slug=" + url.QueryEscape(slug)
	recs, err := p.collect(ctx, path)
	if err != nil {
		return types.BlogPost{}, err
	}
	if len(recs) == 0 {
		return types.BlogPost{}, ErrPostNotFound
	}
	return blogResource.transform(recs[0], p.media), nil
}
