package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepalailab/labsite/internal/httpapi"
	"github.com/nepalailab/labsite/pkg/types"
)

// newTestPipeline serves the given body for every request.
func newTestPipeline(t *testing.T, status int, body string) *Pipeline {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	client := httpapi.New(httpapi.Config{BaseURL: srv.URL + "/api/"})
	return NewPipeline(client, nil)
}

func TestCarouselFiltersInactiveAndSorts(t *testing.T) {
	p := newTestPipeline(t, http.StatusOK, `[
		{"id": 3, "title": "Third", "is_active": true, "order": 5},
		{"id": 9, "title": "Hidden", "is_active": false, "order": 0},
		{"id": 1, "title": "First", "is_active": true, "order": 1},
		{"id": 2, "title": "Second", "is_active": true, "order": 1}
	]`)

	slides := p.Carousel(context.Background())

	require.Len(t, slides, 3)
	// Ascending by order; the two order=1 entries keep arrival order.
	assert.Equal(t, []int{1, 2, 3}, []int{slides[0].ID, slides[1].ID, slides[2].ID})
	for _, s := range slides {
		assert.NotEqual(t, "Hidden", s.Title)
	}
}

func TestCarouselUnwrapsPaginatedEnvelope(t *testing.T) {
	p := newTestPipeline(t, http.StatusOK, `{
		"count": 1,
		"next": null,
		"results": [{"id": 1, "title": "Enveloped", "is_active": true, "order": 1}]
	}`)

	slides := p.Carousel(context.Background())
	require.Len(t, slides, 1)
	assert.Equal(t, "Enveloped", slides[0].Title)
}

func TestCarouselRewritesRelativeMedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "is_active": true, "order": 1, "image": "/media/slide.png"},
			{"id": 2, "is_active": true, "order": 2, "image": "media/other.png"},
			{"id": 3, "is_active": true, "order": 3, "image": "https://cdn.example.com/x.png"},
			{"id": 4, "is_active": true, "order": 4}
		]`))
	}))
	t.Cleanup(srv.Close)
	p := NewPipeline(httpapi.New(httpapi.Config{BaseURL: srv.URL + "/api/"}), nil)

	slides := p.Carousel(context.Background())
	require.Len(t, slides, 4)
	assert.Equal(t, srv.URL+"/media/slide.png", slides[0].Image)
	assert.Equal(t, srv.URL+"/media/other.png", slides[1].Image)
	assert.Equal(t, "https://cdn.example.com/x.png", slides[2].Image)
	assert.Equal(t, defaultSlideImage, slides[3].Image)

	for _, s := range slides {
		assert.True(t, s.Image == defaultSlideImage ||
			s.Image[:4] == "http", "media reference must be absolute: %s", s.Image)
	}
}

func TestFallbackOnFailure(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"detail":"down"}`},
		{name: "non-sequence body", status: http.StatusOK, body: `{"count": 0}`},
		{name: "non-JSON body", status: http.StatusOK, body: `<html></html>`},
		{name: "null body", status: http.StatusOK, body: `null`},
		{name: "null results field", status: http.StatusOK, body: `{"results": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPipeline(t, tt.status, tt.body)
			slides := p.Carousel(context.Background())
			assert.Equal(t, fallbackSlides, slides, "fallback must be served whole")
		})
	}
}

func TestFallbackOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	p := NewPipeline(httpapi.New(httpapi.Config{BaseURL: srv.URL + "/api/"}), nil)

	assert.Equal(t, fallbackBlogPosts, p.BlogPosts(context.Background()))
	assert.Equal(t, fallbackServices, p.Services(context.Background()))
	assert.Equal(t, fallbackTeam, p.Team(context.Background()))
	assert.Equal(t, fallbackTestimonials, p.Testimonials(context.Background()))
	assert.Equal(t, fallbackTech, p.TechStack(context.Background()))
	assert.Equal(t, fallbackPartners, p.Partners(context.Background()))
	assert.Equal(t, fallbackInsights, p.Insights(context.Background()))
	assert.Equal(t, fallbackProducts, p.Products(context.Background()))
	assert.Equal(t, fallbackSlides, p.Carousel(context.Background()))
}

func TestEmptyCollectionIsNotFallback(t *testing.T) {
	p := newTestPipeline(t, http.StatusOK, `[]`)
	slides := p.Carousel(context.Background())
	assert.Empty(t, slides, "an empty live collection must not substitute the fallback")
}

func TestBlogPostNormalization(t *testing.T) {
	longContent := ""
	for i := 0; i < 600; i++ {
		longContent += "word "
	}

	p := newTestPipeline(t, http.StatusOK, `[{
		"id": 7,
		"title": "Test Post",
		"content": "`+longContent+`",
		"tags": "Machine Learning, NLP",
		"published_at": "2026-01-15T10:00:00Z",
		"is_published": true,
		"slug": "test-post"
	}]`)

	posts := p.BlogPosts(context.Background())
	require.Len(t, posts, 1)

	post := posts[0]
	assert.Equal(t, "3 min read", post.ReadTime)
	assert.Equal(t, "Machine Learning", post.Category)
	assert.Equal(t, "Nepal AI Lab", post.Author, "missing author falls back to the organization name")
	assert.Equal(t, "January 15, 2026", post.Date)
	assert.Len(t, post.Excerpt, 150, "missing excerpt is cut from content")
	assert.Equal(t, defaultBlogImage, post.Image)
}

func TestBlogPostsFilterUnpublished(t *testing.T) {
	p := newTestPipeline(t, http.StatusOK, `[
		{"id": 1, "title": "Live", "content": "x", "is_published": true},
		{"id": 2, "title": "Draft", "content": "x", "is_published": false},
		{"id": 3, "title": "Unflagged", "content": "x"}
	]`)

	posts := p.BlogPosts(context.Background())
	require.Len(t, posts, 1)
	assert.Equal(t, "Live", posts[0].Title)
}

func TestBlogPostBySlug(t *testing.T) {
	t.Run("first match wins", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "getting-started", r.URL.Query().Get("slug"))
			w.Write([]byte(`[
				{"id": 1, "title": "Match", "content": "x", "slug": "getting-started"},
				{"id": 2, "title": "Shadowed", "content": "x", "slug": "getting-started"}
			]`))
		}))
		t.Cleanup(srv.Close)
		p := NewPipeline(httpapi.New(httpapi.Config{BaseURL: srv.URL + "/api/"}), nil)

		post, err := p.BlogPostBySlug(context.Background(), "getting-started")
		require.NoError(t, err)
		assert.Equal(t, "Match", post.Title)
	})

	t.Run("zero matches is not found, not an error", func(t *testing.T) {
		p := newTestPipeline(t, http.StatusOK, `[]`)
		_, err := p.BlogPostBySlug(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("server failure surfaces as error", func(t *testing.T) {
		p := newTestPipeline(t, http.StatusInternalServerError, `{}`)
		_, err := p.BlogPostBySlug(context.Background(), "any")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPostNotFound)
	})
}

func TestServicesIconMapping(t *testing.T) {
	p := newTestPipeline(t, http.StatusOK, `[
		{"id": 1, "title": "Research", "icon_name": "Brain"},
		{"id": 2, "title": "Mystery", "icon_name": "NoSuchIcon"}
	]`)

	services := p.Services(context.Background())
	require.Len(t, services, 2)
	assert.Equal(t, types.IconBrain, services[0].Icon)
	assert.Equal(t, types.IconActivity, services[1].Icon, "unrecognized icon names map to the default")
}

func TestProductsTechnologiesSplit(t *testing.T) {
	p := newTestPipeline(t, http.StatusOK, `[
		{"id": 1, "name": "OCR", "technologies_used": "PyTorch, FastAPI, , React "}
	]`)

	products := p.Products(context.Background())
	require.Len(t, products, 1)
	assert.Equal(t, []string{"PyTorch", "FastAPI", "React"}, products[0].Technologies)
}
