package content

import "github.com/nepalailab/labsite/pkg/types"

// Default images used when the backend supplies no media reference.
const (
	defaultSlideImage = "https://images.unsplash.com/photo-1677442136019-21780ecad995?q=80&w=2070&auto=format&fit=crop"
	defaultBlogImage  = "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?q=80&w=2070&auto=format&fit=crop"
)

// carouselResource: active slides only, ascending order.
var carouselResource = descriptor[types.Slide]{
	path:     "carousel/",
	flagKey:  "is_active",
	orderKey: "order",
	transform: func(rec record, media *Resolver) types.Slide {
		title := rec.str("title")
		if title == "" {
			title = "Slide"
		}
		linkURL := rec.str("link_url")
		if linkURL == "" {
			linkURL = "#"
		}
		return types.Slide{
			ID:      rec.id("id"),
			Title:   title,
			Caption: rec.str("caption"),
			Image:   media.Resolve(rec.str("image"), defaultSlideImage),
			LinkURL: linkURL,
		}
	},
	fallback: fallbackSlides,
}

var productsResource = descriptor[types.Product]{
	path: "products/",
	transform: func(rec record, media *Resolver) types.Product {
		return types.Product{
			ID:              rec.id("id"),
			Name:            rec.str("name"),
			Description:     rec.str("description"),
			LongDescription: rec.str("long_description"),
			Image:           media.Resolve(rec.str("image_url"), ""),
			GithubURL:       rec.str("github_url"),
			DemoURL:         rec.str("demo_url"),
			DemoVideoURL:    rec.str("demo_video_url"),
			Technologies:    splitList(rec.str("technologies_used")),
		}
	},
	fallback: fallbackProducts,
}

var servicesResource = descriptor[types.Service]{
	path: "services/",
	transform: func(rec record, _ *Resolver) types.Service {
		return types.Service{
			ID:          rec.id("id"),
			Title:       rec.str("title"),
			Description: rec.str("description"),
			Icon:        types.IconForName(rec.str("icon_name")),
		}
	},
	fallback: fallbackServices,
}

var teamResource = descriptor[types.TeamMember]{
	path: "team-members/",
	transform: func(rec record, media *Resolver) types.TeamMember {
		return types.TeamMember{
			ID:          rec.id("id"),
			Name:        rec.str("name"),
			Role:        rec.str("role"),
			Bio:         rec.str("bio"),
			Image:       media.Resolve(rec.str("image_url"), ""),
			GithubURL:   rec.str("github_url"),
			LinkedinURL: rec.str("linkedin_url"),
		}
	},
	fallback: fallbackTeam,
}

var testimonialsResource = descriptor[types.Testimonial]{
	path: "testimonials/",
	transform: func(rec record, media *Resolver) types.Testimonial {
		return types.Testimonial{
			ID:       rec.id("id"),
			Name:     rec.str("name"),
			Role:     rec.str("role"),
			Company:  rec.str("company"),
			Feedback: rec.str("feedback"),
			Avatar:   media.Resolve(rec.str("avatar_url"), ""),
		}
	},
	fallback: fallbackTestimonials,
}

// techResource: ascending order, no publish gate.
var techResource = descriptor[types.TechEntry]{
	path:     "tech-stack/",
	orderKey: "order",
	transform: func(rec record, _ *Resolver) types.TechEntry {
		return types.TechEntry{
			ID:       rec.id("id"),
			Name:     rec.str("name"),
			Category: rec.str("category"),
		}
	},
	fallback: fallbackTech,
}

var partnersResource = descriptor[types.Partner]{
	path: "partners/",
	transform: func(rec record, media *Resolver) types.Partner {
		return types.Partner{
			ID:         rec.id("id"),
			Name:       rec.str("name"),
			Logo:       media.Resolve(rec.str("logo_url"), ""),
			WebsiteURL: rec.str("website_url"),
		}
	},
	fallback: fallbackPartners,
}

var insightsResource = descriptor[types.Insight]{
	path: "insights/",
	transform: func(rec record, media *Resolver) types.Insight {
		return types.Insight{
			ID:       rec.id("id"),
			Title:    rec.str("title"),
			Summary:  rec.str("summary"),
			Category: rec.str("category"),
			Author:   rec.str("author"),
			Date:     formatDate(rec.str("created_at")),
			Image:    media.Resolve(rec.str("image_url"), ""),
		}
	},
	fallback: fallbackInsights,
}

// blogResource: published posts only.
var blogResource = descriptor[types.BlogPost]{
	path:    "blog-posts/",
	flagKey: "is_published",
	transform: func(rec record, media *Resolver) types.BlogPost {
		content := rec.str("content")
		author := rec.str("author")
		if author == "" {
			author = defaultAuthor
		}
		return types.BlogPost{
			ID:       rec.id("id"),
			Title:    rec.str("title"),
			Excerpt:  excerptOf(rec.str("excerpt"), content),
			Content:  content,
			Category: firstTag(rec.str("tags"), "General"),
			Author:   author,
			Date:     formatDate(rec.str("published_at")),
			Image:    media.Resolve(rec.str("image_url"), defaultBlogImage),
			ReadTime: readTime(content),
			Slug:     rec.str("slug"),
			Tags:     rec.str("tags"),
		}
	},
	fallback: fallbackBlogPosts,
}
