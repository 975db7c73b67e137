package content

import "github.com/nepalailab/labsite/pkg/types"

// Static fallback collections, served whole when a fetch fails. The
// pipeline never mixes these with live data.

var fallbackSlides = []types.Slide{
	{
		ID:      1,
		Title:   "AI Research Hub",
		Caption: "Pioneering AI research in Nepal with cutting-edge projects",
		Image:   "https://images.unsplash.com/photo-1677442136019-21780ecad995?q=80&w=2070&auto=format&fit=crop",
		LinkURL: "#research",
	},
	{
		ID:      2,
		Title:   "Open Source Community",
		Caption: "Join 50+ contributors building the future of AI together",
		Image:   "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?q=80&w=2074&auto=format&fit=crop",
		LinkURL: "#community",
	},
	{
		ID:      3,
		Title:   "Machine Learning Projects",
		Caption: "Real-world applications solving Nepalese challenges",
		Image:   "https://images.unsplash.com/photo-1555949963-aa79dcee981c?q=80&w=2070&auto=format&fit=crop",
		LinkURL: "#projects",
	},
}

var fallbackProducts = []types.Product{
	{
		ID:           1,
		Name:         "Nepali OCR",
		Description:  "Optical character recognition tuned for Devanagari script.",
		Technologies: []string{"PyTorch", "FastAPI"},
	},
	{
		ID:           2,
		Name:         "Krishi Sathi",
		Description:  "Crop advisory assistant for Nepali farmers.",
		Technologies: []string{"TensorFlow", "React"},
	},
}

var fallbackServices = []types.Service{
	{
		ID:          1,
		Title:       "AI Research",
		Description: "Applied research on language, vision, and speech for Nepali contexts.",
		Icon:        types.IconBrain,
	},
	{
		ID:          2,
		Title:       "Custom Development",
		Description: "Machine learning systems built end to end for your organization.",
		Icon:        types.IconCode,
	},
	{
		ID:          3,
		Title:       "Data Engineering",
		Description: "Pipelines and datasets that make local-language AI possible.",
		Icon:        types.IconDatabase,
	},
	{
		ID:          4,
		Title:       "Training & Workshops",
		Description: "Hands-on AI training for students, teams, and institutions.",
		Icon:        types.IconUsers,
	},
}

var fallbackTeam = []types.TeamMember{
	{ID: 1, Name: "Dr. Ramesh Singh", Role: "Research Lead", Bio: "Leads the lab's machine learning research."},
	{ID: 2, Name: "Priya Sharma", Role: "Open Source Lead", Bio: "Coordinates community contributions and projects."},
	{ID: 3, Name: "Amit Kumar", Role: "ML Engineer", Bio: "Builds and ships the lab's production models."},
}

var fallbackTestimonials = []types.Testimonial{
	{
		ID:       1,
		Name:     "Sita Adhikari",
		Role:     "Researcher",
		Company:  "Tribhuvan University",
		Feedback: "Nepal AI Lab gave our research group the tools and mentorship to publish our first paper.",
	},
	{
		ID:       2,
		Name:     "Bikash Thapa",
		Role:     "CTO",
		Company:  "Himalaya Tech",
		Feedback: "Their team delivered a production-ready model in weeks, not months.",
	},
}

var fallbackTech = []types.TechEntry{
	{ID: 1, Name: "Python", Category: "Languages"},
	{ID: 2, Name: "PyTorch", Category: "Frameworks"},
	{ID: 3, Name: "TensorFlow", Category: "Frameworks"},
	{ID: 4, Name: "Docker", Category: "Infrastructure"},
	{ID: 5, Name: "Kubernetes", Category: "Infrastructure"},
}

var fallbackPartners = []types.Partner{
	{ID: 1, Name: "Kathmandu University", WebsiteURL: "https://ku.edu.np"},
	{ID: 2, Name: "NAAMII", WebsiteURL: "https://www.naamii.org.np"},
}

var fallbackInsights = []types.Insight{
	{
		ID:       1,
		Title:    "Why Nepali NLP Needs Its Own Benchmarks",
		Summary:  "Translated benchmarks miss what makes Nepali hard. We propose a local evaluation suite.",
		Category: "Research",
		Author:   "Nepal AI Lab",
		Date:     "January 20, 2026",
	},
	{
		ID:       2,
		Title:    "Lessons from Deploying ML in Low-Connectivity Regions",
		Summary:  "What we learned shipping models to districts with intermittent power and bandwidth.",
		Category: "Engineering",
		Author:   "Nepal AI Lab",
		Date:     "January 6, 2026",
	},
}

var fallbackBlogPosts = []types.BlogPost{
	{
		ID:       1,
		Title:    "Getting Started with Machine Learning in Nepal",
		Excerpt:  "Learn the basics of machine learning and how to apply it to solve real-world problems in Nepal.",
		Category: "Machine Learning",
		Author:   "Dr. Ramesh Singh",
		Date:     "January 15, 2026",
		Image:    "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?q=80&w=2070&auto=format&fit=crop",
		ReadTime: "5 min read",
		Slug:     "getting-started-with-machine-learning-in-nepal",
	},
	{
		ID:       2,
		Title:    "Open Source Contributions: A Guide for Beginners",
		Excerpt:  "Step-by-step guide on how to contribute to open-source AI projects and build your portfolio.",
		Category: "Open Source",
		Author:   "Priya Sharma",
		Date:     "January 12, 2026",
		Image:    "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?q=80&w=2070&auto=format&fit=crop",
		ReadTime: "7 min read",
		Slug:     "open-source-contributions-a-guide-for-beginners",
	},
	{
		ID:       3,
		Title:    "Building Sustainable AI Solutions",
		Excerpt:  "Exploring the intersection of AI and sustainability in developing nations.",
		Category: "AI Research",
		Author:   "Amit Kumar",
		Date:     "January 10, 2026",
		Image:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=2070&auto=format&fit=crop",
		ReadTime: "8 min read",
		Slug:     "building-sustainable-ai-solutions",
	},
	{
		ID:       4,
		Title:    "AI in Healthcare: The Nepal Perspective",
		Excerpt:  "How artificial intelligence is revolutionizing healthcare delivery in Nepal.",
		Category: "AI Research",
		Author:   "Dr. Neha Desai",
		Date:     "January 8, 2026",
		Image:    "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?q=80&w=2070&auto=format&fit=crop",
		ReadTime: "6 min read",
		Slug:     "ai-in-healthcare-the-nepal-perspective",
	},
	{
		ID:       5,
		Title:    "Deep Learning: From Theory to Practice",
		Excerpt:  "Deep dive into neural networks and practical implementation strategies.",
		Category: "Machine Learning",
		Author:   "Sanjay Nath",
		Date:     "January 5, 2026",
		Image:    "https://images.unsplash.com/photo-1516321318423-f06f70504c4e?q=80&w=2070&auto=format&fit=crop",
		ReadTime: "10 min read",
		Slug:     "deep-learning-from-theory-to-practice",
	},
	{
		ID:       6,
		Title:    "Community Spotlight: Notable AI Projects",
		Excerpt:  "Celebrating the amazing projects and achievements from our community members.",
		Category: "Community",
		Author:   "Editorial Team",
		Date:     "January 1, 2026",
		Image:    "https://images.unsplash.com/photo-1552664730-d307ca884978?q=80&w=2070&auto=format&fit=crop",
		ReadTime: "4 min read",
		Slug:     "community-spotlight-notable-ai-projects",
	},
}
