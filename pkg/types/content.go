package types

// Slide is one hero carousel entry. Only active slides are exposed,
// ordered ascending by the backend's order field.
type Slide struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Caption string `json:"caption"`
	Image   string `json:"image"`
	LinkURL string `json:"link_url"`
}

// Product is a lab product or project.
type Product struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description,omitempty"`
	Image           string   `json:"image,omitempty"`
	GithubURL       string   `json:"github_url,omitempty"`
	DemoURL         string   `json:"demo_url,omitempty"`
	DemoVideoURL    string   `json:"demo_video_url,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
}

// Service is an offered service with a display icon resolved through
// IconForName.
type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        Icon   `json:"icon"`
}

// TeamMember is one member profile.
type TeamMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Bio         string `json:"bio"`
	Image       string `json:"image,omitempty"`
	GithubURL   string `json:"github_url,omitempty"`
	LinkedinURL string `json:"linkedin_url,omitempty"`
}

// Testimonial is one piece of community feedback.
type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company,omitempty"`
	Feedback string `json:"feedback"`
	Avatar   string `json:"avatar,omitempty"`
}

// TechEntry is one technology in the stack, grouped by category.
type TechEntry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Partner is one partner organization.
type Partner struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Logo       string `json:"logo"`
	WebsiteURL string `json:"website_url,omitempty"`
}

// Insight is a research article teaser.
type Insight struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Image    string `json:"image,omitempty"`
}

// BlogPost is a published blog entry. Excerpt falls back to the first
// 150 characters of Content, Author to the organization name, and
// ReadTime is derived from the content word count.
type BlogPost struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content,omitempty"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	ReadTime string `json:"read_time"`
	Slug     string `json:"slug"`
	Tags     string `json:"tags,omitempty"`
}
