package models

// SocialPlatforms lists the platform identifiers offered by the social links
// editor, in cycling order.
var SocialPlatforms = []string{"github", "linkedin", "twitter", "instagram", "youtube", "facebook", "globe", "link"}

// SocialLink is one entry of the contact section's "socialLinks" array.
type SocialLink struct {
	ID       int64  `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}
