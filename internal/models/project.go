package models

// Project represents a portfolio project record from data/projects.json
type Project struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	GitHub      string   `json:"github,omitempty"`
	Demo        string   `json:"demo,omitempty"`
}

// Summary returns the short text used for meta descriptions:
// the subtitle when present, otherwise the description
func (p Project) Summary() string {
	if p.Subtitle != "" {
		return p.Subtitle
	}
	return p.Description
}

// CoverImage returns the first image, or fallback when the project has none
func (p Project) CoverImage(fallback string) string {
	if len(p.Images) > 0 && p.Images[0] != "" {
		return p.Images[0]
	}
	return fallback
}
