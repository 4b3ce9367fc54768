package models

// FieldSpec describes one editable top-level text field of a section.
type FieldSpec struct {
	Key       string
	Label     string
	Multiline bool
}

var sectionFieldSpecs = map[string][]FieldSpec{
	SectionHero: {
		{Key: "title", Label: "Title"},
		{Key: "name", Label: "Name"},
		{Key: "description", Label: "Description", Multiline: true},
	},
	SectionAbout: {
		{Key: "title", Label: "Title"},
		{Key: "subtitle", Label: "Subtitle"},
		{Key: "description", Label: "Description", Multiline: true},
	},
	SectionSkills: {
		{Key: "title", Label: "Title"},
		{Key: "subtitle", Label: "Subtitle", Multiline: true},
	},
	SectionTimeline: {
		{Key: "title", Label: "Title"},
		{Key: "subtitle", Label: "Subtitle", Multiline: true},
	},
	SectionContact: {
		{Key: "title", Label: "Title"},
		{Key: "subtitle", Label: "Subtitle", Multiline: true},
		{Key: "email", Label: "Email"},
		{Key: "phone", Label: "Phone"},
		{Key: "location", Label: "Location"},
	},
	SectionProjectsMeta: {
		{Key: "title", Label: "Title"},
		{Key: "subtitle", Label: "Subtitle", Multiline: true},
	},
	SectionSkillCategories: {
		{Key: "title", Label: "Title"},
	},
}

// SectionFieldSpecs returns the editable text fields of the named section,
// or nil for an unknown name.
func SectionFieldSpecs(name string) []FieldSpec {
	return sectionFieldSpecs[name]
}

// DefaultSectionData returns the content baked into the client for the
// named section. It is shown before the server answers and kept when a
// fetch fails. Every call builds a fresh value, so callers may mutate it.
func DefaultSectionData(name string) SectionData {
	switch name {
	case SectionHero:
		return SectionData{
			"title":       "Software Engineer",
			"name":        "M.khalil Mejri",
			"description": "I build fast, accessible web applications with clean code and thoughtful design.",
		}
	case SectionAbout:
		return SectionData{
			"title":       "About Me",
			"subtitle":    "Passionate developer crafting digital experiences",
			"description": "I enjoy turning complex problems into simple, beautiful and intuitive products.",
			"features": []any{
				map[string]any{"title": "Clean Code", "description": "Readable, maintainable and tested."},
				map[string]any{"title": "Problem Solver", "description": "Breaking hard problems into small steps."},
				map[string]any{"title": "Fast Delivery", "description": "Shipping iteratively without cutting corners."},
				map[string]any{"title": "Team Player", "description": "Clear communication and shared ownership."},
			},
		}
	case SectionSkills:
		return SectionData{
			"title":    "Skills",
			"subtitle": "Technologies I work with every day",
			"categories": []any{
				map[string]any{"title": "Frontend Focus", "skills": []any{"React", "JavaScript", "CSS"}},
				map[string]any{"title": "Server & Data", "skills": []any{"Node.js", "Express", "MongoDB"}},
				map[string]any{"title": "Tools & Flow", "skills": []any{"Git", "Vite", "Figma"}},
			},
		}
	case SectionTimeline:
		return SectionData{
			"title":    "Journey",
			"subtitle": "Education and experience",
			"items":    []any{},
		}
	case SectionContact:
		return SectionData{
			"title":       "Get In Touch",
			"subtitle":    "Have a project in mind? Let's talk.",
			"email":       "",
			"phone":       "",
			"location":    "",
			"socialLinks": []any{},
		}
	case SectionProjectsMeta:
		return SectionData{
			"title":    "Featured Projects",
			"subtitle": "A selection of things I have built",
		}
	case SectionSkillCategories:
		return SectionData{
			"title":      "Skill Categories",
			"categories": []any{},
		}
	default:
		return SectionData{}
	}
}
