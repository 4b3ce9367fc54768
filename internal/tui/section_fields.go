package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-portfolio/models"
)

const socialLinksKey = "socialLinks"

// fieldsForSection builds editor fields from the section's editable keys.
func fieldsForSection(section models.Section) []EditorField {
	specs := models.SectionFieldSpecs(section.Name)
	fields := make([]EditorField, 0, len(specs))
	for _, fs := range specs {
		fields = append(fields, EditorField{
			Key:       fs.Key,
			Label:     fs.Label,
			Value:     stringValue(section.Data[fs.Key]),
			Multiline: fs.Multiline,
		})
	}
	return fields
}

func editsFromDraft(draft map[string]string) models.SectionData {
	edits := make(models.SectionData, len(draft))
	for k, v := range draft {
		edits[k] = v
	}
	return edits
}

func stringValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

// extraKeys summarises the non-text content of a section: everything that
// is not an editable field, sorted by key.
func extraKeys(section models.Section) []string {
	editable := make(map[string]bool)
	for _, fs := range models.SectionFieldSpecs(section.Name) {
		editable[fs.Key] = true
	}

	var lines []string
	for k, v := range section.Data {
		if editable[k] {
			continue
		}
		switch value := v.(type) {
		case []any:
			lines = append(lines, fmt.Sprintf("%s: %d item(s)", k, len(value)))
		case map[string]any:
			lines = append(lines, fmt.Sprintf("%s: %d field(s)", k, len(value)))
		default:
			lines = append(lines, fmt.Sprintf("%s: %s", k, fitText(stringValue(value), 40)))
		}
	}
	sort.Strings(lines)
	return lines
}

// sectionTitle is the "title" field, or the section name when unset.
func sectionTitle(section models.Section) string {
	if title := strings.TrimSpace(stringValue(section.Data["title"])); title != "" {
		return title
	}
	return section.Name
}

// socialLinksFromData decodes the contact section's links. Entries that
// are not objects are skipped; JSON numbers arrive as float64.
func socialLinksFromData(data models.SectionData) []models.SocialLink {
	raw, ok := data[socialLinksKey].([]any)
	if !ok {
		return nil
	}

	links := make([]models.SocialLink, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		link := models.SocialLink{
			Platform: stringValue(entry["platform"]),
			URL:      stringValue(entry["url"]),
		}
		switch id := entry["id"].(type) {
		case float64:
			link.ID = int64(id)
		case int64:
			link.ID = id
		case int:
			link.ID = int64(id)
		}
		links = append(links, link)
	}
	return links
}

func socialLinksToData(links []models.SocialLink) []any {
	out := make([]any, 0, len(links))
	for _, link := range links {
		out = append(out, map[string]any{
			"id":       link.ID,
			"platform": link.Platform,
			"url":      link.URL,
		})
	}
	return out
}
