// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Well-known content section names. Each one is an independently fetchable
// and editable block of page content.
const (
	SectionHero            = "hero"
	SectionAbout           = "about"
	SectionSkills          = "skills"
	SectionTimeline        = "timeline"
	SectionContact         = "contact"
	SectionProjectsMeta    = "projects-meta"
	SectionSkillCategories = "skill-categories"
)

// KnownSections lists every section name accepted by the content API,
// in the order the sections appear on the page.
var KnownSections = []string{
	SectionHero,
	SectionAbout,
	SectionSkills,
	SectionTimeline,
	SectionContact,
	SectionProjectsMeta,
	SectionSkillCategories,
}

// IsKnownSection reports whether name is one of [KnownSections].
func IsKnownSection(name string) bool {
	for _, s := range KnownSections {
		if s == name {
			return true
		}
	}
	return false
}

// SectionData is the free-form payload of a content section: nested text
// fields, arrays of cards and items, color/gradient metadata.
// Its shape is section-specific and is not validated beyond presence.
type SectionData map[string]any

// Section is a named content block stored as a whole document.
//
// Writes always replace Data entirely. Version is incremented by the store
// on every write; a non-zero Version on an incoming write is treated as the
// expected current version (optimistic concurrency), zero means
// last-writer-wins.
type Section struct {
	// Name is the unique section key (see [KnownSections]).
	Name string `json:"name"`

	// Data is the full section payload.
	Data SectionData `json:"data"`

	// Version is the store-maintained write counter.
	Version int64 `json:"version"`

	// CreatedAt is set on the first write of the section.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every write.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Section model.
func (s Section) TableName() string {
	return "sections"
}

// ContentSnapshot is the outcome of loading several sections at once
// together with the advisory role check.
type ContentSnapshot struct {
	IsAdmin  bool
	Sections map[string]Section
	// Failed maps a section name to its fetch error; those sections hold
	// their defaults.
	Failed map[string]error
}
