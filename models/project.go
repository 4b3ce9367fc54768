// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Project is a portfolio project record.
// ID is assigned by the store layer on creation.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Technologies []string  `json:"technologies"`
	LiveDemo     string    `json:"liveDemo"`
	GitHub       string    `json:"github"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// ProjectUpdate carries the mutable project fields of an update request.
// Nil fields keep their current value, so both partial and full bodies are
// accepted; the merged result replaces the stored document.
type ProjectUpdate struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	LiveDemo     *string   `json:"liveDemo,omitempty"`
	GitHub       *string   `json:"github,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}

// Apply returns a copy of p with every non-nil field of u written over it.
func (u ProjectUpdate) Apply(p Project) Project {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Technologies != nil {
		p.Technologies = append(make([]string, 0, len(*u.Technologies)), (*u.Technologies)...)
	}
	if u.LiveDemo != nil {
		p.LiveDemo = *u.LiveDemo
	}
	if u.GitHub != nil {
		p.GitHub = *u.GitHub
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
	return p
}

// FullUpdate builds a ProjectUpdate that overwrites every mutable field of
// a project with the values of p.
func FullUpdate(p Project) ProjectUpdate {
	technologies := append(make([]string, 0, len(p.Technologies)), p.Technologies...)
	return ProjectUpdate{
		Title:        &p.Title,
		Description:  &p.Description,
		Image:        &p.Image,
		Technologies: &technologies,
		LiveDemo:     &p.LiveDemo,
		GitHub:       &p.GitHub,
		Featured:     &p.Featured,
	}
}
