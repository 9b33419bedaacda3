// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is a served service type. TemplateData is an optional JSON
// document holding page-template overrides; it is stored raw and parsed
// lazily so a malformed document never breaks a read path.
type Category struct {
	ID           int             `json:"id"`
	Slug         string          `json:"slug"`
	Name         string          `json:"name"`
	TemplateData json.RawMessage `json:"template_data,omitempty"`
}

// categoryTemplate is the known shape of TemplateData.
type categoryTemplate struct {
	HeroText string `json:"heroText"`
}

// HeroText returns the hero headline for this category in the given city.
// If TemplateData carries a heroText template, its "{city}" placeholder is
// substituted with the city name; otherwise (or if the JSON is malformed)
// a generated default is used. Never fails.
func (c *Category) HeroText(city string) string {
	text := fmt.Sprintf("Best %s in %s", c.Name, city)

	if len(c.TemplateData) > 0 {
		var tpl categoryTemplate
		if err := json.Unmarshal(c.TemplateData, &tpl); err == nil && tpl.HeroText != "" {
			text = tpl.HeroText
		}
	}

	return strings.ReplaceAll(text, "{city}", city)
}
