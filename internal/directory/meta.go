// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package directory

import (
	"fmt"
	"time"

	"citydex/internal/models"
)

// Meta is the derived page metadata for one directory page.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	HeroText    string `json:"hero_text"`
}

// PageMeta derives title, description, and hero text from a composed
// page. Pure; template problems fall back to generated defaults inside
// Category.HeroText, so this never fails.
func PageMeta(page *models.DirectoryPage) Meta {
	cat := page.Category.Name
	loc := page.Location.Name
	return Meta{
		Title:       fmt.Sprintf("Best %s in %s | Top Rated in %d", cat, loc, time.Now().Year()),
		Description: fmt.Sprintf("Find the highest-rated %s in %s.", cat, loc),
		HeroText:    page.Category.HeroText(loc),
	}
}
