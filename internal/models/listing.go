// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Rating bounds for listings.
const (
	MinRating = 1
	MaxRating = 5
)

// Listing is a single business record. It references exactly one location
// and one category by ID, and additionally carries their slugs inline so
// the directory page query resolves entirely from one index.
type Listing struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	LocationID  int     `json:"location_id"`
	CategoryID  int     `json:"category_id"`

	// Denormalized from the referenced location and category.
	LocationSlug string `json:"location_slug"`
	CategorySlug string `json:"category_slug"`

	WebsiteURL *string `json:"website_url,omitempty"`
	Rating     int     `json:"rating"`
}

// NewListing builds a listing against the given location and category,
// copying their IDs and slugs onto the record. It is the only place the
// denormalized slug pair is written, so a listing can never disagree with
// the entities it references.
func NewListing(name, slug, description string, loc *Location, cat *Category, rating int, websiteURL string) Listing {
	l := Listing{
		Name:         name,
		Slug:         slug,
		Description:  description,
		LocationID:   loc.ID,
		CategoryID:   cat.ID,
		LocationSlug: loc.Slug,
		CategorySlug: cat.Slug,
		Rating:       rating,
	}
	if websiteURL != "" {
		l.WebsiteURL = &websiteURL
	}
	return l
}

// DirectoryPage is the composed result for one (location, category) page:
// both reference entities plus the ranked listings. It is the unit stored
// in the page cache.
type DirectoryPage struct {
	Location Location  `json:"location"`
	Category Category  `json:"category"`
	Items    []Listing `json:"items"`
}
