// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the directory's entity types: locations,
// categories, and listings. Listings carry denormalized copies of the
// slugs of the location and category they reference; those copies are
// only ever set through NewListing so they cannot drift.
package models

// Location is a served geography (a city page root). Its slug is the URL
// key for every directory page under it and is immutable once a listing
// references it.
type Location struct {
	ID              int     `json:"id"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	State           *string `json:"state,omitempty"`
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
}
