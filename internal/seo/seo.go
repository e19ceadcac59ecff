// Package seo holds page metadata and schema.org JSON-LD builders.
package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
}

// NewMeta fills OpenGraph and Twitter from the title and description. baseURL and path join into
// the canonical URL; an empty baseURL leaves it blank.
func NewMeta(title, description, baseURL, path string) Meta {
	m := Meta{
		Title:       title,
		Description: description,
		Canonical:   AbsURL(baseURL, path),
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "website",
		},
		Twitter: Twitter{Card: "summary"},
	}
	return m
}

// AbsURL joins baseURL and path. It returns "" when baseURL is empty.
func AbsURL(baseURL, path string) string {
	if baseURL == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
