package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// ContactPoint describes how the organization can be reached.
type ContactPoint struct {
	Email     string
	Telephone string
	Address   string
}

// ContactPage returns a ContactPage schema whose mainEntity is the organization with its contact point.
func ContactPage(name, url string, cp ContactPoint) map[string]any {
	org := map[string]any{
		"@type": "Organization",
		"name":  name,
		"contactPoint": map[string]any{
			"@type":       "ContactPoint",
			"contactType": "customer support",
			"email":       cp.Email,
			"telephone":   cp.Telephone,
		},
	}
	if cp.Address != "" {
		org["address"] = cp.Address
	}
	m := map[string]any{
		"@context":   "https://schema.org",
		"@type":      "ContactPage",
		"mainEntity": org,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// CourseItem is the subset of a course listed in an ItemList.
type CourseItem struct {
	Name     string
	URL      string
	Provider string
}

// CourseList builds an ItemList of Course entries in the given order.
func CourseList(items []CourseItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		course := map[string]any{
			"@type": "Course",
			"name":  it.Name,
		}
		if it.URL != "" {
			course["url"] = it.URL
		}
		if it.Provider != "" {
			course["provider"] = map[string]any{"@type": "Organization", "name": it.Provider}
		}
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     course,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"itemListElement": el,
	}
}
