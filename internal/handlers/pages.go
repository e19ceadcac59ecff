package handlers

import (
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/nav"
)

// PageData is the view model every page renders through the shared layout.
type PageData struct {
	Title     string
	Lang      string
	Languages []string
	SEO       SEOData
	Analytics Analytics
	CSRFToken string

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Per-page payloads
	Home    *HomeView
	Contact *ContactView
}
