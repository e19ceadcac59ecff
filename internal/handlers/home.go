package handlers

import (
	"html/template"

	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/catalog"
)

// HeroView is the copy block at the top of a page.
type HeroView struct {
	Title    string
	Body     template.HTML
	ImageSrc string
	ImageAlt string
	Action   ButtonView
}

// ButtonView feeds the shared button partial.
type ButtonView struct {
	Label     string
	Type      string // "submit", "button" or "" for a link
	Href      string
	Icon      string
	IconAfter bool
	Variant   string // "primary" (default) or "outline"
	Attrs     template.HTMLAttr
}

// CategoryTileView pairs a grid tile with its localized count label.
type CategoryTileView struct {
	catalog.CategoryTile
	CoursesLabel string
}

// CourseCardView pairs a course card with its localized labels.
type CourseCardView struct {
	catalog.CourseCard
	StudentsWord string
}

// HomeView is the payload of the home page.
type HomeView struct {
	Hero HeroView

	CategoriesTitle string
	Categories      []CategoryTileView
	MoreCopy        string
	BrowseAll       ButtonView

	CoursesTitle string
	Courses      []CourseCardView
}

// SEOData is a lightweight copy to avoid importing the seo package here.
type SEOData struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          struct {
		Title       string
		Description string
		Image       string
		Type        string
		URL         string
		SiteName    string
	}
	Twitter struct {
		Card  string
		Site  string
		Image string
	}
	Alternates []Alternate
	JSONLD     []string
}

// Alternate is an hreflang link.
type Alternate struct {
	Href     string
	Hreflang string
}
