package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/catalog"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/cms"
	handlersPkg "github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/handlers"
	mw "github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/middleware"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/observability"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/seo"
)

// homeHandler renders the landing page: hero, category grid and best selling courses.
func (a *app) homeHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	content := a.pageCopy(r, "home", lang)
	view := a.buildHomeView(lang, content)

	title := content.SEO.Title
	if title == "" {
		title = a.i18nOrDefault(lang, "brand.name", "LMS Genie")
	}
	vm := a.pageData(r, lang, title, content.SEO.Description)
	vm.Home = &view

	brand := a.i18nOrDefault(lang, "brand.name", "LMS Genie")
	base := a.baseURL(r)
	courses := make([]seo.CourseItem, 0, len(view.Courses))
	for _, c := range view.Courses {
		courses = append(courses, seo.CourseItem{Name: c.Title, URL: seo.AbsURL(base, c.Href), Provider: brand})
	}
	vm.SEO.JSONLD = []string{
		seo.JSON(seo.Organization(brand, seo.AbsURL(base, "/"), seo.AbsURL(base, "/assets/img/hero.svg"))),
		seo.JSON(seo.CourseList(courses)),
	}

	a.renderPage(w, r, "home", http.StatusOK, vm)
}

func (a *app) buildHomeView(lang string, content cms.Page) handlersPkg.HomeView {
	coursesLabel := a.i18nOrDefault(lang, "home.categories.courses", "Courses")
	tiles := catalog.BuildCategoryGrid(a.catalog.Categories)
	categories := make([]handlersPkg.CategoryTileView, 0, len(tiles))
	for _, t := range tiles {
		categories = append(categories, handlersPkg.CategoryTileView{CategoryTile: t, CoursesLabel: coursesLabel})
	}

	studentsWord := a.i18nOrDefault(lang, "home.courses.students", "students")
	cards := catalog.BuildCourseCards(a.catalog.Courses, lang)
	courses := make([]handlersPkg.CourseCardView, 0, len(cards))
	for _, c := range cards {
		courses = append(courses, handlersPkg.CourseCardView{CourseCard: c, StudentsWord: studentsWord})
	}

	return handlersPkg.HomeView{
		Hero: handlersPkg.HeroView{
			Title:    content.Title,
			Body:     content.Body,
			ImageSrc: "/assets/img/hero.svg",
			ImageAlt: a.i18nOrDefault(lang, "home.hero.imageAlt", "banner image"),
			Action: handlersPkg.ButtonView{
				Label: a.i18nOrDefault(lang, "home.hero.cta", "Create Account"),
				Type:  "button",
			},
		},
		CategoriesTitle: a.i18nOrDefault(lang, "home.categories.title", "Browse Top Category"),
		Categories:      categories,
		MoreCopy:        a.i18nOrDefault(lang, "home.categories.more", "We have more category & subcategory."),
		BrowseAll: handlersPkg.ButtonView{
			Label:     a.i18nOrDefault(lang, "home.categories.browseAll", "Browse All"),
			Href:      "/categories",
			Icon:      "ArrowRight",
			IconAfter: true,
			Variant:   "outline",
		},
		CoursesTitle: a.i18nOrDefault(lang, "home.courses.title", "Best selling courses"),
		Courses:      courses,
	}
}

// pageCopy returns the markdown copy for slug. Missing copy renders an empty hero.
func (a *app) pageCopy(r *http.Request, slug, lang string) cms.Page {
	page, err := a.pages.Page(slug, lang)
	if err != nil {
		if !errors.Is(err, cms.ErrNotFound) {
			observability.FromContext(r.Context()).Warn("page copy unavailable", zap.String("slug", slug), zap.Error(err))
		}
		return cms.Page{Slug: slug, Lang: lang}
	}
	return page
}
