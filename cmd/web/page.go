package main

import (
	"net/http"
	"net/url"

	handlersPkg "github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/handlers"
	mw "github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/middleware"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/nav"
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/seo"
)

func (a *app) i18nOrDefault(lang, key, def string) string {
	return a.bundle.TOrDefault(lang, key, def)
}

// pageData fills the layout fields shared by every page.
func (a *app) pageData(r *http.Request, lang, title, description string) handlersPkg.PageData {
	vm := handlersPkg.PageData{
		Title:       title,
		Lang:        lang,
		Languages:   a.bundle.Supported(),
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(r.URL.Path),
		Analytics:   handlersPkg.AnalyticsFromConfig(a.cfg.Analytics),
		CSRFToken:   mw.CSRFToken(r.Context()),
	}

	brand := a.i18nOrDefault(lang, "brand.name", "LMS Genie")
	meta := seo.NewMeta(title, description, a.baseURL(r), r.URL.Path)
	vm.SEO.Title = meta.Title
	vm.SEO.Description = meta.Description
	vm.SEO.Canonical = meta.Canonical
	vm.SEO.OG.URL = meta.Canonical
	vm.SEO.OG.SiteName = brand
	vm.SEO.OG.Title = meta.OG.Title
	vm.SEO.OG.Description = meta.OG.Description
	vm.SEO.OG.Type = meta.OG.Type
	vm.SEO.Twitter.Card = meta.Twitter.Card
	vm.SEO.Alternates = a.buildAlternates(r)
	return vm
}

// baseURL prefers the configured public URL and falls back to the request host.
func (a *app) baseURL(r *http.Request) string {
	if a.cfg.Site.BaseURL != "" {
		return a.cfg.Site.BaseURL
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func (a *app) absoluteURL(r *http.Request) string {
	return seo.AbsURL(a.baseURL(r), r.URL.Path)
}

func (a *app) buildAlternates(r *http.Request) []handlersPkg.Alternate {
	langs := a.bundle.Supported()
	out := make([]handlersPkg.Alternate, 0, len(langs)+1)
	page := a.absoluteURL(r)
	for _, l := range langs {
		out = append(out, handlersPkg.Alternate{Href: page + "?hl=" + url.QueryEscape(l), Hreflang: l})
	}
	out = append(out, handlersPkg.Alternate{Href: page, Hreflang: "x-default"})
	return out
}

// breadcrumbJSONLD mirrors the visible breadcrumb trail.
func (a *app) breadcrumbJSONLD(r *http.Request, lang string, crumbs []nav.Crumb) string {
	base := a.baseURL(r)
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		name := c.Label
		if c.LabelKey != "" {
			name = a.i18nOrDefault(lang, c.LabelKey, c.Label)
		}
		items = append(items, seo.BreadcrumbItem{Name: name, Item: seo.AbsURL(base, c.Href)})
	}
	return seo.JSON(seo.BreadcrumbList(items))
}
