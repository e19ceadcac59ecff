// Package cms serves the localized page copy (hero titles, intro text, SEO overrides) authored as
// markdown with YAML front matter and bundled into the binary.
package cms

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no locale has the requested page.
var ErrNotFound = errors.New("cms: not found")

//go:embed content
var embedded embed.FS

// Embedded returns the page copy shipped with the binary, laid out as <lang>/<slug>.md.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "content")
	if err != nil {
		panic(err)
	}
	return sub
}

// Page is one rendered markdown page.
type Page struct {
	Slug    string
	Lang    string
	Title   string
	Summary string
	Body    template.HTML
	SEO     PageSEO
}

// PageSEO holds optional metadata overrides.
type PageSEO struct {
	Title       string
	Description string
}

type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Lang    string `yaml:"lang"`
	SEO     struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	} `yaml:"seo"`
}

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Typographer))
	policy   = bluemonday.UGCPolicy()
)

// Store holds every page parsed at load time. It is read-only afterwards.
type Store struct {
	pages    map[string]Page
	fallback string
}

// Load parses every <lang>/<slug>.md in fsys.
func Load(fsys fs.FS, fallback string) (*Store, error) {
	s := &Store{pages: map[string]Page{}, fallback: fallback}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".md" {
			return nil
		}
		lang := path.Dir(p)
		if lang == "." || strings.Contains(lang, "/") {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("cms: read %s: %w", p, err)
		}
		slug := strings.TrimSuffix(path.Base(p), ".md")
		page, err := parsePage(slug, lang, data)
		if err != nil {
			return fmt.Errorf("cms: parse %s: %w", p, err)
		}
		s.pages[key(page.Lang, slug)] = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Page returns slug in lang, then in the fallback language.
func (s *Store) Page(slug, lang string) (Page, error) {
	slug = sanitizeSlug(slug)
	if s == nil || slug == "" {
		return Page{}, ErrNotFound
	}
	for _, l := range []string{strings.ToLower(lang), s.fallback} {
		if l == "" {
			continue
		}
		if p, ok := s.pages[key(l, slug)]; ok {
			return p, nil
		}
	}
	return Page{}, ErrNotFound
}

// Slugs lists the loaded slugs for lang, sorted.
func (s *Store) Slugs(lang string) []string {
	if s == nil {
		return nil
	}
	var out []string
	prefix := strings.ToLower(lang) + "|"
	for k := range s.pages {
		if strings.HasPrefix(k, prefix) {
			out = append(out, strings.TrimPrefix(k, prefix))
		}
	}
	sort.Strings(out)
	return out
}

// Render converts markdown to sanitized HTML.
func Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("cms: render markdown: %w", err)
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil
}

func parsePage(slug, lang string, data []byte) (Page, error) {
	fm, body := splitFrontMatter(string(data))
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("front matter: %w", err)
		}
	}
	rendered, err := Render(body)
	if err != nil {
		return Page{}, err
	}
	page := Page{
		Slug:    slug,
		Lang:    firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    rendered,
		SEO: PageSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
		},
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func key(lang, slug string) string {
	return lang + "|" + slug
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
