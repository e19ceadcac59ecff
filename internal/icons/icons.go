// Package icons maps symbolic icon identifiers to inline SVG glyphs.
//
// Glyph bodies are drawn on a 256x256 grid with stroked paths so the CSS `stroke` colour of the
// surrounding element applies. Unknown identifiers resolve to a blank glyph of the same box so
// layouts do not shift.
package icons

import (
	"html"
	"html/template"
	"sort"
	"strings"
)

// BlankID is reported by the data-icon attribute of the blank glyph.
const BlankID = "blank"

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 256 256" fill="none" stroke="currentColor" stroke-width="16" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" focusable="false"`

var glyphs = map[string]string{
	"ArrowRight":      `<line x1="40" y1="128" x2="216" y2="128"/><polyline points="144 56 216 128 144 200"/>`,
	"EnvelopeSimple":  `<rect x="32" y="56" width="192" height="144" rx="8"/><polyline points="224 56 128 144 32 56"/>`,
	"PaperPlaneRight": `<path d="M223.7 121 47.8 32.6a8 8 0 0 0-11.2 9.6L68 128l-31.4 85.8a8 8 0 0 0 11.2 9.6L223.7 135a8 8 0 0 0 0-14Z"/><line x1="68" y1="128" x2="136" y2="128"/>`,
	"Star":            `<path d="m128 24 31 63 69 10-50 49 12 69-62-33-62 33 12-69-50-49 69-10Z"/>`,
	"Users":           `<circle cx="88" cy="108" r="52"/><path d="M16 200c16-30 44-44 72-44s56 14 72 44"/><path d="M155 60a52 52 0 1 1 19 98"/><path d="M176 156c28 0 56 14 72 44"/>`,
	"Cpu":             `<rect x="48" y="48" width="160" height="160" rx="8"/><rect x="96" y="96" width="64" height="64"/><line x1="208" y1="104" x2="240" y2="104"/><line x1="208" y1="152" x2="240" y2="152"/><line x1="16" y1="104" x2="48" y2="104"/><line x1="16" y1="152" x2="48" y2="152"/><line x1="104" y1="16" x2="104" y2="48"/><line x1="152" y1="16" x2="152" y2="48"/><line x1="104" y1="208" x2="104" y2="240"/><line x1="152" y1="208" x2="152" y2="240"/>`,
	"Code":            `<polyline points="64 88 16 128 64 168"/><polyline points="192 88 240 128 192 168"/><line x1="160" y1="40" x2="96" y2="216"/>`,
	"ChartLine":       `<polyline points="224 208 32 208 32 48"/><polyline points="224 96 160 152 96 104 32 160"/>`,
	"Briefcase":       `<rect x="32" y="72" width="192" height="136" rx="8"/><path d="M168 72V56a16 16 0 0 0-16-16h-48a16 16 0 0 0-16 16v16"/><path d="M224 126.3A191.4 191.4 0 0 1 128 152a191.4 191.4 0 0 1-96-25.7"/>`,
	"PaintBrush":      `<path d="M64 216c-24 0-40-8-48-16 24-8 24-48 48-56a36 36 0 0 1 36 48c-6 16-20 24-36 24Z"/><path d="M112 138c44-64 96-104 120-96 8 24-32 76-96 120"/>`,
	"Megaphone":       `<path d="M160 80v144l-32-24V80"/><path d="M160 80 232 40v176l-72-40"/><path d="M160 80H48a16 16 0 0 0-16 16v64a16 16 0 0 0 16 16h112"/>`,
	"Camera":          `<path d="M208 208H48a16 16 0 0 1-16-16V80a16 16 0 0 1 16-16h32l16-24h64l16 24h32a16 16 0 0 1 16 16v112a16 16 0 0 1-16 16Z"/><circle cx="128" cy="132" r="36"/>`,
	"Heartbeat":       `<polyline points="32 136 72 136 96 96 136 168 160 136 224 136"/><path d="M26 104a52 52 0 0 1 102-24 52 52 0 0 1 102 24c0 64-102 120-102 120S64 192 36 144"/>`,
	"MusicNotes":      `<circle cx="68" cy="196" r="28"/><circle cx="188" cy="164" r="28"/><polyline points="216 164 216 32 96 64 96 196"/><line x1="96" y1="104" x2="216" y2="72"/>`,
	"Translate":       `<polyline points="232 216 176 104 120 216"/><line x1="136" y1="184" x2="216" y2="184"/><line x1="88" y1="32" x2="88" y2="56"/><line x1="24" y1="56" x2="152" y2="56"/><path d="M120 56a96 96 0 0 1-96 96"/><path d="M61 96a96 96 0 0 0 91 56"/>`,
	"Atom":            `<ellipse cx="128" cy="128" rx="112" ry="44"/><ellipse cx="128" cy="128" rx="112" ry="44" transform="rotate(60 128 128)"/><ellipse cx="128" cy="128" rx="112" ry="44" transform="rotate(120 128 128)"/><circle cx="128" cy="128" r="8"/>`,
	"Bank":            `<polygon points="24 96 232 96 128 32 24 96"/><line x1="56" y1="96" x2="56" y2="176"/><line x1="104" y1="96" x2="104" y2="176"/><line x1="152" y1="96" x2="152" y2="176"/><line x1="200" y1="96" x2="200" y2="176"/><line x1="32" y1="176" x2="224" y2="176"/><line x1="16" y1="208" x2="240" y2="208"/>`,
	"Leaf":            `<path d="M56 200c-32-96 48-160 168-160 0 120-64 200-160 168"/><line x1="40" y1="216" x2="152" y2="104"/>`,
}

// Lookup returns the glyph registered for id. The second result is false for unknown ids, in which
// case the blank glyph is returned.
func Lookup(id, class string) (template.HTML, bool) {
	body, ok := glyphs[id]
	if !ok {
		return render(BlankID, class, ""), false
	}
	return render(id, class, body), true
}

// Glyph returns the glyph for id or the blank glyph. It is exposed to templates as `icon`.
func Glyph(id, class string) template.HTML {
	g, _ := Lookup(id, class)
	return g
}

// Known returns the registered icon identifiers in sorted order.
func Known() []string {
	out := make([]string, 0, len(glyphs))
	for id := range glyphs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func render(id, class, body string) template.HTML {
	var b strings.Builder
	b.Grow(len(svgOpen) + len(body) + 64)
	b.WriteString(svgOpen)
	b.WriteString(` data-icon="`)
	b.WriteString(html.EscapeString(id))
	b.WriteString(`"`)
	if class = strings.TrimSpace(class); class != "" {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(class))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(body)
	b.WriteString("</svg>")
	// glyph bodies are package constants; class and id are escaped above
	return template.HTML(b.String())
}
