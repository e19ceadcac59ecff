package catalog

import (
	"strings"
)

// Breakpoint is a screen-size threshold controlling how many grid items are visible.
type Breakpoint int

const (
	Small  Breakpoint = iota // < 768px
	Medium                   // 768px - 1023px
	Large                    // >= 1024px
)

// Breakpoints lists every breakpoint from narrowest to widest.
var Breakpoints = []Breakpoint{Small, Medium, Large}

// Cap returns how many category tiles are visible at the breakpoint.
func (b Breakpoint) Cap() int {
	switch b {
	case Small:
		return 4
	case Medium:
		return 6
	default:
		return 12
	}
}

// Suffix is the CSS class suffix used for the breakpoint.
func (b Breakpoint) Suffix() string {
	switch b {
	case Small:
		return "sm"
	case Medium:
		return "md"
	default:
		return "lg"
	}
}

func (b Breakpoint) String() string { return b.Suffix() }

// CategoryTile is one link in the category grid.
type CategoryTile struct {
	Category
	Index int
}

// VisibleAt reports whether the tile is shown at the breakpoint.
func (t CategoryTile) VisibleAt(b Breakpoint) bool {
	return t.Index < b.Cap()
}

// Classes returns the presentation classes hiding the tile where it exceeds the breakpoint cap.
func (t CategoryTile) Classes() string {
	classes := []string{"category-tile"}
	for _, b := range Breakpoints {
		if !t.VisibleAt(b) {
			classes = append(classes, "is-hidden-"+b.Suffix())
		}
	}
	return strings.Join(classes, " ")
}

// BuildCategoryGrid returns one tile per category. Nothing is dropped; visibility is expressed
// through Classes only.
func BuildCategoryGrid(categories []Category) []CategoryTile {
	tiles := make([]CategoryTile, 0, len(categories))
	for i, c := range categories {
		tiles = append(tiles, CategoryTile{Category: c, Index: i})
	}
	return tiles
}

// VisibleCount returns how many tiles are shown at the breakpoint.
func VisibleCount(tiles []CategoryTile, b Breakpoint) int {
	n := 0
	for _, t := range tiles {
		if t.VisibleAt(b) {
			n++
		}
	}
	return n
}
