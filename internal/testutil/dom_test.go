package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDOMHelpers(t *testing.T) {
	doc := ParseHTML(t, []byte(`<div><a class="tile is-hidden-sm" href="/a">A</a><a class="tile" href="/b">B</a></div>`))
	tiles := doc.Find("a")
	require.Equal(t, 2, tiles.Length())

	href, ok := Attr(tiles, "href")
	require.True(t, ok)
	require.Equal(t, "/a", href)

	_, ok = Attr(doc.Find("span"), "href")
	require.False(t, ok)

	require.Equal(t, 1, CountWithClass(tiles, "is-hidden-sm"))
	require.Equal(t, 2, CountWithClass(tiles, "tile"))
	require.False(t, HasClass(nil, "tile"))
}
