// Package public bundles the HTML templates and static assets into the binary.
package public

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// Templates returns the template tree: layouts/, partials/ and pages/.
func Templates() fs.FS {
	return sub("templates")
}

// Static returns the files served under /assets.
func Static() fs.FS {
	return sub("static")
}

func sub(dir string) fs.FS {
	s, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return s
}
