// Package catalog loads the sample categories, courses and branches shown by the site and
// shapes them into the grids the page templates render.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

// Category is a top-level course grouping shown with an icon and course count.
type Category struct {
	Name         string `yaml:"name"`
	IconID       string `yaml:"iconId"`
	Path         string `yaml:"path"`
	TotalCourses int    `yaml:"totalCourses"`
}

// Course is the partial course view rendered by course cards.
type Course struct {
	ID         string  `yaml:"id"`
	Title      string  `yaml:"title"`
	Category   string  `yaml:"category"`
	Instructor string  `yaml:"instructor"`
	Thumbnail  string  `yaml:"thumbnail"`
	Price      int64   `yaml:"price"` // minor units
	Currency   string  `yaml:"currency"`
	Rating     float64 `yaml:"rating"`
	Students   int64   `yaml:"students"`
	Path       string  `yaml:"path"`
}

// Branch is a physical office location. ID is only a rendering key.
type Branch struct {
	ID                string `yaml:"id"`
	BranchType        string `yaml:"branchType,omitempty"`
	BranchName        string `yaml:"branchName"`
	BranchDescription string `yaml:"branchDescription"`
}

// Catalog bundles the fixture sequences. It is read-only after Load.
type Catalog struct {
	Categories []Category
	Courses    []Course
	Branches   []Branch
}

// Default loads the fixtures compiled into the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(fixtures, "fixtures")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load reads categories.yaml, courses.yaml and branches.yaml from fsys. A missing branches file
// yields no branches; the other two files are required.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{}
	if err := readFixture(fsys, "categories.yaml", &c.Categories); err != nil {
		return nil, err
	}
	if err := readFixture(fsys, "courses.yaml", &c.Courses); err != nil {
		return nil, err
	}
	if err := readFixture(fsys, "branches.yaml", &c.Branches); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return c, nil
}

func readFixture(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	return nil
}
