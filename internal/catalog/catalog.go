package catalog

import (
	"strings"
	"sync"
)

// Catalog is a read-only list of canonical exercise names.
// Bodyweight names are part of the full list.
type Catalog struct {
	names      []string
	bodyweight map[string]bool
	common     []string
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the built-in catalog.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		all := make([]string, 0, len(commonExercises)+len(loadedExercises)+len(bodyweightExercises))
		all = append(all, commonExercises...)
		all = append(all, loadedExercises...)
		all = append(all, bodyweightExercises...)
		defaultCatalog = New(all, bodyweightExercises, commonExercises)
	})
	return defaultCatalog
}

// New builds a catalog. Duplicate names are dropped, keeping the first occurrence.
// Bodyweight and common names missing from names are appended to the full list.
func New(names, bodyweight, common []string) *Catalog {
	c := &Catalog{
		bodyweight: make(map[string]bool, len(bodyweight)),
		common:     append([]string(nil), common...),
	}

	seen := make(map[string]bool, len(names))
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		c.names = append(c.names, name)
	}

	for _, n := range names {
		add(n)
	}
	for _, n := range common {
		add(n)
	}
	for _, n := range bodyweight {
		add(n)
		c.bodyweight[strings.ToLower(n)] = true
	}

	return c
}

// Names returns a copy of the full list, in catalog order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *Catalog) CommonNames() []string {
	return append([]string(nil), c.common...)
}

func (c *Catalog) Len() int {
	return len(c.names)
}

// IsBodyweightExercise reports whether name belongs to the bodyweight subset,
// ignoring case only.
func (c *Catalog) IsBodyweightExercise(name string) bool {
	return c.bodyweight[strings.ToLower(name)]
}

// IsBodyweightExercise checks the default catalog.
func IsBodyweightExercise(name string) bool {
	return Default().IsBodyweightExercise(name)
}
