package domain

import (
	"maps"
	"slices"
	"strings"
)

// Filter categories understood by the processing engine, in canonical order.
const (
	FilterDefault = "filter"
	FilterApk     = "apkfilter"
	FilterAar     = "aarfilter"
	FilterJar     = "jarfilter"
	FilterWar     = "warfilter"
	FilterEar     = "earfilter"
	FilterJmod    = "jmodfilter"
	FilterZip     = "zipfilter"
)

var filterCategoryOrder = []string{
	FilterDefault, FilterApk, FilterAar, FilterJar, FilterWar, FilterEar, FilterJmod, FilterZip,
}

// FilterCategories returns the known filter categories in canonical order.
func FilterCategories() []string {
	return slices.Clone(filterCategoryOrder)
}

// IsKnownFilterCategory reports whether name is one of the known filter categories.
func IsKnownFilterCategory(name string) bool {
	return slices.Contains(filterCategoryOrder, name)
}

// Filter restricts which entries of a packaged archive take part in processing.
// It maps filter categories to patterns; a single pattern is stored under FilterDefault.
// Patterns are kept verbatim, their syntax is checked by the processing engine.
type Filter struct {
	categories map[string]string
}

// Pattern returns a filter holding a single pattern in the default category.
func Pattern(pattern string) Filter {
	return Filter{categories: map[string]string{FilterDefault: pattern}}
}

// Filters returns a filter holding a copy of the given category mapping.
// Unknown category names are kept as they are.
func Filters(categories map[string]string) Filter {
	if len(categories) == 0 {
		return Filter{}
	}
	return Filter{categories: maps.Clone(categories)}
}

// IsZero reports whether the filter holds no category.
func (f Filter) IsZero() bool {
	return len(f.categories) == 0
}

// Get returns the pattern of a category.
func (f Filter) Get(category string) (string, bool) {
	p, ok := f.categories[category]
	return p, ok
}

// Categories returns the categories present in the filter, known categories
// first in canonical order, then unknown ones sorted by name.
func (f Filter) Categories() []string {
	if len(f.categories) == 0 {
		return nil
	}
	res := make([]string, 0, len(f.categories))
	for _, c := range filterCategoryOrder {
		if _, ok := f.categories[c]; ok {
			res = append(res, c)
		}
	}
	var unknown []string
	for c := range f.categories {
		if !IsKnownFilterCategory(c) {
			unknown = append(unknown, c)
		}
	}
	slices.Sort(unknown)
	return append(res, unknown...)
}

// Map returns a copy of the category mapping.
func (f Filter) Map() map[string]string {
	return maps.Clone(f.categories)
}

// String returns the filter as "category=pattern" pairs in category order.
func (f Filter) String() string {
	parts := make([]string, 0, len(f.categories))
	for _, c := range f.Categories() {
		parts = append(parts, c+"="+f.categories[c])
	}
	return strings.Join(parts, ", ")
}

// FilteredEntry is an entry paired with the filter applied to it.
type FilteredEntry struct {
	entry  Entry
	filter Filter
}

// NewFilteredEntry pairs an entry with a filter.
func NewFilteredEntry(entry Entry, filter Filter) FilteredEntry {
	return FilteredEntry{entry: entry, filter: filter}
}

// Entry returns the wrapped entry.
func (fe FilteredEntry) Entry() Entry {
	return fe.entry
}

// Filter returns the filter applied to the entry.
func (fe FilteredEntry) Filter() Filter {
	return fe.filter
}
