package domain

import (
	"slices"
	"strings"
)

// FilterList is a list-valued setting such as the warning suppression filter.
//
// It starts unset, which is different from empty: an unset list means the
// setting was never touched, an empty one means it applies to everything.
// The first call to Add initializes the list, with or without patterns.
type FilterList struct {
	set      bool
	patterns []string
}

// Add initializes the list if needed and appends the given patterns.
// A comma-separated pattern contributes one element per item.
func (l *FilterList) Add(patterns ...string) {
	if !l.set {
		l.set = true
		l.patterns = []string{}
	}
	for _, p := range patterns {
		l.patterns = append(l.patterns, splitPatterns(p)...)
	}
}

// IsSet reports whether the list was touched at least once.
func (l *FilterList) IsSet() bool {
	return l.set
}

// Patterns returns a copy of the patterns, or nil when the list is unset.
// A touched list without patterns yields a non-nil empty slice.
func (l *FilterList) Patterns() []string {
	if !l.set {
		return nil
	}
	return append([]string{}, l.patterns...)
}

// Len returns the number of patterns.
func (l *FilterList) Len() int {
	return len(l.patterns)
}

func (l *FilterList) clone() FilterList {
	return FilterList{set: l.set, patterns: slices.Clone(l.patterns)}
}

func splitPatterns(p string) []string {
	parts := strings.Split(p, ",")
	res := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}

// ListKey names one of the filter-list settings of a configuration.
type ListKey uint8

const (
	// ListDontWarn suppresses warnings for matching classes.
	ListDontWarn ListKey = iota
	// ListDontNote suppresses notes for matching classes.
	ListDontNote
	// ListKeepAttributes keeps matching class attributes.
	ListKeepAttributes
	// ListKeepPackageNames keeps matching package names from obfuscation.
	ListKeepPackageNames
	// ListKeepDirectories keeps matching directory entries in output archives.
	ListKeepDirectories
	// ListAdaptClassStrings adapts string constants naming matching classes.
	ListAdaptClassStrings
	// ListAdaptResourceFileNames renames matching resource files.
	ListAdaptResourceFileNames
	// ListAdaptResourceFileContents rewrites class names inside matching resource files.
	ListAdaptResourceFileContents
	// ListOptimizations restricts the optimizations that are applied.
	ListOptimizations

	numListKeys
)

var listKeyNames = [numListKeys]string{
	ListDontWarn:                  "dontwarn",
	ListDontNote:                  "dontnote",
	ListKeepAttributes:            "keepattributes",
	ListKeepPackageNames:          "keeppackagenames",
	ListKeepDirectories:           "keepdirectories",
	ListAdaptClassStrings:         "adaptclassstrings",
	ListAdaptResourceFileNames:    "adaptresourcefilenames",
	ListAdaptResourceFileContents: "adaptresourcefilecontents",
	ListOptimizations:             "optimizations",
}

// ListKeys returns every filter-list key in declaration order.
func ListKeys() []ListKey {
	keys := make([]ListKey, 0, numListKeys)
	for k := range numListKeys {
		keys = append(keys, k)
	}
	return keys
}

// String returns the directive name of the key.
func (k ListKey) String() string {
	if k >= numListKeys {
		return "unknown"
	}
	return listKeyNames[k]
}
