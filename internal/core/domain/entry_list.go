package domain

import "iter"

// Entries is the raw sequence held by an EntryList.
type Entries []Entry

// EntryList is an ordered, append-only accumulation of raw entries.
// Duplicates are kept. The zero value is an empty list ready to use.
type EntryList struct {
	entries Entries
}

// Append adds an item to the end of the list.
// A collection is expanded exactly one level: its elements are appended one
// by one and any collection nested inside it is appended as a single opaque
// element. An empty collection contributes nothing.
func (l *EntryList) Append(item Entry) {
	if item.kind == KindCollection {
		for _, e := range item.items {
			l.entries = append(l.entries, e.clone())
		}
		return
	}
	l.entries = append(l.entries, item.clone())
}

// AppendFiltered wraps item together with filter and appends the result.
// The item is wrapped as given, a collection included.
func (l *EntryList) AppendFiltered(item Entry, filter Filter) {
	l.entries = append(l.entries, Filtered(NewFilteredEntry(item.clone(), filter)))
}

// RawEntries returns the live underlying sequence, exactly as accumulated.
// Every call returns the same pointer; changes made through it are seen by
// the list and by later callers.
func (l *EntryList) RawEntries() *Entries {
	return &l.entries
}

// Len returns the number of raw entries.
func (l *EntryList) Len() int {
	return len(l.entries)
}

// ResolvedEntry is a raw entry anchored at a base directory.
type ResolvedEntry struct {
	Path   string
	Filter Filter
}

// Resolved yields every raw entry anchored at baseDir, in order and with
// duplicates. Collections, including nested and filtered ones, are expanded
// fully; a filter applies to everything it wraps, the innermost one winning.
// The raw entries are not modified.
func (l *EntryList) Resolved(baseDir string) iter.Seq[ResolvedEntry] {
	return resolveEntries(l.entries, baseDir)
}

// ResolvedFiles returns the absolute paths of Resolved, without filters.
func (l *EntryList) ResolvedFiles(baseDir string) []string {
	return resolvedPaths(l.entries, baseDir)
}

func resolveEntries(entries []Entry, baseDir string) iter.Seq[ResolvedEntry] {
	return func(yield func(ResolvedEntry) bool) {
		for _, e := range entries {
			if !resolveEntry(e, baseDir, Filter{}, yield) {
				return
			}
		}
	}
}

func resolvedPaths(entries []Entry, baseDir string) []string {
	res := make([]string, 0, len(entries))
	for r := range resolveEntries(entries, baseDir) {
		res = append(res, r.Path)
	}
	return res
}

func resolveEntry(e Entry, baseDir string, filter Filter, yield func(ResolvedEntry) bool) bool {
	switch e.kind {
	case KindPath, KindFile:
		return yield(ResolvedEntry{Path: e.ref.Resolve(baseDir), Filter: filter})
	case KindCollection:
		for _, item := range e.items {
			if !resolveEntry(item, baseDir, filter, yield) {
				return false
			}
		}
		return true
	case KindFiltered:
		return resolveEntry(e.filtered.entry, baseDir, e.filtered.filter, yield)
	default:
		return true
	}
}
