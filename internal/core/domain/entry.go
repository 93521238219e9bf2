package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// EntryKind identifies the variant held by an Entry.
type EntryKind uint8

const (
	// KindPath is a raw path string.
	KindPath EntryKind = iota + 1
	// KindFile is an already resolved file handle.
	KindFile
	// KindCollection is a group of entries.
	KindCollection
	// KindFiltered is an entry paired with a filter.
	KindFiltered
)

// String returns the string representation of the EntryKind.
func (k EntryKind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindFile:
		return "file"
	case KindCollection:
		return "collection"
	case KindFiltered:
		return "filtered"
	default:
		return "invalid"
	}
}

// Entry is one raw, unresolved item of an entry list.
type Entry struct {
	kind     EntryKind
	ref      PathLike
	items    []Entry
	filtered *FilteredEntry
}

// EntryOf returns an entry holding a single path or file handle.
// A nil reference yields an empty collection.
func EntryOf(p PathLike) Entry {
	switch x := p.(type) {
	case nil:
		return Collection()
	case File:
		return Entry{kind: KindFile, ref: x}
	default:
		return Entry{kind: KindPath, ref: x}
	}
}

// Collection returns an entry grouping the given items.
func Collection(items ...Entry) Entry {
	return Entry{kind: KindCollection, items: items}
}

// Filtered returns an entry wrapping a filtered entry.
func Filtered(fe FilteredEntry) Entry {
	return Entry{kind: KindFiltered, filtered: &fe}
}

// Kind returns the variant held by the entry.
func (e Entry) Kind() EntryKind {
	return e.kind
}

// Ref returns the path reference of a path or file entry, nil otherwise.
func (e Entry) Ref() PathLike {
	return e.ref
}

// Items returns a copy of the items of a collection entry.
func (e Entry) Items() []Entry {
	if e.kind != KindCollection {
		return nil
	}
	return cloneEntries(e.items)
}

// FilteredEntry returns the wrapped filtered entry.
func (e Entry) FilteredEntry() (FilteredEntry, bool) {
	if e.filtered == nil {
		return FilteredEntry{}, false
	}
	return *e.filtered, true
}

// String returns the string representation of the Entry.
func (e Entry) String() string {
	switch e.kind {
	case KindPath, KindFile:
		return rawPath(e.ref)
	case KindCollection:
		parts := make([]string, len(e.items))
		for i, item := range e.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindFiltered:
		if e.filtered.filter.IsZero() {
			return e.filtered.entry.String()
		}
		return e.filtered.entry.String() + "(" + e.filtered.filter.String() + ")"
	default:
		return ""
	}
}

// NewEntry converts a loosely typed value into an Entry.
//
// Strings and Path values become path entries, File values file entries, and
// slices become collections whose elements are converted the same way, so a
// slice of slices yields a collection holding nested collections. A nil value
// is an empty collection. Any other type is rejected.
func NewEntry(v any) (Entry, error) {
	switch x := v.(type) {
	case nil:
		return Collection(), nil
	case Entry:
		return x, nil
	case FilteredEntry:
		return Filtered(x), nil
	case string:
		return EntryOf(Path(x)), nil
	case Path:
		return EntryOf(x), nil
	case File:
		return EntryOf(x), nil
	case []string:
		items := make([]Entry, len(x))
		for i, s := range x {
			items[i] = EntryOf(Path(s))
		}
		return Collection(items...), nil
	case []Entry:
		return Collection(cloneEntries(x)...), nil
	case []PathLike:
		items := make([]Entry, len(x))
		for i, p := range x {
			items[i] = EntryOf(p)
		}
		return Collection(items...), nil
	case []any:
		items := make([]Entry, 0, len(x))
		for _, item := range x {
			e, err := NewEntry(item)
			if err != nil {
				return Entry{}, err
			}
			items = append(items, e)
		}
		return Collection(items...), nil
	case fmt.Stringer:
		return EntryOf(Path(x.String())), nil
	default:
		return Entry{}, zerr.With(ErrUnsupportedEntryType, "type", fmt.Sprintf("%T", v))
	}
}

func rawPath(p PathLike) string {
	switch x := p.(type) {
	case Path:
		return string(x)
	case File:
		return string(x)
	default:
		return ""
	}
}

func cloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	res := make([]Entry, len(entries))
	for i, e := range entries {
		res[i] = e.clone()
	}
	return res
}

func (e Entry) clone() Entry {
	switch e.kind {
	case KindCollection:
		return Entry{kind: KindCollection, items: cloneEntries(e.items)}
	case KindFiltered:
		fe := FilteredEntry{entry: e.filtered.entry.clone(), filter: e.filtered.filter}
		return Entry{kind: KindFiltered, filtered: &fe}
	default:
		return e
	}
}
