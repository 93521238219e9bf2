// Package config loads task documents into a configuration and renders frozen ones.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"github.com/Guardsquare/proguard-sub005/internal/dsl"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML task documents.
type Loader struct {
	Logger ports.Logger

	mu      sync.Mutex
	sources []string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// loadState is the state shared by a top-level document and its includes.
type loadState struct {
	facade  *dsl.Facade
	opts    ports.LoadOptions
	sources []string
}

// Load reads the task document at path and accumulates it into a new configuration.
func (l *Loader) Load(ctx context.Context, path string, opts ports.LoadOptions) (*domain.Configuration, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	doc, err := readDocument(absPath)
	if err != nil {
		return nil, err
	}

	cfg := domain.NewConfiguration(resolveBaseDir(absPath, doc.BaseDir))
	st := &loadState{
		facade:  dsl.New(cfg),
		opts:    opts,
		sources: []string{absPath},
	}

	if err := l.apply(ctx, st, absPath, doc, []string{absPath}); err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.sources = st.sources
	l.mu.Unlock()

	return cfg, nil
}

// Sources returns the documents read by the last successful Load, in read order.
func (l *Loader) Sources() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.sources)
}

// apply accumulates one document, recursing into its includes when enabled.
func (l *Loader) apply(ctx context.Context, st *loadState, docPath string, doc *Document, chain []string) error {
	lists := []struct {
		directive string
		node      *yaml.Node
	}{
		{"injars", &doc.InJars},
		{"outjars", &doc.OutJars},
		{"libraryjars", &doc.LibraryJars},
	}
	for _, list := range lists {
		if err := l.applyEntries(st.facade, list.directive, list.node, docPath); err != nil {
			return err
		}
	}

	if err := l.applyOptions(st.facade, &doc.Options, docPath); err != nil {
		return err
	}

	return l.applyConfiguration(ctx, st, docPath, &doc.Configuration, chain)
}

func (l *Loader) applyEntries(f *dsl.Facade, directive string, node *yaml.Node, docPath string) error {
	if isAbsent(node) {
		return nil
	}
	e, err := l.entryFromNode(node, docPath)
	if err != nil {
		return err
	}
	return annotate(f.Call(directive, e), node, docPath)
}

// applyConfiguration appends configuration file references. With includes
// enabled, references to task documents are loaded in place instead.
func (l *Loader) applyConfiguration(
	ctx context.Context,
	st *loadState,
	docPath string,
	node *yaml.Node,
	chain []string,
) error {
	if isAbsent(node) {
		return nil
	}
	if !st.opts.FollowIncludes {
		return l.applyEntries(st.facade, "configuration", node, docPath)
	}

	items := []*yaml.Node{node}
	if resolveAlias(node).Kind == yaml.SequenceNode {
		items = resolveAlias(node).Content
	}

	includes, err := l.readIncludes(ctx, docPath, items, chain)
	if err != nil {
		return err
	}

	for i, item := range items {
		inc, ok := includes[i]
		if !ok {
			if err := l.applyEntries(st.facade, "configuration", item, docPath); err != nil {
				return err
			}
			continue
		}

		if inc.doc.BaseDir != "" {
			l.Logger.Warn(fmt.Sprintf("baseDir in included document %s has no effect", inc.path))
		}
		st.sources = append(st.sources, inc.path)
		if err := l.apply(ctx, st, inc.path, inc.doc, append(slices.Clone(chain), inc.path)); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) applyOptions(f *dsl.Facade, node *yaml.Node, docPath string) error {
	if isAbsent(node) {
		return nil
	}
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.MappingNode:
		return l.applyOptionPairs(f, node, docPath)
	case yaml.SequenceNode:
		for _, item := range node.Content {
			item = resolveAlias(item)
			switch item.Kind {
			case yaml.ScalarNode:
				if err := annotate(f.Call(item.Value), item, docPath); err != nil {
					return err
				}
			case yaml.MappingNode:
				if len(item.Content) != 2 {
					return invalidNode(domain.ErrInvalidOptionNode, item, docPath)
				}
				if err := l.applyOptionPairs(f, item, docPath); err != nil {
					return err
				}
			default:
				return invalidNode(domain.ErrInvalidOptionNode, item, docPath)
			}
		}
		return nil
	default:
		return invalidNode(domain.ErrInvalidOptionNode, node, docPath)
	}
}

func (l *Loader) applyOptionPairs(f *dsl.Facade, node *yaml.Node, docPath string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.Kind != yaml.ScalarNode {
			return invalidNode(domain.ErrInvalidOptionNode, key, docPath)
		}
		if err := l.applyOption(f, key.Value, node.Content[i+1], docPath); err != nil {
			return err
		}
	}
	return nil
}

// applyOption invokes one directive for a document value:
// true or null calls it without arguments, false skips it, a sequence calls
// it once per element and a scalar or entry mapping is passed as the argument.
func (l *Loader) applyOption(f *dsl.Facade, name string, value *yaml.Node, docPath string) error {
	value = resolveAlias(value)

	switch value.Kind {
	case yaml.SequenceNode:
		if len(value.Content) == 0 {
			return annotate(f.Call(name), value, docPath)
		}
		for _, item := range value.Content {
			if err := l.applyOption(f, name, item, docPath); err != nil {
				return err
			}
		}
		return nil

	case yaml.MappingNode:
		e, err := l.entryFromNode(value, docPath)
		if err != nil {
			return err
		}
		return annotate(f.Call(name, e), value, docPath)

	case yaml.ScalarNode:
		if value.Tag == fileTag {
			return annotate(f.Call(name, domain.File(value.Value)), value, docPath)
		}

		// Only null and bool are decoded; every other scalar is passed as written.
		switch value.ShortTag() {
		case "!!null":
			return annotate(f.Call(name), value, docPath)
		case "!!bool":
			var on bool
			if err := value.Decode(&on); err != nil {
				return invalidNode(domain.ErrInvalidOptionNode, value, docPath)
			}
			if on {
				return annotate(f.Call(name), value, docPath)
			}
			l.Logger.Warn(fmt.Sprintf("option %s is set to false in %s and has no effect", name, docPath))
			return nil
		default:
			return annotate(f.Call(name, value.Value), value, docPath)
		}

	default:
		return invalidNode(domain.ErrInvalidOptionNode, value, docPath)
	}
}

// entryFromNode converts a document node into an entry. A scalar is a path,
// a sequence a collection whose nested sequences stay nested, and a mapping
// a filtered entry.
func (l *Loader) entryFromNode(node *yaml.Node, docPath string) (domain.Entry, error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		switch {
		case node.Tag == fileTag:
			return domain.EntryOf(domain.File(node.Value)), nil
		case node.ShortTag() == "!!null":
			return domain.Collection(), nil
		default:
			return domain.EntryOf(domain.Path(node.Value)), nil
		}

	case yaml.SequenceNode:
		items := make([]domain.Entry, 0, len(node.Content))
		for _, child := range node.Content {
			if isAbsent(child) {
				continue
			}
			e, err := l.entryFromNode(child, docPath)
			if err != nil {
				return domain.Entry{}, err
			}
			items = append(items, e)
		}
		return domain.Collection(items...), nil

	case yaml.MappingNode:
		return l.filteredFromNode(node, docPath)

	default:
		return domain.Entry{}, invalidNode(domain.ErrInvalidEntryNode, node, docPath)
	}
}

func (l *Loader) filteredFromNode(node *yaml.Node, docPath string) (domain.Entry, error) {
	var (
		inner      domain.Entry
		hasPath    bool
		categories = map[string]string{}
	)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])

		switch key.Value {
		case keyPath:
			e, err := l.entryFromNode(value, docPath)
			if err != nil {
				return domain.Entry{}, err
			}
			inner, hasPath = e, true

		case keyFilter:
			if value.Kind != yaml.ScalarNode {
				return domain.Entry{}, invalidNode(domain.ErrUnsupportedFilterType, value, docPath)
			}
			categories[domain.FilterDefault] = value.Value

		case keyFilters:
			var m map[string]string
			if value.Kind != yaml.MappingNode || value.Decode(&m) != nil {
				return domain.Entry{}, invalidNode(domain.ErrUnsupportedFilterType, value, docPath)
			}
			for category, pattern := range m {
				if !domain.IsKnownFilterCategory(category) {
					l.Logger.Warn(fmt.Sprintf("unknown filter category %s in %s (line %d)", category, docPath, value.Line))
				}
				categories[category] = pattern
			}

		default:
			return domain.Entry{}, invalidNode(domain.ErrInvalidEntryNode, key, docPath)
		}
	}

	if !hasPath {
		return domain.Entry{}, invalidNode(domain.ErrInvalidEntryNode, node, docPath)
	}
	return domain.Filtered(domain.NewFilteredEntry(inner, domain.Filters(categories))), nil
}

// readDocument reads and parses a task document.
func readDocument(path string) (*Document, error) {
	// #nosec G304 -- path comes from the command line or an including document
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return &doc, nil
}

// resolveBaseDir anchors the configured base directory at the document's directory.
func resolveBaseDir(docPath, configured string) string {
	dir := filepath.Dir(docPath)
	if configured == "" {
		return dir
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Join(dir, configured)
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isAbsent(node *yaml.Node) bool {
	node = resolveAlias(node)
	return node == nil || node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

func invalidNode(sentinel error, node *yaml.Node, docPath string) error {
	err := zerr.With(sentinel, "path", docPath)
	err = zerr.With(err, "line", node.Line)
	if node.Value != "" {
		err = zerr.With(err, "value", node.Value)
	}
	return err
}

// annotate adds the document position to a directive error.
func annotate(err error, node *yaml.Node, docPath string) error {
	if err == nil {
		return nil
	}
	err = zerr.With(err, "path", docPath)
	return zerr.With(err, "line", node.Line)
}

// includePath returns the task document referenced by node, if any.
func includePath(node *yaml.Node, docPath string) (string, bool) {
	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" || !domain.IsTaskDocument(node.Value) {
		return "", false
	}
	p := node.Value
	if node.Tag != fileTag && !filepath.IsAbs(p) {
		p = filepath.Join(filepath.Dir(docPath), p)
	}
	return filepath.Clean(p), true
}

func describeChain(chain []string) string {
	return strings.Join(chain, " -> ")
}
