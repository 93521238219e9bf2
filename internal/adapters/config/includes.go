package config

import (
	"context"
	"slices"
	"sync"

	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// maxConcurrentReads bounds the number of documents read at the same time.
const maxConcurrentReads = 8

type include struct {
	path string
	doc  *Document
}

// readIncludes reads every task document referenced by items concurrently.
// The result is keyed by item index; items that are not task documents are absent.
func (l *Loader) readIncludes(
	ctx context.Context,
	docPath string,
	items []*yaml.Node,
	chain []string,
) (map[int]include, error) {
	var (
		mu       sync.Mutex
		includes = make(map[int]include)
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)

	for i, item := range items {
		path, ok := includePath(item, docPath)
		if !ok {
			continue
		}
		if slices.Contains(chain, path) {
			_ = g.Wait()
			err := zerr.With(domain.ErrIncludeCycle, "path", path)
			return nil, zerr.With(err, "chain", describeChain(append(slices.Clone(chain), path)))
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := readDocument(path)
			if err != nil {
				return zerr.With(err, "included_from", docPath)
			}
			mu.Lock()
			includes[i] = include{path: path, doc: doc}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return includes, nil
}
