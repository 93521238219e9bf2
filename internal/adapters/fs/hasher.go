package fs

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"iter"
	"os"
	"strconv"

	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// maxConcurrentHashes bounds the number of files hashed at the same time.
const maxConcurrentHashes = 8

// missingMarker stands in for the content of a file that does not exist.
const missingMarker = "\x00missing"

// Fingerprinter computes XXHash digests of frozen configurations.
type Fingerprinter struct {
	walker *Walker
}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter(walker *Walker) *Fingerprinter {
	return &Fingerprinter{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (f *Fingerprinter) ComputeFileHash(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // Path comes from the configuration
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return h.Sum64(), nil
}

// Fingerprint hashes every setting of rec. Entries are hashed in their
// resolved form, so equivalent spellings of the same path agree.
func (f *Fingerprinter) Fingerprint(rec *domain.Record) (string, error) {
	h := xxhash.New()
	hashRecord(rec, h)
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// FingerprintInputs hashes rec together with the content of every input file.
// Directories contribute each file below them.
func (f *Fingerprinter) FingerprintInputs(ctx context.Context, rec *domain.Record) (string, error) {
	files, err := f.expandInputs(rec.InputFiles())
	if err != nil {
		return "", err
	}

	sums := make([]uint64, len(files))
	present := make([]bool, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentHashes)
	for i, path := range files {
		if path.missing {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum, err := f.ComputeFileHash(path.name)
			if err != nil {
				return zerr.Wrap(err, domain.ErrFingerprintFailed.Error())
			}
			sums[i], present[i] = sum, true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	h := xxhash.New()
	hashRecord(rec, h)
	for i, path := range files {
		_, _ = h.WriteString(path.name)
		_, _ = h.Write([]byte{0})
		if !present[i] {
			_, _ = h.WriteString(missingMarker)
			continue
		}
		if err := binary.Write(h, binary.LittleEndian, sums[i]); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

type inputFile struct {
	name    string
	missing bool
}

// expandInputs replaces directories by the files below them.
func (f *Fingerprinter) expandInputs(paths []string) ([]inputFile, error) {
	files := make([]inputFile, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, iofs.ErrNotExist):
			files = append(files, inputFile{name: path, missing: true})
		case err != nil:
			err = zerr.Wrap(zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path), domain.ErrFingerprintFailed.Error())
			return nil, err
		case info.IsDir():
			for file := range f.walker.WalkFiles(path) {
				files = append(files, inputFile{name: file})
			}
		default:
			files = append(files, inputFile{name: path})
		}
	}
	return files, nil
}

// hashRecord writes a canonical form of rec. Every field is terminated by a
// zero byte and every section by a second one.
func hashRecord(rec *domain.Record, h *xxhash.Digest) {
	field := func(s string) {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}
	section := func() {
		_, _ = h.Write([]byte{0})
	}

	field(rec.BaseDir())
	section()

	for _, list := range []iter.Seq[domain.ResolvedEntry]{
		rec.ResolvedInJars(),
		rec.ResolvedOutJars(),
		rec.ResolvedLibraryJars(),
	} {
		for e := range list {
			field(e.Path)
			categories := e.Filter.Categories()
			field(strconv.Itoa(len(categories)))
			for _, c := range categories {
				pattern, _ := e.Filter.Get(c)
				field(c)
				field(pattern)
			}
		}
		section()
	}

	for _, p := range rec.ResolvedConfigurationFiles() {
		field(p)
	}
	section()

	field(fmt.Sprintf("%+v", rec.Flags()))
	section()

	for _, key := range domain.ListKeys() {
		patterns, ok := rec.FilterPatterns(key)
		if !ok {
			continue
		}
		field(key.String())
		for _, p := range patterns {
			field(p)
		}
		section()
	}
	section()

	for _, key := range domain.OutputKeys() {
		target := rec.Output(key)
		if target.IsUnset() {
			continue
		}
		field(key.String())
		field(target.State().String())
		field(target.String())
	}
	section()

	for _, key := range domain.InputFileKeys() {
		if p, ok := rec.InputFile(key); ok {
			field(key.String())
			field(p)
		}
	}
	section()
}
