package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Guardsquare/proguard-sub005/internal/adapters/fs"
	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFingerprinter() *fs.Fingerprinter {
	return fs.NewFingerprinter(fs.NewWalker())
}

func baseConfiguration(baseDir string) *domain.Configuration {
	cfg := domain.NewConfiguration(baseDir)
	cfg.InJars(domain.EntryOf(domain.Path("in.jar")))
	cfg.OutJars(domain.EntryOf(domain.Path("out.jar")))
	cfg.LibraryJars(domain.EntryOf(domain.File("/jdk/rt.jar")))
	cfg.DontWarn("com.example.**")
	return cfg
}

func TestFingerprinter_Fingerprint_Stable(t *testing.T) {
	f := newFingerprinter()

	first, err := f.Fingerprint(baseConfiguration("/work").Freeze())
	require.NoError(t, err)
	second, err := f.Fingerprint(baseConfiguration("/work").Freeze())
	require.NoError(t, err)

	assert.Len(t, first, 16)
	assert.Equal(t, first, second)
}

func TestFingerprinter_Fingerprint_Equivalent(t *testing.T) {
	f := newFingerprinter()

	relative := domain.NewConfiguration("/work")
	relative.InJars(domain.EntryOf(domain.Path("lib/../in.jar")))

	absolute := domain.NewConfiguration("/work")
	absolute.InJars(domain.EntryOf(domain.File("/work/in.jar")))

	a, err := f.Fingerprint(relative.Freeze())
	require.NoError(t, err)
	b, err := f.Fingerprint(absolute.Freeze())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestFingerprinter_Fingerprint_Changes(t *testing.T) {
	f := newFingerprinter()
	base, err := f.Fingerprint(baseConfiguration("/work").Freeze())
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*domain.Configuration)
	}{
		{"flag", (*domain.Configuration).DontObfuscate},
		{"optimization passes", func(c *domain.Configuration) { c.OptimizationPasses(2) }},
		{"optional string", func(c *domain.Configuration) { c.RepackageClasses("") }},
		{"another injar", func(c *domain.Configuration) { c.InJars(domain.EntryOf(domain.Path("more.jar"))) }},
		{"filter", func(c *domain.Configuration) {
			c.InJarsFiltered(domain.EntryOf(domain.Path("in.jar")), domain.Pattern("!**.txt"))
		}},
		{"empty filter list", func(c *domain.Configuration) { c.KeepAttributes() }},
		{"filter list pattern", func(c *domain.Configuration) { c.DontWarn("org.**") }},
		{"output to stream", (*domain.Configuration).PrintMapping},
		{"output to file", func(c *domain.Configuration) { c.PrintMappingTo(domain.Path("mapping.txt")) }},
		{"input file", func(c *domain.Configuration) { c.ApplyMapping(domain.Path("old.txt")) }},
		{"configuration file", func(c *domain.Configuration) {
			c.IncludeConfiguration(domain.EntryOf(domain.Path("rules.pro")))
		}},
	}

	seen := map[string]string{base: "base"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfiguration("/work")
			tt.mutate(cfg)

			got, err := f.Fingerprint(cfg.Freeze())
			require.NoError(t, err)

			prev, dup := seen[got]
			assert.False(t, dup, "fingerprint collides with %s", prev)
			seen[got] = tt.name
		})
	}
}

func TestFingerprinter_Fingerprint_FilterCategoriesAreSeparate(t *testing.T) {
	f := newFingerprinter()

	categories := domain.NewConfiguration("/work")
	categories.InJarsFiltered(domain.EntryOf(domain.Path("in.jar")), domain.Filters(map[string]string{
		domain.FilterDefault: "a",
		domain.FilterJar:     "b",
	}))

	pattern := domain.NewConfiguration("/work")
	pattern.InJarsFiltered(domain.EntryOf(domain.Path("in.jar")), domain.Pattern("a, jarfilter=b"))

	a, err := f.Fingerprint(categories.Freeze())
	require.NoError(t, err)
	b, err := f.Fingerprint(pattern.Freeze())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestFingerprinter_FingerprintInputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in.jar"), "v1")
	writeFile(t, filepath.Join(dir, "classes", "com", "A.class"), "a")

	cfg := domain.NewConfiguration(dir)
	cfg.InJars(domain.EntryOf(domain.Path("in.jar")))
	cfg.InJars(domain.EntryOf(domain.Path("classes")))
	cfg.LibraryJars(domain.EntryOf(domain.Path("absent.jar")))
	rec := cfg.Freeze()

	f := newFingerprinter()
	ctx := context.Background()

	first, err := f.FingerprintInputs(ctx, rec)
	require.NoError(t, err)
	again, err := f.FingerprintInputs(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	settingsOnly, err := f.Fingerprint(rec)
	require.NoError(t, err)
	assert.NotEqual(t, settingsOnly, first)

	writeFile(t, filepath.Join(dir, "in.jar"), "v2")
	changedJar, err := f.FingerprintInputs(ctx, rec)
	require.NoError(t, err)
	assert.NotEqual(t, first, changedJar)

	writeFile(t, filepath.Join(dir, "classes", "com", "B.class"), "b")
	addedClass, err := f.FingerprintInputs(ctx, rec)
	require.NoError(t, err)
	assert.NotEqual(t, changedJar, addedClass)

	writeFile(t, filepath.Join(dir, "absent.jar"), "")
	created, err := f.FingerprintInputs(ctx, rec)
	require.NoError(t, err)
	assert.NotEqual(t, addedClass, created)
}

func TestFingerprinter_FingerprintInputs_Canceled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in.jar"), "jar")

	cfg := domain.NewConfiguration(dir)
	cfg.InJars(domain.EntryOf(domain.Path("in.jar")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newFingerprinter().FingerprintInputs(ctx, cfg.Freeze())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFingerprinter_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	writeFile(t, a, "same")
	writeFile(t, b, "same")

	f := newFingerprinter()
	ha, err := f.ComputeFileHash(a)
	require.NoError(t, err)
	hb, err := f.ComputeFileHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)

	require.NoError(t, os.Remove(b))
	_, err = f.ComputeFileHash(b)
	assert.ErrorContains(t, err, "failed to open file")
}
