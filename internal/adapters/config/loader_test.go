package config_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/Guardsquare/proguard-sub005/internal/adapters/config"
	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"github.com/Guardsquare/proguard-sub005/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func load(t *testing.T, content string) (*domain.Configuration, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.TaskFileName)
	createFile(t, path, content)

	loader, _ := newLoader(t)
	cfg, err := loader.Load(context.Background(), path, ports.LoadOptions{})
	require.NoError(t, err)
	return cfg, dir
}

func TestLoader_Load_BaseDir(t *testing.T) {
	t.Run("defaults to document directory", func(t *testing.T) {
		cfg, dir := load(t, "injars: in.jar\n")
		assert.Equal(t, dir, cfg.BaseDir())
	})

	t.Run("relative to document directory", func(t *testing.T) {
		cfg, dir := load(t, "baseDir: build/work\n")
		assert.Equal(t, filepath.Join(dir, "build", "work"), cfg.BaseDir())
	})

	t.Run("absolute", func(t *testing.T) {
		cfg, _ := load(t, "baseDir: /opt/app/../work\n")
		assert.Equal(t, "/opt/work", cfg.BaseDir())
	})
}

func TestLoader_Load_EntryShapes(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		cfg, dir := load(t, "injars: in.jar\noutjars: out/app.jar\n")

		raw := *cfg.InputClassPath().RawEntries()
		require.Len(t, raw, 1)
		assert.Equal(t, domain.KindPath, raw[0].Kind())
		assert.Equal(t, []string{filepath.Join(dir, "in.jar")}, cfg.InputClassPath().ResolvedFiles(cfg.BaseDir()))
		assert.Equal(t, []string{filepath.Join(dir, "out", "app.jar")}, cfg.OutputClassPath().ResolvedFiles(cfg.BaseDir()))
	})

	t.Run("sequence is flattened one level", func(t *testing.T) {
		cfg, dir := load(t, `
injars:
  - a.jar
  - [b.jar, c.jar]
  - d.jar
`)

		raw := *cfg.InputClassPath().RawEntries()
		require.Len(t, raw, 3)
		assert.Equal(t, domain.KindPath, raw[0].Kind())
		assert.Equal(t, domain.KindCollection, raw[1].Kind())
		assert.Len(t, raw[1].Items(), 2)
		assert.Equal(t, domain.KindPath, raw[2].Kind())

		assert.Equal(t, []string{
			filepath.Join(dir, "a.jar"),
			filepath.Join(dir, "b.jar"),
			filepath.Join(dir, "c.jar"),
			filepath.Join(dir, "d.jar"),
		}, cfg.InputClassPath().ResolvedFiles(cfg.BaseDir()))
	})

	t.Run("file tag is taken verbatim", func(t *testing.T) {
		cfg, _ := load(t, "baseDir: /work\nlibraryjars: !file jmods/java.base.jmod\n")

		raw := *cfg.LibraryClassPath().RawEntries()
		require.Len(t, raw, 1)
		assert.Equal(t, domain.KindFile, raw[0].Kind())
		assert.Equal(t, []string{"jmods/java.base.jmod"}, cfg.LibraryClassPath().ResolvedFiles(cfg.BaseDir()))
	})

	t.Run("mapping with single filter", func(t *testing.T) {
		cfg, _ := load(t, `
baseDir: /work
injars:
  - path: lib/a.jar
    filter: "!META-INF/**"
`)

		var got []domain.ResolvedEntry
		for r := range cfg.InputClassPath().Resolved(cfg.BaseDir()) {
			got = append(got, r)
		}
		require.Len(t, got, 1)
		assert.Equal(t, "/work/lib/a.jar", got[0].Path)
		pattern, ok := got[0].Filter.Get(domain.FilterDefault)
		assert.True(t, ok)
		assert.Equal(t, "!META-INF/**", pattern)
	})

	t.Run("mapping with categories wraps a collection", func(t *testing.T) {
		cfg, _ := load(t, `
baseDir: /work
injars:
  path: [a.jar, b.jar]
  filters:
    jarfilter: "com/**"
    zipfilter: "*.zip"
`)

		raw := *cfg.InputClassPath().RawEntries()
		require.Len(t, raw, 1)
		assert.Equal(t, domain.KindFiltered, raw[0].Kind())

		fe, ok := raw[0].FilteredEntry()
		require.True(t, ok)
		assert.Equal(t, domain.KindCollection, fe.Entry().Kind())
		assert.Equal(t, []string{domain.FilterJar, domain.FilterZip}, fe.Filter().Categories())

		assert.Equal(t, []string{"/work/a.jar", "/work/b.jar"}, cfg.InputClassPath().ResolvedFiles(cfg.BaseDir()))
	})

	t.Run("unknown filter category is kept with a warning", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, domain.TaskFileName)
		createFile(t, path, "injars:\n  path: a.jar\n  filters:\n    classfilter: x\n")

		loader, log := newLoader(t)
		log.EXPECT().Warn(gomock.Any()).Times(1)

		cfg, err := loader.Load(context.Background(), path, ports.LoadOptions{})
		require.NoError(t, err)

		raw := *cfg.InputClassPath().RawEntries()
		require.Len(t, raw, 1)
		fe, ok := raw[0].FilteredEntry()
		require.True(t, ok)
		pattern, ok := fe.Filter().Get("classfilter")
		assert.True(t, ok)
		assert.Equal(t, "x", pattern)
	})

	t.Run("null entries are skipped", func(t *testing.T) {
		cfg, _ := load(t, "injars: [a.jar, ~]\noutjars: ~\n")

		assert.Equal(t, 1, cfg.InputClassPath().Len())
		assert.Equal(t, 0, cfg.OutputClassPath().Len())
	})

	t.Run("anchors resolve to the same entries", func(t *testing.T) {
		cfg, _ := load(t, "baseDir: /work\ninjars: &jars [a.jar, b.jar]\nlibraryjars: *jars\n")

		assert.Equal(t,
			cfg.InputClassPath().ResolvedFiles(cfg.BaseDir()),
			cfg.LibraryClassPath().ResolvedFiles(cfg.BaseDir()))
	})
}

func TestLoader_Load_Options(t *testing.T) {
	const mapping = `
baseDir: /work
options:
  dontobfuscate:
  dontoptimize: true
  optimizationpasses: 5
  target: "1.8"
  repackageclasses: ""
  dontwarn: ["com.example.**", "org.sample.*,net.**"]
  keepattributes: []
  printmapping: mapping.txt
  printseeds: true
  applymapping: !file /old/mapping.txt
`
	const sequence = `
baseDir: /work
options:
  - dontobfuscate
  - -dontoptimize
  - optimizationpasses: 5
  - target: "1.8"
  - repackageclasses: ""
  - dontwarn: ["com.example.**", "org.sample.*,net.**"]
  - keepattributes: []
  - printmapping: mapping.txt
  - printseeds
  - applymapping: !file /old/mapping.txt
`

	for name, content := range map[string]string{"mapping": mapping, "sequence": sequence} {
		t.Run(name, func(t *testing.T) {
			cfg, _ := load(t, content)

			flags := cfg.Flags()
			assert.False(t, flags.Obfuscate)
			assert.False(t, flags.Optimize)
			assert.True(t, flags.Shrink)
			assert.Equal(t, 5, flags.OptimizationPasses)

			target, ok := flags.Target.Get()
			assert.True(t, ok)
			assert.Equal(t, "1.8", target)

			pkg, ok := flags.RepackageClasses.Get()
			assert.True(t, ok)
			assert.Empty(t, pkg)
			assert.False(t, flags.FlattenPackageHierarchy.IsSet())

			assert.Equal(t, []string{"com.example.**", "org.sample.*", "net.**"}, cfg.List(domain.ListDontWarn).Patterns())
			assert.True(t, cfg.List(domain.ListKeepAttributes).IsSet())
			assert.Empty(t, cfg.List(domain.ListKeepAttributes).Patterns())
			assert.False(t, cfg.List(domain.ListDontNote).IsSet())

			mappingOut, ok := cfg.ResolvedOutputFile(domain.OutputPrintMapping)
			assert.True(t, ok)
			assert.Equal(t, "/work/mapping.txt", mappingOut)
			assert.True(t, cfg.Output(domain.OutputPrintSeeds).IsStandardStream())
			assert.True(t, cfg.Output(domain.OutputPrintUsage).IsUnset())

			applied, ok := cfg.InputFile(domain.InputApplyMapping)
			assert.True(t, ok)
			assert.Equal(t, "/old/mapping.txt", applied)
		})
	}

	t.Run("false is skipped with a warning", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, domain.TaskFileName)
		createFile(t, path, "options:\n  dontshrink: false\n")

		loader, log := newLoader(t)
		log.EXPECT().Warn(gomock.Any()).Times(1)

		cfg, err := loader.Load(context.Background(), path, ports.LoadOptions{})
		require.NoError(t, err)
		assert.True(t, cfg.Flags().Shrink)
	})

	t.Run("scalars are passed as written", func(t *testing.T) {
		cfg, _ := load(t, `
baseDir: /work
options:
  printmapping: 2024-01-01
  target: 1.10
  renamesourcefileattribute: 0x1F
  flattenpackagehierarchy: 010
`)

		mappingOut, ok := cfg.ResolvedOutputFile(domain.OutputPrintMapping)
		assert.True(t, ok)
		assert.Equal(t, "/work/2024-01-01", mappingOut)

		flags := cfg.Flags()
		target, _ := flags.Target.Get()
		assert.Equal(t, "1.10", target)
		attr, _ := flags.RenameSourceFileAttribute.Get()
		assert.Equal(t, "0x1F", attr)
		pkg, _ := flags.FlattenPackageHierarchy.Get()
		assert.Equal(t, "010", pkg)
	})

	t.Run("options may add entries", func(t *testing.T) {
		cfg, _ := load(t, `
baseDir: /work
injars: a.jar
options:
  injars:
    path: b.jar
    filter: "**.class"
`)

		assert.Equal(t, []string{"/work/a.jar", "/work/b.jar"}, cfg.InputClassPath().ResolvedFiles(cfg.BaseDir()))
	})
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "invalid yaml",
			content: "injars: [a.jar\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown directive",
			content: "options:\n  frobnicate: true\n",
			wantErr: domain.ErrUnknownDirective,
		},
		{
			name:    "missing required argument",
			content: "options:\n  - target\n",
			wantErr: domain.ErrInvalidDirectiveArgs,
		},
		{
			name:    "non numeric optimization passes",
			content: "options:\n  optimizationpasses: many\n",
			wantErr: domain.ErrInvalidDirectiveArgs,
		},
		{
			name:    "out of range optimization passes",
			content: "options:\n  optimizationpasses: 1e300\n",
			wantErr: domain.ErrInvalidDirectiveArgs,
		},
		{
			name:    "hex optimization passes",
			content: "options:\n  optimizationpasses: 0x1F\n",
			wantErr: domain.ErrInvalidDirectiveArgs,
		},
		{
			name:    "entry mapping without path",
			content: "injars:\n  filter: \"**\"\n",
			wantErr: domain.ErrInvalidEntryNode,
		},
		{
			name:    "entry mapping with unknown key",
			content: "injars:\n  path: a.jar\n  pattern: \"**\"\n",
			wantErr: domain.ErrInvalidEntryNode,
		},
		{
			name:    "filter given as a list",
			content: "injars:\n  path: a.jar\n  filter: [a, b]\n",
			wantErr: domain.ErrUnsupportedFilterType,
		},
		{
			name:    "options as scalar",
			content: "options: dontshrink\n",
			wantErr: domain.ErrInvalidOptionNode,
		},
		{
			name:    "option mapping with several keys in a sequence",
			content: "options:\n  - dontshrink: true\n    dontoptimize: true\n",
			wantErr: domain.ErrInvalidOptionNode,
		},
		{
			name:    "nested sequence in options",
			content: "options:\n  - [dontshrink]\n",
			wantErr: domain.ErrInvalidOptionNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, domain.TaskFileName)
			createFile(t, path, tt.content)

			loader, log := newLoader(t)
			log.EXPECT().Warn(gomock.Any()).AnyTimes()

			_, err := loader.Load(context.Background(), path, ports.LoadOptions{})
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}

	t.Run("missing document", func(t *testing.T) {
		loader, _ := newLoader(t)
		_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"), ports.LoadOptions{})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
	})
}

func TestLoader_Load_Configuration(t *testing.T) {
	const root = `
baseDir: /work
injars: app.jar
configuration:
  - rules.pro
  - shared/common.yaml
`
	const common = `
injars: common.jar
options:
  dontwarn: "com.common.**"
configuration: more.pro
`

	setup := func(t *testing.T) string {
		t.Helper()
		dir := t.TempDir()
		createFile(t, filepath.Join(dir, domain.TaskFileName), root)
		createFile(t, filepath.Join(dir, "shared", "common.yaml"), common)
		return dir
	}

	t.Run("references are kept without includes", func(t *testing.T) {
		dir := setup(t)
		loader, _ := newLoader(t)
		path := filepath.Join(dir, domain.TaskFileName)

		cfg, err := loader.Load(context.Background(), path, ports.LoadOptions{})
		require.NoError(t, err)

		assert.Equal(t, []string{"/work/rules.pro", "/work/shared/common.yaml"},
			cfg.ConfigurationFiles().ResolvedFiles(cfg.BaseDir()))
		assert.Equal(t, []string{"/work/app.jar"}, cfg.InputClassPath().ResolvedFiles(cfg.BaseDir()))
		assert.False(t, cfg.List(domain.ListDontWarn).IsSet())
		assert.Equal(t, []string{path}, loader.Sources())
	})

	t.Run("task documents are applied in place with includes", func(t *testing.T) {
		dir := setup(t)
		loader, _ := newLoader(t)
		path := filepath.Join(dir, domain.TaskFileName)

		cfg, err := loader.Load(context.Background(), path, ports.LoadOptions{FollowIncludes: true})
		require.NoError(t, err)

		assert.Equal(t, []string{"/work/rules.pro", "/work/more.pro"},
			cfg.ConfigurationFiles().ResolvedFiles(cfg.BaseDir()))
		assert.Equal(t, []string{"/work/app.jar", "/work/common.jar"},
			cfg.InputClassPath().ResolvedFiles(cfg.BaseDir()))
		assert.Equal(t, []string{"com.common.**"}, cfg.List(domain.ListDontWarn).Patterns())
		assert.Equal(t, []string{path, filepath.Join(dir, "shared", "common.yaml")}, loader.Sources())
	})

	t.Run("baseDir of an included document is ignored", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, domain.TaskFileName)
		createFile(t, path, "configuration: nested.yml\n")
		createFile(t, filepath.Join(dir, "nested.yml"), "baseDir: /elsewhere\ninjars: a.jar\n")

		loader, log := newLoader(t)
		log.EXPECT().Warn(gomock.Any()).Times(1)

		cfg, err := loader.Load(context.Background(), path, ports.LoadOptions{FollowIncludes: true})
		require.NoError(t, err)
		assert.Equal(t, dir, cfg.BaseDir())
		assert.Equal(t, []string{filepath.Join(dir, "a.jar")}, cfg.InputClassPath().ResolvedFiles(cfg.BaseDir()))
	})

	t.Run("include cycle", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, domain.TaskFileName)
		createFile(t, path, "configuration: a.yaml\n")
		createFile(t, filepath.Join(dir, "a.yaml"), "configuration: b.yaml\n")
		createFile(t, filepath.Join(dir, "b.yaml"), "configuration: a.yaml\n")

		loader, _ := newLoader(t)
		_, err := loader.Load(context.Background(), path, ports.LoadOptions{FollowIncludes: true})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrIncludeCycle.Error())
	})

	t.Run("missing include", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, domain.TaskFileName)
		createFile(t, path, "configuration: [absent.yaml]\n")

		loader, _ := newLoader(t)
		_, err := loader.Load(context.Background(), path, ports.LoadOptions{FollowIncludes: true})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
	})

	t.Run("sources keep read order", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, domain.TaskFileName)
		names := []string{"one.yaml", "two.yaml", "three.yaml", "four.yaml"}
		createFile(t, path, "configuration: [one.yaml, two.yaml, three.yaml, four.yaml]\n")
		for _, n := range names {
			createFile(t, filepath.Join(dir, n), "injars: "+n+".jar\n")
		}

		loader, _ := newLoader(t)
		cfg, err := loader.Load(context.Background(), path, ports.LoadOptions{FollowIncludes: true})
		require.NoError(t, err)

		want := []string{path}
		for _, n := range names {
			want = append(want, filepath.Join(dir, n))
		}
		assert.Equal(t, want, loader.Sources())
		assert.Equal(t, 4, cfg.InputClassPath().Len())

		sources := loader.Sources()
		sources[0] = "changed"
		assert.True(t, slices.Equal(want, loader.Sources()))
	})
}
