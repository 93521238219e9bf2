package domain

import "iter"

// Record is the frozen configuration handed to the processing engine.
// It is created by Configuration.Freeze and never changes afterwards.
type Record struct {
	baseDir string

	injars        []Entry
	outjars       []Entry
	libraryjars   []Entry
	configuration []Entry

	flags      Flags
	lists      [numListKeys]FilterList
	outputs    [numOutputKeys]OutputTarget
	inputFiles [numInputFileKeys]OptionalString
}

// BaseDir returns the directory relative paths are anchored at.
func (r *Record) BaseDir() string {
	return r.baseDir
}

// InJars returns a copy of the raw input classpath entries.
func (r *Record) InJars() []Entry {
	return cloneEntries(r.injars)
}

// OutJars returns a copy of the raw output classpath entries.
func (r *Record) OutJars() []Entry {
	return cloneEntries(r.outjars)
}

// LibraryJars returns a copy of the raw library classpath entries.
func (r *Record) LibraryJars() []Entry {
	return cloneEntries(r.libraryjars)
}

// ConfigurationFiles returns a copy of the raw configuration file references.
func (r *Record) ConfigurationFiles() []Entry {
	return cloneEntries(r.configuration)
}

// ResolvedInJars yields the input classpath anchored at the base directory.
func (r *Record) ResolvedInJars() iter.Seq[ResolvedEntry] {
	return resolveEntries(r.injars, r.baseDir)
}

// ResolvedOutJars yields the output classpath anchored at the base directory.
func (r *Record) ResolvedOutJars() iter.Seq[ResolvedEntry] {
	return resolveEntries(r.outjars, r.baseDir)
}

// ResolvedLibraryJars yields the library classpath anchored at the base directory.
func (r *Record) ResolvedLibraryJars() iter.Seq[ResolvedEntry] {
	return resolveEntries(r.libraryjars, r.baseDir)
}

// ResolvedConfigurationFiles returns the configuration files anchored at the base directory.
func (r *Record) ResolvedConfigurationFiles() []string {
	return resolvedPaths(r.configuration, r.baseDir)
}

// Flags returns the scalar settings.
func (r *Record) Flags() Flags {
	return r.flags
}

// FilterPatterns returns a copy of a filter list and whether it was ever touched.
func (r *Record) FilterPatterns(key ListKey) ([]string, bool) {
	l := r.lists[key]
	return l.Patterns(), l.IsSet()
}

// Output returns the destination of a report.
func (r *Record) Output(key OutputKey) OutputTarget {
	return r.outputs[key]
}

// InputFile returns an optional input file.
func (r *Record) InputFile(key InputFileKey) (string, bool) {
	return r.inputFiles[key].Get()
}

// InputFiles returns every file the engine reads: input and library
// classpath, configuration files, then the optional input files.
func (r *Record) InputFiles() []string {
	res := resolvedPaths(r.injars, r.baseDir)
	res = append(res, resolvedPaths(r.libraryjars, r.baseDir)...)
	res = append(res, resolvedPaths(r.configuration, r.baseDir)...)
	for _, key := range InputFileKeys() {
		if p, ok := r.InputFile(key); ok {
			res = append(res, p)
		}
	}
	return res
}

// OutputFiles returns every file the engine writes: the output classpath,
// then each report directed to a file. Reports on standard output are skipped.
func (r *Record) OutputFiles() []string {
	res := resolvedPaths(r.outjars, r.baseDir)
	for _, key := range OutputKeys() {
		if p, ok := r.outputs[key].ResolvedFileOrNull(); ok {
			res = append(res, p)
		}
	}
	return res
}
