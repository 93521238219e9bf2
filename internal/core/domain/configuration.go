package domain

// Configuration accumulates the settings of one processing task.
//
// It is mutated freely while the build script runs and then frozen into a
// Record for the processing engine. Nothing is validated here: bad paths and
// malformed filters are reported by the engine when it uses them.
// A Configuration is owned by a single task and is not safe for concurrent use.
type Configuration struct {
	baseDir string

	injars        EntryList
	outjars       EntryList
	libraryjars   EntryList
	configuration EntryList

	flags      Flags
	lists      [numListKeys]FilterList
	outputs    [numOutputKeys]OutputTarget
	inputFiles [numInputFileKeys]OptionalString
}

// NewConfiguration creates a configuration whose relative paths are anchored at baseDir.
func NewConfiguration(baseDir string) *Configuration {
	return &Configuration{
		baseDir: baseDir,
		flags:   DefaultFlags(),
	}
}

// BaseDir returns the directory relative paths are anchored at.
func (c *Configuration) BaseDir() string {
	return c.baseDir
}

// InJars appends input classpath entries.
func (c *Configuration) InJars(item Entry) {
	c.injars.Append(item)
}

// InJarsFiltered appends an input classpath entry with a filter.
func (c *Configuration) InJarsFiltered(item Entry, filter Filter) {
	c.injars.AppendFiltered(item, filter)
}

// OutJars appends output classpath entries.
func (c *Configuration) OutJars(item Entry) {
	c.outjars.Append(item)
}

// OutJarsFiltered appends an output classpath entry with a filter.
func (c *Configuration) OutJarsFiltered(item Entry, filter Filter) {
	c.outjars.AppendFiltered(item, filter)
}

// LibraryJars appends library classpath entries.
func (c *Configuration) LibraryJars(item Entry) {
	c.libraryjars.Append(item)
}

// LibraryJarsFiltered appends a library classpath entry with a filter.
func (c *Configuration) LibraryJarsFiltered(item Entry, filter Filter) {
	c.libraryjars.AppendFiltered(item, filter)
}

// IncludeConfiguration appends references to configuration files.
func (c *Configuration) IncludeConfiguration(item Entry) {
	c.configuration.Append(item)
}

// InputClassPath returns the live input classpath list.
func (c *Configuration) InputClassPath() *EntryList {
	return &c.injars
}

// OutputClassPath returns the live output classpath list.
func (c *Configuration) OutputClassPath() *EntryList {
	return &c.outjars
}

// LibraryClassPath returns the live library classpath list.
func (c *Configuration) LibraryClassPath() *EntryList {
	return &c.libraryjars
}

// ConfigurationFiles returns the live list of configuration file references.
func (c *Configuration) ConfigurationFiles() *EntryList {
	return &c.configuration
}

// Flags returns a copy of the scalar settings.
func (c *Configuration) Flags() Flags {
	return c.flags
}

// DontShrink disables shrinking.
func (c *Configuration) DontShrink() { c.flags.Shrink = false }

// DontOptimize disables optimization.
func (c *Configuration) DontOptimize() { c.flags.Optimize = false }

// DontObfuscate disables obfuscation.
func (c *Configuration) DontObfuscate() { c.flags.Obfuscate = false }

// DontPreverify disables preverification.
func (c *Configuration) DontPreverify() { c.flags.Preverify = false }

// SkipNonPublicLibraryClasses ignores non-public library classes.
func (c *Configuration) SkipNonPublicLibraryClasses() { c.flags.SkipNonPublicLibraryClasses = true }

// DontSkipNonPublicLibraryClasses reads non-public library classes.
func (c *Configuration) DontSkipNonPublicLibraryClasses() { c.flags.SkipNonPublicLibraryClasses = false }

// DontSkipNonPublicLibraryClassMembers reads non-public library class members.
func (c *Configuration) DontSkipNonPublicLibraryClassMembers() {
	c.flags.SkipNonPublicLibraryClassMembers = false
}

// IgnoreWarnings continues processing despite warnings.
func (c *Configuration) IgnoreWarnings() { c.flags.IgnoreWarnings = true }

// Verbose enables verbose engine output.
func (c *Configuration) Verbose() { c.flags.Verbose = true }

// AllowAccessModification lets the optimizer widen access modifiers.
func (c *Configuration) AllowAccessModification() { c.flags.AllowAccessModification = true }

// MergeInterfacesAggressively lets the optimizer merge interfaces even if it hurts performance.
func (c *Configuration) MergeInterfacesAggressively() { c.flags.MergeInterfacesAggressively = true }

// OverloadAggressively lets the obfuscator reuse names across member types.
func (c *Configuration) OverloadAggressively() { c.flags.OverloadAggressively = true }

// UseUniqueClassMemberNames gives equal members equal obfuscated names.
func (c *Configuration) UseUniqueClassMemberNames() { c.flags.UseUniqueClassMemberNames = true }

// DontUseMixedCaseClassNames keeps obfuscated class names lower case.
func (c *Configuration) DontUseMixedCaseClassNames() { c.flags.UseMixedCaseClassNames = false }

// KeepParameterNames keeps parameter names of kept methods.
func (c *Configuration) KeepParameterNames() { c.flags.KeepParameterNames = true }

// MicroEdition targets Java Micro Edition.
func (c *Configuration) MicroEdition() { c.flags.MicroEdition = true }

// Android targets Android.
func (c *Configuration) Android() { c.flags.Android = true }

// AddConfigurationDebugging instruments the code to report missing keep rules.
func (c *Configuration) AddConfigurationDebugging() { c.flags.AddConfigurationDebugging = true }

// OptimizeAggressively enables optimizations that may change behavior in corner cases.
func (c *Configuration) OptimizeAggressively() { c.flags.OptimizeAggressively = true }

// KeepKotlinMetadata keeps Kotlin metadata of kept classes.
func (c *Configuration) KeepKotlinMetadata() { c.flags.KeepKotlinMetadata = true }

// DontProcessKotlinMetadata leaves Kotlin metadata untouched.
func (c *Configuration) DontProcessKotlinMetadata() { c.flags.DontProcessKotlinMetadata = true }

// OptimizationPasses sets the number of optimization passes.
func (c *Configuration) OptimizationPasses(n int) { c.flags.OptimizationPasses = n }

// Target sets the class file version of processed classes.
func (c *Configuration) Target(version string) { c.flags.Target = SomeString(version) }

// FlattenPackageHierarchy moves renamed packages into pkg; "" means the root package.
func (c *Configuration) FlattenPackageHierarchy(pkg string) {
	c.flags.FlattenPackageHierarchy = SomeString(pkg)
}

// RepackageClasses moves renamed classes into pkg; "" means the root package.
func (c *Configuration) RepackageClasses(pkg string) { c.flags.RepackageClasses = SomeString(pkg) }

// RenameSourceFileAttribute replaces the source file attribute; "" clears it.
func (c *Configuration) RenameSourceFileAttribute(name string) {
	c.flags.RenameSourceFileAttribute = SomeString(name)
}

// TouchList initializes a filter list if needed and appends patterns to it.
func (c *Configuration) TouchList(key ListKey, patterns ...string) {
	c.lists[key].Add(patterns...)
}

// List returns the live filter list for key.
func (c *Configuration) List(key ListKey) *FilterList {
	return &c.lists[key]
}

// DontWarn suppresses warnings for the given class filters, or for everything when none is given.
func (c *Configuration) DontWarn(patterns ...string) { c.TouchList(ListDontWarn, patterns...) }

// DontNote suppresses notes for the given class filters, or for everything when none is given.
func (c *Configuration) DontNote(patterns ...string) { c.TouchList(ListDontNote, patterns...) }

// KeepAttributes keeps the given attributes, or all of them when none is given.
func (c *Configuration) KeepAttributes(patterns ...string) {
	c.TouchList(ListKeepAttributes, patterns...)
}

// KeepPackageNames keeps the given package names, or all of them when none is given.
func (c *Configuration) KeepPackageNames(patterns ...string) {
	c.TouchList(ListKeepPackageNames, patterns...)
}

// KeepDirectories keeps the given directory entries, or all of them when none is given.
func (c *Configuration) KeepDirectories(patterns ...string) {
	c.TouchList(ListKeepDirectories, patterns...)
}

// AdaptClassStrings adapts class name strings in the given classes, or in all of them.
func (c *Configuration) AdaptClassStrings(patterns ...string) {
	c.TouchList(ListAdaptClassStrings, patterns...)
}

// AdaptResourceFileNames renames the given resource files, or all of them.
func (c *Configuration) AdaptResourceFileNames(patterns ...string) {
	c.TouchList(ListAdaptResourceFileNames, patterns...)
}

// AdaptResourceFileContents rewrites the given resource files, or all of them.
func (c *Configuration) AdaptResourceFileContents(patterns ...string) {
	c.TouchList(ListAdaptResourceFileContents, patterns...)
}

// Optimizations restricts optimization to the given filters.
func (c *Configuration) Optimizations(patterns ...string) {
	c.TouchList(ListOptimizations, patterns...)
}

// SetOutputToStandardStream directs a report to standard output.
func (c *Configuration) SetOutputToStandardStream(key OutputKey) {
	c.outputs[key] = StandardStream()
}

// SetOutputToFile directs a report to a file. A raw path is anchored at the
// base directory, a File is used as is. Any previous destination is dropped.
func (c *Configuration) SetOutputToFile(key OutputKey, p PathLike) {
	if p == nil {
		c.outputs[key] = OutputTarget{}
		return
	}
	c.outputs[key] = FilePath(p.Resolve(c.baseDir))
}

// Output returns the destination of a report.
func (c *Configuration) Output(key OutputKey) OutputTarget {
	return c.outputs[key]
}

// ResolvedOutputFile returns the file a report is written to, if it is written to a file.
func (c *Configuration) ResolvedOutputFile(key OutputKey) (string, bool) {
	return c.outputs[key].ResolvedFileOrNull()
}

// Dump writes the class file structure to standard output.
func (c *Configuration) Dump() { c.SetOutputToStandardStream(OutputDump) }

// DumpTo writes the class file structure to a file.
func (c *Configuration) DumpTo(p PathLike) { c.SetOutputToFile(OutputDump, p) }

// PrintConfiguration writes the expanded configuration to standard output.
func (c *Configuration) PrintConfiguration() { c.SetOutputToStandardStream(OutputPrintConfiguration) }

// PrintConfigurationTo writes the expanded configuration to a file.
func (c *Configuration) PrintConfigurationTo(p PathLike) {
	c.SetOutputToFile(OutputPrintConfiguration, p)
}

// PrintSeeds writes the seeds to standard output.
func (c *Configuration) PrintSeeds() { c.SetOutputToStandardStream(OutputPrintSeeds) }

// PrintSeedsTo writes the seeds to a file.
func (c *Configuration) PrintSeedsTo(p PathLike) { c.SetOutputToFile(OutputPrintSeeds, p) }

// PrintMapping writes the obfuscation mapping to standard output.
func (c *Configuration) PrintMapping() { c.SetOutputToStandardStream(OutputPrintMapping) }

// PrintMappingTo writes the obfuscation mapping to a file.
func (c *Configuration) PrintMappingTo(p PathLike) { c.SetOutputToFile(OutputPrintMapping, p) }

// PrintUsage writes the removed code to standard output.
func (c *Configuration) PrintUsage() { c.SetOutputToStandardStream(OutputPrintUsage) }

// PrintUsageTo writes the removed code to a file.
func (c *Configuration) PrintUsageTo(p PathLike) { c.SetOutputToFile(OutputPrintUsage, p) }

// SetInputFile sets one of the optional input files, anchored like SetOutputToFile.
func (c *Configuration) SetInputFile(key InputFileKey, p PathLike) {
	if p == nil {
		c.inputFiles[key] = OptionalString{}
		return
	}
	c.inputFiles[key] = SomeString(p.Resolve(c.baseDir))
}

// InputFile returns an optional input file.
func (c *Configuration) InputFile(key InputFileKey) (string, bool) {
	return c.inputFiles[key].Get()
}

// ApplyMapping reuses a previous obfuscation mapping.
func (c *Configuration) ApplyMapping(p PathLike) { c.SetInputFile(InputApplyMapping, p) }

// ObfuscationDictionary takes field and method names from a file.
func (c *Configuration) ObfuscationDictionary(p PathLike) {
	c.SetInputFile(InputObfuscationDictionary, p)
}

// ClassObfuscationDictionary takes class names from a file.
func (c *Configuration) ClassObfuscationDictionary(p PathLike) {
	c.SetInputFile(InputClassObfuscationDictionary, p)
}

// PackageObfuscationDictionary takes package names from a file.
func (c *Configuration) PackageObfuscationDictionary(p PathLike) {
	c.SetInputFile(InputPackageObfuscationDictionary, p)
}

// Freeze returns an immutable snapshot of the configuration.
// Later changes to the configuration do not affect the snapshot.
func (c *Configuration) Freeze() *Record {
	r := &Record{
		baseDir:       c.baseDir,
		injars:        cloneEntries(c.injars.entries),
		outjars:       cloneEntries(c.outjars.entries),
		libraryjars:   cloneEntries(c.libraryjars.entries),
		configuration: cloneEntries(c.configuration.entries),
		flags:         c.flags,
		outputs:       c.outputs,
		inputFiles:    c.inputFiles,
	}
	for i := range c.lists {
		r.lists[i] = c.lists[i].clone()
	}
	return r
}
