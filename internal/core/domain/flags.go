package domain

// OptionalString is a string setting that may be unset or set, possibly to "".
type OptionalString struct {
	set   bool
	value string
}

// SomeString returns a set OptionalString.
func SomeString(v string) OptionalString {
	return OptionalString{set: true, value: v}
}

// Get returns the value and whether it was set.
func (o OptionalString) Get() (string, bool) {
	return o.value, o.set
}

// IsSet reports whether the value was set.
func (o OptionalString) IsSet() bool {
	return o.set
}

// Flags holds the scalar processing settings of a configuration.
// Every field is independent; no setter changes more than one of them.
type Flags struct {
	Shrink                           bool
	Optimize                         bool
	Obfuscate                        bool
	Preverify                        bool
	SkipNonPublicLibraryClasses      bool
	SkipNonPublicLibraryClassMembers bool
	IgnoreWarnings                   bool
	Verbose                          bool
	AllowAccessModification          bool
	MergeInterfacesAggressively      bool
	OverloadAggressively             bool
	UseUniqueClassMemberNames        bool
	UseMixedCaseClassNames           bool
	KeepParameterNames               bool
	MicroEdition                     bool
	Android                          bool
	AddConfigurationDebugging        bool
	OptimizeAggressively             bool
	KeepKotlinMetadata               bool
	DontProcessKotlinMetadata        bool

	// OptimizationPasses is the number of optimization passes.
	OptimizationPasses int
	// Target is the class file version of processed classes.
	Target OptionalString
	// FlattenPackageHierarchy moves renamed packages into the given parent package.
	FlattenPackageHierarchy OptionalString
	// RepackageClasses moves renamed classes into the given package.
	RepackageClasses OptionalString
	// RenameSourceFileAttribute replaces the source file attribute of classes.
	RenameSourceFileAttribute OptionalString
}

// DefaultFlags returns the settings of a fresh configuration.
func DefaultFlags() Flags {
	return Flags{
		Shrink:                           true,
		Optimize:                         true,
		Obfuscate:                        true,
		Preverify:                        true,
		SkipNonPublicLibraryClassMembers: true,
		UseMixedCaseClassNames:           true,
		OptimizationPasses:               1,
	}
}

// InputFileKey names one of the optional input files of a configuration.
type InputFileKey uint8

const (
	// InputApplyMapping is a previous obfuscation mapping to reuse.
	InputApplyMapping InputFileKey = iota
	// InputObfuscationDictionary lists names for fields and methods.
	InputObfuscationDictionary
	// InputClassObfuscationDictionary lists names for classes.
	InputClassObfuscationDictionary
	// InputPackageObfuscationDictionary lists names for packages.
	InputPackageObfuscationDictionary

	numInputFileKeys
)

var inputFileKeyNames = [numInputFileKeys]string{
	InputApplyMapping:                 "applymapping",
	InputObfuscationDictionary:        "obfuscationdictionary",
	InputClassObfuscationDictionary:   "classobfuscationdictionary",
	InputPackageObfuscationDictionary: "packageobfuscationdictionary",
}

// InputFileKeys returns every input file key in declaration order.
func InputFileKeys() []InputFileKey {
	keys := make([]InputFileKey, 0, numInputFileKeys)
	for k := range numInputFileKeys {
		keys = append(keys, k)
	}
	return keys
}

// String returns the directive name of the key.
func (k InputFileKey) String() string {
	if k >= numInputFileKeys {
		return "unknown"
	}
	return inputFileKeyNames[k]
}
