package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedEntryType is returned when a value cannot be used as a classpath or configuration entry.
	ErrUnsupportedEntryType = zerr.New("unsupported entry type")

	// ErrUnknownDirective is returned when a directive name is not known to the configuration DSL.
	ErrUnknownDirective = zerr.New("unknown directive")

	// ErrInvalidDirectiveArgs is returned when a directive is called with the wrong number or kind of arguments.
	ErrInvalidDirectiveArgs = zerr.New("invalid directive arguments")

	// ErrUnsupportedFilterType is returned when a filter value is neither a pattern nor a category mapping.
	ErrUnsupportedFilterType = zerr.New("unsupported filter type")

	// ErrConfigReadFailed is returned when a task document cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a task document cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidEntryNode is returned when a document node cannot be turned into an entry.
	ErrInvalidEntryNode = zerr.New("invalid entry in config file")

	// ErrInvalidOptionNode is returned when an options item is neither a name nor a single-key mapping.
	ErrInvalidOptionNode = zerr.New("invalid option in config file")

	// ErrIncludeCycle is returned when nested configuration documents include each other.
	ErrIncludeCycle = zerr.New("configuration include cycle detected")

	// ErrWatchFailed is returned when task documents cannot be watched for changes.
	ErrWatchFailed = zerr.New("failed to watch task documents")

	// ErrFingerprintFailed is returned when an input file cannot be hashed.
	ErrFingerprintFailed = zerr.New("failed to fingerprint configuration")

	// ErrMissingInputs is returned when files the configuration reads do not exist.
	ErrMissingInputs = zerr.New("input files are missing")

	// ErrRenderFailed is returned when a frozen configuration cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render configuration")
)
