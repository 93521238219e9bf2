package domain

// TargetState is the state of an optional report destination.
type TargetState uint8

const (
	// TargetUnset means the report is not produced.
	TargetUnset TargetState = iota
	// TargetStandardStream means the report is written to standard output.
	TargetStandardStream
	// TargetFile means the report is written to a file.
	TargetFile
)

// String returns the string representation of the TargetState.
func (s TargetState) String() string {
	switch s {
	case TargetStandardStream:
		return "stdout"
	case TargetFile:
		return "file"
	default:
		return "unset"
	}
}

// OutputTarget is the destination of one optional report: unset, standard output, or a file.
// The zero value is unset.
type OutputTarget struct {
	state TargetState
	path  string
}

// StandardStream returns a target that writes to standard output.
func StandardStream() OutputTarget {
	return OutputTarget{state: TargetStandardStream}
}

// FilePath returns a target that writes to the given, already normalized, path.
func FilePath(path string) OutputTarget {
	return OutputTarget{state: TargetFile, path: path}
}

// State returns which of the three states the target is in.
func (t OutputTarget) State() TargetState {
	return t.state
}

// IsUnset reports whether no destination was configured.
func (t OutputTarget) IsUnset() bool {
	return t.state == TargetUnset
}

// IsStandardStream reports whether the report goes to standard output.
func (t OutputTarget) IsStandardStream() bool {
	return t.state == TargetStandardStream
}

// ResolvedFileOrNull returns the file path when the target is a file.
// Unset and standard-stream targets both report ("", false): neither is a trackable file artifact.
func (t OutputTarget) ResolvedFileOrNull() (string, bool) {
	if t.state != TargetFile {
		return "", false
	}
	return t.path, true
}

// String returns the string representation of the OutputTarget.
func (t OutputTarget) String() string {
	if t.state == TargetFile {
		return t.path
	}
	return t.state.String()
}

// OutputKey names one of the optional report destinations of a configuration.
type OutputKey uint8

const (
	// OutputDump is the class file structure dump.
	OutputDump OutputKey = iota
	// OutputPrintConfiguration is the fully expanded configuration.
	OutputPrintConfiguration
	// OutputPrintSeeds is the list of entry points matched by keep rules.
	OutputPrintSeeds
	// OutputPrintMapping is the obfuscation mapping.
	OutputPrintMapping
	// OutputPrintUsage is the list of removed code.
	OutputPrintUsage

	numOutputKeys
)

var outputKeyNames = [numOutputKeys]string{
	OutputDump:               "dump",
	OutputPrintConfiguration: "printconfiguration",
	OutputPrintSeeds:         "printseeds",
	OutputPrintMapping:       "printmapping",
	OutputPrintUsage:         "printusage",
}

// OutputKeys returns every report destination key in declaration order.
func OutputKeys() []OutputKey {
	keys := make([]OutputKey, 0, numOutputKeys)
	for k := range numOutputKeys {
		keys = append(keys, k)
	}
	return keys
}

// String returns the directive name of the key.
func (k OutputKey) String() string {
	if k >= numOutputKeys {
		return "unknown"
	}
	return outputKeyNames[k]
}
