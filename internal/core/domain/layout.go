package domain

import "strings"

const (
	// TaskFileName is the default name of the task document.
	TaskFileName = "proguard.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// IsTaskDocument reports whether a configuration file reference names a YAML
// task document rather than a rules file for the processing engine.
func IsTaskDocument(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
