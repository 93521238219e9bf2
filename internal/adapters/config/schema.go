package config

import "gopkg.in/yaml.v3"

// Document represents the structure of a proguard.yaml task document.
//
// Entry lists and options are kept as raw nodes so that every accepted
// shape can be told apart and reported with its line number.
type Document struct {
	// BaseDir anchors relative paths. It defaults to the document's directory
	// and is only honored in the top-level document.
	BaseDir       string    `yaml:"baseDir"`
	InJars        yaml.Node `yaml:"injars"`
	OutJars       yaml.Node `yaml:"outjars"`
	LibraryJars   yaml.Node `yaml:"libraryjars"`
	Configuration yaml.Node `yaml:"configuration"`
	Options       yaml.Node `yaml:"options"`
}

// fileTag marks a scalar as an already resolved file handle.
const fileTag = "!file"

// Entry mapping keys.
const (
	keyPath    = "path"
	keyFilter  = "filter"
	keyFilters = "filters"
)
