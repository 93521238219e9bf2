package domain

import "path/filepath"

// PathLike is a path reference that can be anchored at a task base directory.
// It is implemented by Path and File only.
type PathLike interface {
	// Resolve returns the path anchored at baseDir. No file is touched.
	Resolve(baseDir string) string
	isPathLike()
}

// Path is a raw path as written by the build script. Relative paths are
// resolved against the task base directory. The empty path is kept verbatim
// and resolves to the base directory itself.
type Path string

// Resolve joins a relative path with baseDir and cleans the result.
func (p Path) Resolve(baseDir string) string {
	s := string(p)
	if filepath.IsAbs(s) {
		return filepath.Clean(s)
	}
	return filepath.Join(baseDir, s)
}

func (Path) isPathLike() {}

// File is an already resolved file handle. It is used verbatim.
type File string

// Resolve returns the file path unchanged.
func (f File) Resolve(string) string {
	return string(f)
}

func (File) isPathLike() {}
