package fs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/Guardsquare/proguard-sub005/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileVerifier = (*Verifier)(nil)

// Verifier checks whether files referenced by a configuration exist.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Missing returns the paths that do not exist, in the given order.
// Other stat failures are returned as errors.
func (v *Verifier) Missing(paths []string) ([]string, error) {
	var missing []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, path)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
		}
	}
	return missing, nil
}
