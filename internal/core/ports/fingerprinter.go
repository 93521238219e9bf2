package ports

import (
	"context"

	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
)

// Fingerprinter defines the interface for computing stable digests of a frozen configuration.
//
//go:generate mockgen -destination=mocks/mock_fingerprinter.go -package=mocks -source=fingerprinter.go
type Fingerprinter interface {
	// Fingerprint returns a hex digest that changes whenever the record changes.
	Fingerprint(rec *domain.Record) (string, error)

	// FingerprintInputs extends Fingerprint with the contents of every input file.
	// Missing files contribute a marker instead of failing.
	FingerprintInputs(ctx context.Context, rec *domain.Record) (string, error)
}
