package ports

import (
	"io"

	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
)

// RecordRenderer writes a human readable form of a frozen configuration.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type RecordRenderer interface {
	// Render writes rec to w.
	Render(w io.Writer, rec *domain.Record) error
}
