// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/Guardsquare/proguard-sub005/internal/core/domain"
)

// LoadOptions controls how a task document is loaded.
type LoadOptions struct {
	// FollowIncludes loads referenced YAML documents into the same configuration.
	FollowIncludes bool
}

// ConfigLoader defines the interface for loading a task configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the task document at path and returns the accumulated configuration.
	Load(ctx context.Context, path string, opts LoadOptions) (*domain.Configuration, error)

	// Sources returns the documents that were read by the last call to Load, in read order.
	Sources() []string
}
