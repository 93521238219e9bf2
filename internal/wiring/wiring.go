// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Guardsquare/proguard-sub005/internal/adapters/config"
	_ "github.com/Guardsquare/proguard-sub005/internal/adapters/fs"
	_ "github.com/Guardsquare/proguard-sub005/internal/adapters/logger"
	_ "github.com/Guardsquare/proguard-sub005/internal/adapters/telemetry"
	_ "github.com/Guardsquare/proguard-sub005/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/Guardsquare/proguard-sub005/internal/app"
)
