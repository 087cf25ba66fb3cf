// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/solidc/internal/adapters/config"
	_ "go.trai.ch/solidc/internal/adapters/env"
	_ "go.trai.ch/solidc/internal/adapters/fingerprint"
	_ "go.trai.ch/solidc/internal/adapters/fs"
	_ "go.trai.ch/solidc/internal/adapters/logger"
	_ "go.trai.ch/solidc/internal/adapters/manifest"
	_ "go.trai.ch/solidc/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/solidc/internal/app"
	_ "go.trai.ch/solidc/internal/engine/strategy"
)
