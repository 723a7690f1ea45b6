// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/curveforge/meshsync/internal/adapters/evaluator"
	_ "github.com/curveforge/meshsync/internal/adapters/logger"
	_ "github.com/curveforge/meshsync/internal/adapters/scene"
	_ "github.com/curveforge/meshsync/internal/adapters/telemetry"
	_ "github.com/curveforge/meshsync/internal/adapters/timers"
	// Register app nodes.
	_ "github.com/curveforge/meshsync/internal/app"
)
