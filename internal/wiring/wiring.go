// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/monobase/internal/adapters/config"
	_ "go.trai.ch/monobase/internal/adapters/cuda"
	_ "go.trai.ch/monobase/internal/adapters/fs"
	_ "go.trai.ch/monobase/internal/adapters/logger"
	_ "go.trai.ch/monobase/internal/adapters/metrics"
	_ "go.trai.ch/monobase/internal/adapters/optimize"
	_ "go.trai.ch/monobase/internal/adapters/pget"
	_ "go.trai.ch/monobase/internal/adapters/shell"
	_ "go.trai.ch/monobase/internal/adapters/telemetry"
	_ "go.trai.ch/monobase/internal/adapters/tracker"
	_ "go.trai.ch/monobase/internal/adapters/uv"
	// Register app and engine nodes.
	_ "go.trai.ch/monobase/internal/app"
	_ "go.trai.ch/monobase/internal/engine/gc"
	_ "go.trai.ch/monobase/internal/engine/orchestrator"
	_ "go.trai.ch/monobase/internal/engine/updater"
	_ "go.trai.ch/monobase/internal/engine/userlayer"
)
