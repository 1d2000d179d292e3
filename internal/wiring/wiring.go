// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scaledash/internal/adapters/config"
	_ "go.trai.ch/scaledash/internal/adapters/logger"
	_ "go.trai.ch/scaledash/internal/adapters/notifier"
	_ "go.trai.ch/scaledash/internal/adapters/querycache"
	_ "go.trai.ch/scaledash/internal/adapters/telemetry"
	_ "go.trai.ch/scaledash/internal/adapters/transport"
	// Register app nodes.
	_ "go.trai.ch/scaledash/internal/app"
)
