// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/swiftbuild/helper/internal/adapters/config"
	_ "github.com/swiftbuild/helper/internal/adapters/logger"
	_ "github.com/swiftbuild/helper/internal/adapters/shell"
	_ "github.com/swiftbuild/helper/internal/adapters/state"
	_ "github.com/swiftbuild/helper/internal/adapters/swiftpm"
	_ "github.com/swiftbuild/helper/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/swiftbuild/helper/internal/app"
	_ "github.com/swiftbuild/helper/internal/engine/session"
)
