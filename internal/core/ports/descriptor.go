package ports

import (
	"context"

	"github.com/swiftbuild/helper/internal/core/domain"
)

// Descriptor is a declarative product record consumed by the session runner.
// The runner queries the predicates, orders products by Dependencies and
// delegates the actual work to the action methods.
//
//go:generate go run go.uber.org/mock/mockgen -source=descriptor.go -destination=mocks/mock_descriptor.go -package=mocks
type Descriptor interface {
	// Name identifies the product towards the orchestrator and swiftpm.
	Name() string

	// Dependencies returns the ordered identifiers of upstream products
	// that must be available first. The list is fixed data, independent of
	// host target and configuration.
	Dependencies() []string

	// ShouldBuild reports whether the product participates in the build
	// phase for the host target.
	ShouldBuild(host domain.HostTarget) bool

	// ShouldTest reports whether the product's test suite was requested.
	ShouldTest(host domain.HostTarget) bool

	// ShouldInstall reports whether installing the product was requested.
	ShouldInstall(host domain.HostTarget) bool

	// Build compiles the product for the host target.
	Build(ctx context.Context, host domain.HostTarget) error

	// Test runs the product's test suite for the host target.
	Test(ctx context.Context, host domain.HostTarget) error

	// Install builds the product and copies it into the host target's
	// install toolchain layout.
	Install(ctx context.Context, host domain.HostTarget) error
}
