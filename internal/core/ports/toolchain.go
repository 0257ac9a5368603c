package ports

import (
	"context"

	"github.com/swiftbuild/helper/internal/core/domain"
)

// Toolchain drives the external Swift package manager.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Invoke runs the toolchain for the given action and product and
	// returns the subprocess outcome without interpretation.
	Invoke(ctx context.Context, action domain.Action, product string, inv domain.Invocation, extra ...string) error

	// BinaryPath resolves the path of the binary a build action produces
	// by querying the toolchain.
	BinaryPath(ctx context.Context, product string, inv domain.Invocation) (string, error)

	// Install builds the product and copies the binary into the install
	// destination. The destination must not exist yet.
	Install(ctx context.Context, product string, inv domain.Invocation) error
}
