package ports

import "github.com/swiftbuild/helper/internal/core/domain"

// PathResolver resolves toolchain roots for an opaque host target.
// Product descriptors never assume the internal shape of a host target;
// they go through this interface.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// InstallToolchainPath returns the root of the toolchain layout that
	// receives installed binaries.
	InstallToolchainPath(host domain.HostTarget) (string, error)

	// NativeToolchainPath returns the root of the installed toolchain
	// products are built against.
	NativeToolchainPath(host domain.HostTarget) (string, error)
}
