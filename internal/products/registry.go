package products

import (
	"slices"

	"github.com/swiftbuild/helper/internal/core/domain"
	"github.com/swiftbuild/helper/internal/core/ports"
)

// Names lists every product the helper can act on.
func Names() []string {
	return []string{BacktraceName}
}

// Known reports whether a product identifier names a registered product.
func Known(name string) bool {
	return slices.Contains(Names(), name)
}

// Descriptors constructs the descriptor set for one session.
func Descriptors(sess *domain.Session, toolchain ports.Toolchain, resolver ports.PathResolver) []ports.Descriptor {
	return []ports.Descriptor{
		NewBacktrace(sess, toolchain, resolver),
	}
}
