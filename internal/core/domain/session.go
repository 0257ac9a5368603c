package domain

import (
	"slices"
	"strconv"
)

// ToolchainPaths holds the two toolchain roots a session distinguishes:
// the native toolchain products are built against and the toolchain layout
// they are installed into.
type ToolchainPaths struct {
	// Native is the root of the installed toolchain providing the
	// compiler used for building.
	Native string

	// Install is the root of the toolchain layout receiving installed
	// binaries (under libexec/swift).
	Install string
}

// Session is the immutable configuration of one build session, supplied by
// the session file. Product descriptors consult it for predicates and the
// runner for dispatch parameters.
type Session struct {
	// Host is the host target products are built for.
	Host HostTarget

	// PackageRoot is the root of the source tree containing product
	// packages (e.g. <root>/tools/<product>).
	PackageRoot string

	// BuildRoot is the directory receiving per-product scratch paths.
	BuildRoot string

	// Release selects the release build mode; debug otherwise.
	Release bool

	// Verbose forwards --verbose to every toolchain invocation.
	Verbose bool

	// Jobs bounds how many independent products run concurrently within a
	// session phase. Values below 1 mean strictly sequential execution.
	Jobs int

	// Toolchains maps host target identifiers to their toolchain roots.
	Toolchains map[string]ToolchainPaths

	// TestProducts names the products whose test suites were requested.
	TestProducts []string

	// InstallProducts names the products whose installation was requested.
	InstallProducts []string
}

// Mode returns the swiftpm build configuration for the session.
func (s *Session) Mode() Mode {
	if s.Release {
		return ModeRelease
	}
	return ModeDebug
}

// TestRequested reports whether the session requested the product's tests.
func (s *Session) TestRequested(product string) bool {
	return slices.Contains(s.TestProducts, product)
}

// InstallRequested reports whether the session requested installing the product.
func (s *Session) InstallRequested(product string) bool {
	return slices.Contains(s.InstallProducts, product)
}

// Fingerprint returns a stable hash of the session configuration.
func (s *Session) Fingerprint() string {
	parts := []string{
		s.Host.String(),
		s.PackageRoot,
		s.BuildRoot,
		strconv.FormatBool(s.Release),
	}
	parts = append(parts, s.TestProducts...)
	parts = append(parts, s.InstallProducts...)
	return Fingerprint(parts...)
}
