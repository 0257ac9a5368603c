package domain

import "path/filepath"

// Mode selects the swiftpm build configuration.
type Mode string

const (
	// ModeDebug builds without optimizations.
	ModeDebug Mode = "debug"
	// ModeRelease builds with optimizations. It is the default.
	ModeRelease Mode = "release"
)

// Invocation is the full configuration for a single toolchain invocation.
// It is constructed once by the caller (CLI flags or a product descriptor)
// and never mutated afterwards.
type Invocation struct {
	// Mode is the swiftpm build configuration.
	Mode Mode

	// Verbose appends --verbose to the invocation.
	Verbose bool

	// PackagePath is the directory containing the Swift package.
	PackagePath string

	// BuildPath is the scratch directory swiftpm uses for intermediate
	// and output artifacts.
	BuildPath string

	// ToolchainPath is the root of the installed toolchain providing the
	// swift binary.
	ToolchainPath string

	// InstallPath is the destination directory for installed binaries.
	// Only consulted by the install action.
	InstallPath string

	// Prefix is accepted on the CLI for compatibility but unused by any
	// code path.
	Prefix string
}

// SwiftPath returns the path of the swift front-end inside the toolchain.
func (inv Invocation) SwiftPath() string {
	return filepath.Join(inv.ToolchainPath, "bin", "swift")
}

// Fingerprint returns a stable hash of every field that influences the
// produced artifacts. Two invocations with the same fingerprint assemble
// identical argument vectors.
func (inv Invocation) Fingerprint() string {
	return Fingerprint(
		string(inv.Mode),
		inv.PackagePath,
		inv.BuildPath,
		inv.ToolchainPath,
		inv.InstallPath,
		inv.Prefix,
	)
}
