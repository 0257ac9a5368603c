// Package products declares the product descriptors a session can build.
package products

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/swiftbuild/helper/internal/core/domain"
	"github.com/swiftbuild/helper/internal/core/ports"
	"go.trai.ch/zerr"
)

// BacktraceName is the swift-backtrace product identifier, also the name of
// its package directory and of the installed binary.
const BacktraceName = "swift-backtrace"

// backtraceDependencies is the fixed ordered list of upstream products that
// must be available before swift-backtrace builds. Declarative data, never
// computed.
var backtraceDependencies = []string{
	"cmark",
	"llvm",
	"libcxx",
	"libicu",
	"swift",
	"libdispatch",
	"foundation",
	"xctest",
	"llbuild",
	"swiftpm",
}

// Backtrace is the product descriptor for swift-backtrace. It builds
// against the current installed toolchain and installs into the install
// toolchain's libexec/swift directory.
type Backtrace struct {
	session   *domain.Session
	toolchain ports.Toolchain
	resolver  ports.PathResolver
}

// NewBacktrace creates the swift-backtrace descriptor for one session.
func NewBacktrace(session *domain.Session, toolchain ports.Toolchain, resolver ports.PathResolver) *Backtrace {
	return &Backtrace{
		session:   session,
		toolchain: toolchain,
		resolver:  resolver,
	}
}

// Name returns the product identifier.
func (b *Backtrace) Name() string {
	return BacktraceName
}

// Dependencies returns the upstream product identifiers in build order.
func (b *Backtrace) Dependencies() []string {
	return slices.Clone(backtraceDependencies)
}

// ShouldBuild reports true: swift-backtrace participates in every session.
func (b *Backtrace) ShouldBuild(_ domain.HostTarget) bool {
	return true
}

// ShouldTest reports whether the session requested the test suite.
func (b *Backtrace) ShouldTest(_ domain.HostTarget) bool {
	return b.session.TestRequested(BacktraceName)
}

// ShouldInstall reports whether the session requested installation.
func (b *Backtrace) ShouldInstall(_ domain.HostTarget) bool {
	return b.session.InstallRequested(BacktraceName)
}

// Build compiles the product.
func (b *Backtrace) Build(ctx context.Context, host domain.HostTarget) error {
	inv, err := b.invocation(host)
	if err != nil {
		return err
	}
	return b.toolchain.Invoke(ctx, domain.ActionBuild, BacktraceName, inv)
}

// Test runs the product's test suite.
func (b *Backtrace) Test(ctx context.Context, host domain.HostTarget) error {
	inv, err := b.invocation(host)
	if err != nil {
		return err
	}
	return b.toolchain.Invoke(ctx, domain.ActionTest, BacktraceName, inv)
}

// Install builds the product and copies the binary into
// <installToolchain>/libexec/swift.
func (b *Backtrace) Install(ctx context.Context, host domain.HostTarget) error {
	inv, err := b.invocation(host)
	if err != nil {
		return err
	}

	installToolchain, err := b.resolver.InstallToolchainPath(host)
	if err != nil {
		return err
	}
	inv.InstallPath = filepath.Join(installToolchain, "libexec", "swift")

	return b.toolchain.Install(ctx, BacktraceName, inv)
}

// invocation assembles the toolchain configuration shared by all actions.
func (b *Backtrace) invocation(host domain.HostTarget) (domain.Invocation, error) {
	native, err := b.resolver.NativeToolchainPath(host)
	if err != nil {
		return domain.Invocation{}, err
	}

	packagePath, err := filepath.Abs(filepath.Join(b.session.PackageRoot, "tools", BacktraceName))
	if err != nil {
		return domain.Invocation{}, zerr.Wrap(err, "failed to resolve package path")
	}

	return domain.Invocation{
		Mode:          b.session.Mode(),
		Verbose:       b.session.Verbose,
		PackagePath:   packagePath,
		BuildPath:     filepath.Join(b.session.BuildRoot, BacktraceName),
		ToolchainPath: native,
	}, nil
}
