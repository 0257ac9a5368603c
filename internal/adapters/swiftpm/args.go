// Package swiftpm drives the Swift package manager of an installed
// toolchain. It assembles argument vectors for build, test and install
// actions and delegates execution to a subprocess runner.
package swiftpm

import "github.com/swiftbuild/helper/internal/core/domain"

// Args deterministically assembles the argument vector for one toolchain
// invocation. Centralizing the assembly keeps the three action code paths
// from drifting apart on package path, scratch path and configuration.
//
// The flag order is frozen to the known-good invocation:
// swift binary, subcommand, --package-path, --scratch-path,
// --configuration, caller-supplied extras, the action's product flag,
// and --verbose last when configured.
func Args(action domain.Action, product string, inv domain.Invocation, extra ...string) []string {
	argv := []string{
		inv.SwiftPath(), action.Subcommand(),
		"--package-path", inv.PackagePath,
		"--scratch-path", inv.BuildPath,
		"--configuration", string(inv.Mode),
	}
	argv = append(argv, extra...)
	argv = append(argv, action.ProductFlag(), product)
	if inv.Verbose {
		argv = append(argv, "--verbose")
	}
	return argv
}
