package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownAction is returned when an action word is not one of
	// build, test or install.
	ErrUnknownAction = zerr.New("unknown action")

	// ErrProductAlreadyExists is returned when a product with the same name
	// is added to a graph or registry twice.
	ErrProductAlreadyExists = zerr.New("product already exists")

	// ErrMissingDependency is returned when a product references a
	// dependency that is not present in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the product dependency graph
	// contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrProductNotFound is returned when a requested product is not known.
	ErrProductNotFound = zerr.New("product not found")

	// ErrEmptyBinaryPath is returned when the bin-path query succeeds but
	// produces no output.
	ErrEmptyBinaryPath = zerr.New("toolchain reported an empty binary path")

	// ErrInstallDirExists is returned when the install destination already
	// exists. Installation is deliberately not idempotent.
	ErrInstallDirExists = zerr.New("install directory already exists")

	// ErrUnknownHostTarget is returned when no toolchain paths are
	// configured for a host target.
	ErrUnknownHostTarget = zerr.New("unknown host target")

	// ErrSessionFailed is a sentinel wrapped around any product action
	// failure during a session run.
	ErrSessionFailed = zerr.New("session execution failed")
)
