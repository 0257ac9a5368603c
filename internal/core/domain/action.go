// Package domain contains the core domain models for driving the Swift
// package manager: actions, invocation configurations, products and the
// product dependency graph.
package domain

import "go.trai.ch/zerr"

// Action is a high-level build action the helper knows how to perform.
type Action int

const (
	// ActionBuild compiles a product.
	ActionBuild Action = iota
	// ActionTest runs a product's test suite.
	ActionTest
	// ActionInstall builds a product and copies the binary into the
	// install destination.
	ActionInstall
)

// ParseAction maps a CLI action word to an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "build":
		return ActionBuild, nil
	case "test":
		return ActionTest, nil
	case "install":
		return ActionInstall, nil
	default:
		return 0, zerr.With(ErrUnknownAction, "action", s)
	}
}

// String returns the action word as it appears on the CLI.
func (a Action) String() string {
	switch a {
	case ActionTest:
		return "test"
	case ActionInstall:
		return "install"
	default:
		return "build"
	}
}

// Subcommand returns the swiftpm subcommand used for the action.
// Install has no subcommand of its own: it builds and then copies the
// binary, so it maps to "build".
func (a Action) Subcommand() string {
	if a == ActionTest {
		return "test"
	}
	return "build"
}

// ProductFlag returns the flag swiftpm expects the product name under.
func (a Action) ProductFlag() string {
	if a == ActionTest {
		return "--test-product"
	}
	return "--product"
}
