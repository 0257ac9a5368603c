// Package ports defines the core interfaces for the application.
package ports

import "context"

// Runner executes subprocess argument vectors.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes argv as a child process with inherited standard
	// output/error streams and waits for completion. A non-zero exit is
	// returned as an error carrying the exit code as metadata; it is
	// never translated further.
	Run(ctx context.Context, argv []string) error

	// Output executes argv, captures its standard output and waits for
	// completion. Standard error is still inherited.
	Output(ctx context.Context, argv []string) ([]byte, error)
}
