package ports

import "github.com/swiftbuild/helper/internal/core/domain"

// SessionLoader defines the interface for loading the session configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=session_loader.go -destination=mocks/mock_session_loader.go -package=mocks
type SessionLoader interface {
	// Load reads the session configuration from the given path.
	Load(path string) (*domain.Session, error)
}
