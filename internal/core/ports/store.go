package ports

import "github.com/swiftbuild/helper/internal/core/domain"

// RecordStore defines the interface for storing and retrieving action outcomes.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the record for a product action.
	// Returns nil, nil if not found.
	Get(product, action string) (*domain.Record, error)

	// Put stores the record.
	Put(record domain.Record) error

	// All returns every stored record, ordered by product then action.
	All() ([]domain.Record, error)
}
