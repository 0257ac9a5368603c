package domain

import "time"

// Record is the persisted outcome of one product action.
type Record struct {
	Product     string    `json:"product,omitzero"`
	Action      string    `json:"action,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Success     bool      `json:"success,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
