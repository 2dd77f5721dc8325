package dispatch

import "github.com/google/uuid"

// IDGenerator stamps each command execution with a correlation ID.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator issues time-sortable UUIDv7 execution IDs, so log
// lines for a burst of dispatches sort in launch order.
//
// Stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7 string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
