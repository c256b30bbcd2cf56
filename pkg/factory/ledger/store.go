// Package ledger keeps an audit trail of product requests made to factories.
package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Store persists production records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append stores a record.
	Append(rec Record) error

	// List returns the records of one factory in append order.
	// An empty factory name lists every record.
	// Returns an empty slice (not error) when nothing matches.
	List(factory string) ([]Record, error)

	// Count returns the total number of records.
	Count() (int, error)

	// Close releases any resources (connections, files).
	Close() error
}

// Record describes one product request.
type Record struct {
	ID        string
	Factory   string
	Product   string
	Args      int
	Outcome   string
	Error     string
	Timestamp time.Time
	Duration  time.Duration
}

// NewRecord returns a record with a fresh ID and the current UTC time.
func NewRecord(factory, product string, args int) Record {
	return Record{
		ID:        uuid.NewString(),
		Factory:   factory,
		Product:   product,
		Args:      args,
		Timestamp: time.Now().UTC(),
	}
}

// Sentinel errors for ledger operations.
var (
	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("ledger store closed")

	// ErrMissingID indicates a record was appended without an ID.
	ErrMissingID = errors.New("ledger record has no id")
)
