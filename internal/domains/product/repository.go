package product

import "context"

// ============================================================
// REPOSITORY INTERFACE: Repository
// ============================================================

// Repository is the record store: durable append-only persistence plus
// full-scan retrieval. The on-disk files belong to the implementation
// exclusively; nobody else writes them.
//
// Append must only be called while the caller holds the create gate;
// the store itself does not serialize writers. Reads need no gate: the
// files are never mutated in place, so a scan only ever sees fully
// appended lines.
type Repository interface {
	// Append writes the record to both persistence sinks (journal, then
	// audit log). If either write fails the append failed as a whole.
	Append(ctx context.Context, p *Product) error

	// GetAll returns every decodable record in the journal, in file
	// order. Malformed lines are skipped, never surfaced: one corrupt
	// line must not make the remaining data unavailable. An absent
	// journal yields an empty slice.
	GetAll(ctx context.Context) ([]Product, error)

	// GetByID returns the first record with the given id, or
	// ErrProductNotFound when the journal is absent or holds no match.
	GetByID(ctx context.Context, id int64) (*Product, error)

	// LastID reports the highest id present in the journal (0 when the
	// journal is absent or nothing parses), with the same per-line
	// leniency as GetAll. Used once at startup to seed the allocator.
	LastID(ctx context.Context) (int64, error)
}
