package journal

import (
	"context"

	"github.com/YoshitsuguKoike/verve/internal/domain/model/journal"
)

// BuiltinSource names the bundled sample history
const BuiltinSource = "builtin"

// BuiltinEntryRepository serves the bundled sample entries
type BuiltinEntryRepository struct{}

// NewBuiltinEntryRepository creates a repository over the sample entries
func NewBuiltinEntryRepository() *BuiltinEntryRepository {
	return &BuiltinEntryRepository{}
}

// List returns a fresh copy of the sample entries
func (r *BuiltinEntryRepository) List(ctx context.Context) ([]journal.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return journal.SampleEntries(), nil
}

// Source returns BuiltinSource
func (r *BuiltinEntryRepository) Source() string {
	return BuiltinSource
}
