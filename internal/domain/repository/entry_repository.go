package repository

import (
	"context"

	"github.com/YoshitsuguKoike/verve/internal/domain/model/journal"
)

// EntryRepository provides the past journal entries trends are computed against
type EntryRepository interface {
	// List returns the entries in corpus order. Trend detection treats the
	// first entries as the most recent ones.
	List(ctx context.Context) ([]journal.Entry, error)

	// Source describes where the entries come from, for logs and reports
	Source() string
}
