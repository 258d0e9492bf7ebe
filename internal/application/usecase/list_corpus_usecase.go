package usecase

import (
	"context"
	"fmt"

	"github.com/YoshitsuguKoike/verve/internal/application/dto"
	"github.com/YoshitsuguKoike/verve/internal/domain/repository"
)

// ListCorpusUseCase lists the history entries trends are computed against
type ListCorpusUseCase struct {
	entries repository.EntryRepository
}

// NewListCorpusUseCase creates a new ListCorpusUseCase
func NewListCorpusUseCase(entries repository.EntryRepository) *ListCorpusUseCase {
	return &ListCorpusUseCase{entries: entries}
}

// Execute returns the entries in corpus order
func (u *ListCorpusUseCase) Execute(ctx context.Context) (*dto.ListCorpusOutput, error) {
	entries, err := u.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus %s: %w", u.entries.Source(), err)
	}

	out := &dto.ListCorpusOutput{
		Source:  u.entries.Source(),
		Entries: make([]dto.EntryDTO, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, dto.EntryDTO{
			ID:      e.ID().String(),
			Date:    e.DateString(),
			Content: e.Content(),
		})
	}
	return out, nil
}
