package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/YoshitsuguKoike/verve/internal/domain/model/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCorpusUseCase_Execute(t *testing.T) {
	samples := journal.SampleEntries()
	uc := NewListCorpusUseCase(&mockEntryRepository{entries: samples})

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "mock", out.Source)
	require.Len(t, out.Entries, len(samples))
	assert.Equal(t, samples[0].ID().String(), out.Entries[0].ID)
	assert.Equal(t, "2025-04-04", out.Entries[0].Date)
	assert.Equal(t, samples[6].Content(), out.Entries[6].Content)
}

func TestListCorpusUseCase_EmptyCorpus(t *testing.T) {
	out, err := NewListCorpusUseCase(&mockEntryRepository{}).Execute(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, out.Entries)
	assert.Empty(t, out.Entries)
}

func TestListCorpusUseCase_Error(t *testing.T) {
	boom := errors.New("unreadable")

	_, err := NewListCorpusUseCase(&mockEntryRepository{err: boom}).Execute(context.Background())

	assert.ErrorIs(t, err, boom)
}
