package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YoshitsuguKoike/verve/internal/app"
	"github.com/YoshitsuguKoike/verve/internal/application/dto"
	"github.com/YoshitsuguKoike/verve/internal/domain/model/journal"
	"github.com/YoshitsuguKoike/verve/internal/domain/repository"
	"github.com/YoshitsuguKoike/verve/internal/domain/service/analyzer"
)

// ErrBlankContent is returned when the entry has nothing but whitespace
var ErrBlankContent = errors.New("entry content is blank")

var timeNow = time.Now

// AnalyzeEntryUseCase analyzes one entry against the configured history
type AnalyzeEntryUseCase struct {
	entries repository.EntryRepository
	clock   analyzer.Clock
	options []analyzer.Option
}

// NewAnalyzeEntryUseCase creates a new analyze entry use case.
// opts are applied after the clock and history, so they may override both.
func NewAnalyzeEntryUseCase(entries repository.EntryRepository, clock analyzer.Clock, opts ...analyzer.Option) *AnalyzeEntryUseCase {
	if clock == nil {
		clock = analyzer.ClockFunc(timeNow)
	}
	return &AnalyzeEntryUseCase{
		entries: entries,
		clock:   clock,
		options: opts,
	}
}

// Execute runs the analysis. An input date also becomes "today" for the
// trend stage, so a dated entry is compared with history as of that day.
func (u *AnalyzeEntryUseCase) Execute(ctx context.Context, input dto.AnalyzeEntryInput) (*dto.AnalyzeEntryOutput, error) {
	logger := app.GetLogger()

	// 1. Build the entry
	now := u.clock.Now()
	clock := u.clock
	date := now
	if !input.Date.IsZero() {
		date = input.Date
		clock = analyzer.FixedClock(input.Date)
	}
	entry, err := journal.NewEntry(date, input.Content)
	if err != nil {
		return nil, fmt.Errorf("invalid entry date: %w", err)
	}
	if entry.IsBlank() {
		return nil, ErrBlankContent
	}

	// 2. Load history
	history, err := u.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus %s: %w", u.entries.Source(), err)
	}
	logger.Info("loaded %d history entries from %s", len(history), u.entries.Source())

	// 3. Analyze
	opts := append([]analyzer.Option{analyzer.WithClock(clock), analyzer.WithHistory(history)}, u.options...)
	result := analyzer.New(opts...).AnalyzeEntry(entry.Content())

	logger.Debug("analyzed %s (%d bytes) from %s", entry.ID(), len(input.Content), originOrUnknown(input.Origin))
	logger.Debug("emotions: primary=%s secondary=%s", result.Emotions.Primary, result.Emotions.Secondary)
	logger.Debug("keywords: %v", result.Keywords)
	logger.Debug("trends: %d, insights: %d", len(result.Trends), len(result.Insights))

	return &dto.AnalyzeEntryOutput{
		EntryID:    entry.ID().String(),
		Date:       entry.DateString(),
		AnalyzedAt: now.UTC(),
		Corpus: dto.CorpusSummary{
			Source:  u.entries.Source(),
			Entries: len(history),
		},
		Analysis: result,
	}, nil
}

func originOrUnknown(origin string) string {
	if origin == "" {
		return "unknown"
	}
	return origin
}
