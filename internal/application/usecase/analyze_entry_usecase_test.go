package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/YoshitsuguKoike/verve/internal/app"
	"github.com/YoshitsuguKoike/verve/internal/application/dto"
	"github.com/YoshitsuguKoike/verve/internal/domain/model/analysis"
	"github.com/YoshitsuguKoike/verve/internal/domain/model/journal"
	"github.com/YoshitsuguKoike/verve/internal/domain/service/analyzer"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

// mockEntryRepository implements repository.EntryRepository for testing
type mockEntryRepository struct {
	entries []journal.Entry
	err     error
	calls   int
}

func (m *mockEntryRepository) List(ctx context.Context) ([]journal.Entry, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockEntryRepository) Source() string { return "mock" }

type firstPick struct{}

func (firstPick) Intn(int) int { return 0 }

// captureLogger records messages at or above INFO
type captureLogger struct {
	infos  []string
	debugs []string
}

func (c *captureLogger) Debug(format string, args ...interface{}) {
	c.debugs = append(c.debugs, fmt.Sprintf(format, args...))
}
func (c *captureLogger) Info(format string, args ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, args...))
}
func (c *captureLogger) Warn(string, ...interface{})  {}
func (c *captureLogger) Error(string, ...interface{}) {}

func TestAnalyzeEntryUseCase_Execute(t *testing.T) {
	repo := &mockEntryRepository{entries: journal.SampleEntries()}
	uc := NewAnalyzeEntryUseCase(repo, analyzer.FixedClock(fixedNow), analyzer.WithRandomSource(firstPick{}))

	out, err := uc.Execute(context.Background(), dto.AnalyzeEntryInput{
		Content: "My goal is important but I feel burnout and pressure",
		Origin:  "args",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, "2025-04-10", out.Date)
	assert.Equal(t, fixedNow, out.AnalyzedAt)
	assert.Equal(t, dto.CorpusSummary{Source: "mock", Entries: 7}, out.Corpus)

	id, err := ulid.ParseStrict(out.EntryID)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(fixedNow), id.Time())

	a := out.Analysis
	assert.Equal(t, "Burnout", a.Emotions.Primary)
	assert.Equal(t, []string{"Goal", "Burnout", "Stress"}, a.Keywords)
	assert.Len(t, a.Trends, 3)
	assert.Contains(t, a.Insights, analyzer.InsightBurnout)
}

func TestAnalyzeEntryUseCase_ExplicitDate(t *testing.T) {
	repo := &mockEntryRepository{}
	uc := NewAnalyzeEntryUseCase(repo, analyzer.FixedClock(fixedNow))

	out, err := uc.Execute(context.Background(), dto.AnalyzeEntryInput{
		Content: "quiet day",
		Date:    time.Date(2025, 4, 1, 23, 30, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-04-01", out.Date)
	assert.Equal(t, 0, out.Corpus.Entries)
	assert.Empty(t, out.Analysis.Trends)
}

func TestAnalyzeEntryUseCase_EntryDateIsTodayForTrends(t *testing.T) {
	repo := &mockEntryRepository{entries: journal.SampleEntries()}
	uc := NewAnalyzeEntryUseCase(repo, analyzer.FixedClock(fixedNow), analyzer.WithRandomSource(firstPick{}))

	out, err := uc.Execute(context.Background(), dto.AnalyzeEntryInput{
		Content: "Walked the dog.",
		Date:    time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.NotEmpty(t, out.Analysis.Trends)
	// latest goal mention in the samples is 2025-04-04
	assert.Equal(t, analysis.TrendGoalTracking, out.Analysis.Trends[0].Type)
	assert.Equal(t, 10, out.Analysis.Trends[0].DaysAgo)
	assert.Equal(t, fixedNow, out.AnalyzedAt)
}

func TestAnalyzeEntryUseCase_DateBeforeEpoch(t *testing.T) {
	repo := &mockEntryRepository{}
	uc := NewAnalyzeEntryUseCase(repo, analyzer.FixedClock(fixedNow))

	_, err := uc.Execute(context.Background(), dto.AnalyzeEntryInput{
		Content: "one small step",
		Date:    time.Date(1969, 7, 20, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "before 1970-01-01")
	assert.Zero(t, repo.calls)
}

func TestAnalyzeEntryUseCase_BlankContent(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t "} {
		repo := &mockEntryRepository{}
		uc := NewAnalyzeEntryUseCase(repo, analyzer.FixedClock(fixedNow))

		out, err := uc.Execute(context.Background(), dto.AnalyzeEntryInput{Content: content})

		assert.ErrorIs(t, err, ErrBlankContent)
		assert.Nil(t, out)
		assert.Zero(t, repo.calls, "corpus must not be loaded for blank content")
	}
}

func TestAnalyzeEntryUseCase_RepositoryError(t *testing.T) {
	boom := errors.New("disk on fire")
	uc := NewAnalyzeEntryUseCase(&mockEntryRepository{err: boom}, analyzer.FixedClock(fixedNow))

	_, err := uc.Execute(context.Background(), dto.AnalyzeEntryInput{Content: "hello"})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "mock")
}

func TestAnalyzeEntryUseCase_Logs(t *testing.T) {
	previous := app.GetLogger()
	defer app.SetLogger(previous)
	logger := &captureLogger{}
	app.SetLogger(logger)

	uc := NewAnalyzeEntryUseCase(&mockEntryRepository{entries: journal.SampleEntries()}, analyzer.FixedClock(fixedNow))
	_, err := uc.Execute(context.Background(), dto.AnalyzeEntryInput{Content: "I feel happy", Origin: "stdin"})

	require.NoError(t, err)
	assert.Equal(t, []string{"loaded 7 history entries from mock"}, logger.infos)
	require.NotEmpty(t, logger.debugs)
	assert.Contains(t, logger.debugs[0], "from stdin")
	assert.Contains(t, logger.debugs[1], "primary=Joy")
}

func TestAnalyzeEntryUseCase_NilClockUsesSystemTime(t *testing.T) {
	uc := NewAnalyzeEntryUseCase(&mockEntryRepository{}, nil)

	before := time.Now().UTC()
	out, err := uc.Execute(context.Background(), dto.AnalyzeEntryInput{Content: "hello"})

	require.NoError(t, err)
	assert.False(t, out.AnalyzedAt.Before(before.Add(-time.Second)))
}
