// Package analyzer turns journal text into a heuristic emotional and
// thematic analysis using static word lists.
package analyzer

import (
	"math/rand"
	"time"

	"github.com/YoshitsuguKoike/verve/internal/domain/model/analysis"
	"github.com/YoshitsuguKoike/verve/internal/domain/model/journal"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now returns f()
func (f ClockFunc) Now() time.Time { return f() }

// FixedClock returns a Clock that always reports t
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// RandomSource picks filler insights. *rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Analyzer runs the four-stage analysis pipeline.
// An Analyzer is not safe for concurrent use when built with a shared RandomSource.
type Analyzer struct {
	clock   Clock
	random  RandomSource
	history []journal.Entry
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithClock sets the source of "today"
func WithClock(c Clock) Option {
	return func(a *Analyzer) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithRandomSource sets the filler picker
func WithRandomSource(r RandomSource) Option {
	return func(a *Analyzer) {
		if r != nil {
			a.random = r
		}
	}
}

// WithSeed seeds a private filler picker for reproducible output
func WithSeed(seed int64) Option {
	return WithRandomSource(rand.New(rand.NewSource(seed)))
}

// WithHistory replaces the bundled sample history
func WithHistory(entries []journal.Entry) Option {
	return func(a *Analyzer) {
		a.history = append([]journal.Entry(nil), entries...)
	}
}

// New creates an analyzer over the bundled sample history, the system clock
// and a time-seeded random source unless options say otherwise.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		clock:   ClockFunc(time.Now),
		history: journal.SampleEntries(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.random == nil {
		a.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return a
}

// History returns a copy of the entries trends are computed against
func (a *Analyzer) History() []journal.Entry {
	return append([]journal.Entry(nil), a.history...)
}

// AnalyzeEntry runs the full pipeline for content. It never fails; callers
// are expected to skip blank content.
func (a *Analyzer) AnalyzeEntry(content string) analysis.Result {
	emotions := ScoreEmotions(content)
	keywords := ExtractKeywords(content)
	trends := a.AnalyzeTrends(content, a.history)
	insights := a.GenerateInsights(content, emotions, keywords, a.history)

	return analysis.Result{
		Emotions: emotions,
		Keywords: keywords,
		Trends:   trends,
		Insights: insights,
	}
}
