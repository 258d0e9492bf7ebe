package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/YoshitsuguKoike/verve/internal/domain/model/analysis"
	"github.com/YoshitsuguKoike/verve/internal/domain/model/journal"
)

const (
	maxTrends          = 4
	maxFrequencyTrends = 3
	goalStaleAfterDays = 3
	patternWindow      = 5
	burnoutRepeatMin   = 2
)

// trackedTerms are counted across every entry for frequency trends
var trackedTerms = []string{"burnout", "goal", "future", "lost", "purpose", "motivation", "change"}

// goalTerms mark an entry as mentioning goals
var goalTerms = []string{"goal", "goals", "purpose", "direction"}

// scoredEntry caches the tokens of one entry in the combined list
type scoredEntry struct {
	date   time.Time
	tokens *tokenizedText
}

// AnalyzeTrends compares currentText, dated today, with history.
// history is read positionally for pattern and shift detection; only the
// goal-tracking trend looks at dates.
func (a *Analyzer) AnalyzeTrends(currentText string, history []journal.Entry) []analysis.Trend {
	now := a.clock.Now()

	entries := make([]scoredEntry, 0, len(history)+1)
	entries = append(entries, scoredEntry{date: journal.TruncateToDate(now), tokens: tokenize(currentText)})
	for _, e := range history {
		entries = append(entries, scoredEntry{date: e.Date(), tokens: tokenize(e.Content())})
	}

	var trends []analysis.Trend
	if t, ok := goalTrackingTrend(entries, now); ok {
		trends = append(trends, t)
	}
	trends = append(trends, frequencyTrends(entries)...)

	primaries := primaryEmotions(entries, patternWindow)
	if countEqual(primaries, EmotionBurnout) >= burnoutRepeatMin {
		trends = append(trends, analysis.Trend{
			Type:        analysis.TrendPattern,
			Description: "Burnout appears repeatedly in your recent entries",
		})
	}
	if isPositiveShift(primaries) {
		trends = append(trends, analysis.Trend{
			Type:        analysis.TrendShift,
			Description: "Your emotional tone is showing positive movement recently",
		})
	}

	if len(trends) > maxTrends {
		trends = trends[:maxTrends]
	}
	if trends == nil {
		return []analysis.Trend{}
	}
	return trends
}

func goalTrackingTrend(entries []scoredEntry, now time.Time) (analysis.Trend, bool) {
	var latest time.Time
	found := false
	for _, e := range entries {
		if !e.tokens.hasAny(goalTerms...) {
			continue
		}
		if !found || e.date.After(latest) {
			latest = e.date
			found = true
		}
	}
	if !found {
		return analysis.Trend{}, false
	}

	days := daysBetween(now, latest)
	if days <= goalStaleAfterDays {
		return analysis.Trend{}, false
	}
	return analysis.Trend{
		Type:        analysis.TrendGoalTracking,
		Description: fmt.Sprintf("Last mentioned goals or purpose %d days ago", days),
		DaysAgo:     days,
	}, true
}

// daysBetween is the absolute difference in days, rounded up
func daysBetween(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(float64(diff) / float64(24*time.Hour)))
}

type termCount struct {
	term  string
	count int
}

func frequencyTrends(entries []scoredEntry) []analysis.Trend {
	var counts []termCount
	for _, term := range trackedTerms {
		n := 0
		for _, e := range entries {
			n += e.tokens.count(term)
		}
		if n > 1 {
			counts = append(counts, termCount{term: term, count: n})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})
	if len(counts) > maxFrequencyTrends {
		counts = counts[:maxFrequencyTrends]
	}

	trends := make([]analysis.Trend, 0, len(counts))
	for _, c := range counts {
		trends = append(trends, analysis.Trend{
			Type:        analysis.TrendFrequency,
			Description: fmt.Sprintf("%s appears frequently in your entries", capitalize(c.term)),
			Frequency:   c.count,
		})
	}
	return trends
}

// primaryEmotions scores the first n entries, lowercased primary labels
func primaryEmotions(entries []scoredEntry, n int) []string {
	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.ToLower(scoreTokens(e.tokens).Primary))
	}
	return out
}

func countEqual(primaries []string, e Emotion) int {
	n := 0
	for _, p := range primaries {
		if p == e.String() {
			n++
		}
	}
	return n
}

// isPositiveShift checks the two most recent positions for a change
// involving joy or hope
func isPositiveShift(primaries []string) bool {
	if len(primaries) < 2 {
		return false
	}
	first, second := primaries[0], primaries[1]
	if first == second {
		return false
	}
	return isPositive(first) || isPositive(second)
}

func isPositive(p string) bool {
	return p == EmotionJoy.String() || p == EmotionHope.String()
}
