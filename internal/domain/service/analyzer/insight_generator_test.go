package analyzer

import (
	"testing"

	"github.com/YoshitsuguKoike/verve/internal/domain/model/analysis"
	"github.com/YoshitsuguKoike/verve/internal/domain/model/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstPick always chooses the first candidate
type firstPick struct{}

func (firstPick) Intn(int) int { return 0 }

// lastPick always chooses the last candidate
type lastPick struct{}

func (lastPick) Intn(n int) int { return n - 1 }

func TestGenerateInsights_Triggers(t *testing.T) {
	a := newTestAnalyzer(sampleNow)
	neutral := ScoreEmotions("")

	tests := []struct {
		name     string
		text     string
		emotions analysis.EmotionResult
		keywords []string
		history  []journal.Entry
		want     []string
	}{
		{
			name:     "burnout, purpose and repetition",
			text:     "My goal is important but I feel burnout and pressure",
			emotions: ScoreEmotions("My goal is important but I feel burnout and pressure"),
			keywords: []string{"Goal", "Burnout", "Stress"},
			history:  journal.SampleEntries(),
			want:     []string{InsightBurnout, InsightPurpose, InsightRepetition},
		},
		{
			name:     "hope as secondary",
			text:     "fine",
			emotions: analysis.EmotionResult{Primary: "Joy", Secondary: "Hope"},
			want:     []string{InsightHope, fillerInsights[0], fillerInsights[1]},
		},
		{
			name:     "change keyword",
			text:     "fine",
			emotions: neutral,
			keywords: []string{"Direction"},
			want:     []string{InsightChange, fillerInsights[0], fillerInsights[1]},
		},
		{
			name:     "becoming outweighs being",
			text:     "I am becoming someone new, I will become better",
			emotions: neutral,
			want:     []string{InsightBecoming, fillerInsights[0], fillerInsights[1]},
		},
		{
			name:     "past outweighs future",
			text:     "It was late and we had fun",
			emotions: neutral,
			want:     []string{InsightPastFocus, fillerInsights[0], fillerInsights[1]},
		},
		{
			name:     "going to balances was",
			text:     "I was going to go",
			emotions: neutral,
			want:     []string{fillerInsights[0], fillerInsights[1], fillerInsights[2]},
		},
		{
			name:     "four questions",
			text:     "Why? How? What? When?",
			emotions: neutral,
			want:     []string{InsightQuestions, fillerInsights[0], fillerInsights[1]},
		},
		{
			name:     "two questions are not enough",
			text:     "Why? How?",
			emotions: neutral,
			want:     []string{fillerInsights[0], fillerInsights[1], fillerInsights[2]},
		},
		{
			name:     "repetition within one line, any case",
			text:     "apple, Apple; APPLE",
			emotions: neutral,
			want:     []string{InsightRepetition, fillerInsights[0], fillerInsights[1]},
		},
		{
			name:     "repetition across lines does not count",
			text:     "apple\napple\napple",
			emotions: neutral,
			want:     []string{fillerInsights[0], fillerInsights[1], fillerInsights[2]},
		},
		{
			name:     "truncated to five in trigger order",
			text:     "I was becoming? ? ?",
			emotions: analysis.EmotionResult{Primary: "Burnout", Secondary: "Hope"},
			keywords: []string{"Change", "Goal"},
			history:  journal.SampleEntries(),
			want:     []string{InsightBurnout, InsightHope, InsightChange, InsightPurpose, InsightBecoming},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.GenerateInsights(tt.text, tt.emotions, tt.keywords, tt.history))
		})
	}
}

func TestGenerateInsights_FillerSkipsPresentSentences(t *testing.T) {
	a := New(WithRandomSource(lastPick{}))

	got := a.GenerateInsights("", ScoreEmotions(""), nil, nil)

	assert.Equal(t, []string{fillerInsights[6], fillerInsights[5], fillerInsights[4]}, got)
}

func TestGenerateInsights_SeededFillerIsReproducible(t *testing.T) {
	first := New(WithSeed(42)).GenerateInsights("", ScoreEmotions(""), nil, nil)
	second := New(WithSeed(42)).GenerateInsights("", ScoreEmotions(""), nil, nil)

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	for _, s := range first {
		assert.Contains(t, fillerInsights, s)
	}
	assert.Len(t, dedupeStrings(first), 3, "fillers must not repeat")
}

func TestFillerInsights_Unique(t *testing.T) {
	require.Len(t, fillerInsights, 7)
	assert.Equal(t, fillerInsights, dedupeStrings(fillerInsights))
}
