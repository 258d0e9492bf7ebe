package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "vocabulary then derived themes",
			text: "My goal is important but I feel burnout and pressure",
			want: []string{"Goal", "Burnout", "Stress"},
		},
		{
			name: "naive plurals",
			text: "goals and dreams",
			want: []string{"Goal", "Dream"},
		},
		{
			name: "derived themes match substrings",
			text: "I looked at the planet, hopelessly tired",
			want: []string{"Fatigue", "Optimism", "Planning"},
		},
		{
			name: "only a single trailing s counts as plural",
			text: "goalss workings",
			want: []string{},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.text))
		})
	}
}

func TestExtractKeywords_LengthScaledLimit(t *testing.T) {
	base := "goal purpose burnout motivation change emotion future success failure "

	pad := func(n int) string { return base + strings.Repeat(" ", n-len(base)) }

	assert.Equal(t, []string{"Goal", "Purpose", "Burnout"}, ExtractKeywords(base), "short texts keep 3")
	assert.Equal(t, []string{"Goal", "Purpose", "Burnout", "Motivation"}, ExtractKeywords(pad(450)))
	assert.Equal(t,
		[]string{"Goal", "Purpose", "Burnout", "Motivation", "Change", "Emotion", "Future"},
		ExtractKeywords(pad(1000)),
		"long texts cap at 7")
}

func TestExtractKeywords_LimitCountsRunesNotBytes(t *testing.T) {
	// 350 runes, 668 bytes
	text := "goal purpose burnout motivation " + strings.Repeat("é", 350-32)

	assert.Len(t, ExtractKeywords(text), 3)
}

func TestDedupeStrings(t *testing.T) {
	assert.Equal(t, []string{"Stress", "Goal"}, dedupeStrings([]string{"Stress", "Goal", "Stress"}))
	assert.Empty(t, dedupeStrings(nil))
}

func TestThemeVocabulary(t *testing.T) {
	v := themeVocabulary
	assert.Len(t, v, 24)
	assert.Equal(t, "goal", v[0])
	assert.Equal(t, "direction", v[23])
}
