package analyzer

import (
	"github.com/YoshitsuguKoike/verve/internal/domain/model/analysis"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Emotion is one category of the trigger lexicon
type Emotion string

const (
	EmotionJoy       Emotion = "joy"
	EmotionSadness   Emotion = "sadness"
	EmotionAnger     Emotion = "anger"
	EmotionFear      Emotion = "fear"
	EmotionSurprise  Emotion = "surprise"
	EmotionDisgust   Emotion = "disgust"
	EmotionHope      Emotion = "hope"
	EmotionBurnout   Emotion = "burnout"
	EmotionGratitude Emotion = "gratitude"
	EmotionConfusion Emotion = "confusion"
)

// String returns the string representation
func (e Emotion) String() string {
	return string(e)
}

// Label returns the capitalized display name
func (e Emotion) Label() string {
	return capitalize(string(e))
}

// emotionOrder is the lexicon order; it also breaks ranking ties.
var emotionOrder = []Emotion{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionFear,
	EmotionSurprise,
	EmotionDisgust,
	EmotionHope,
	EmotionBurnout,
	EmotionGratitude,
	EmotionConfusion,
}

var emotionLexicon = map[Emotion][]string{
	EmotionJoy:       {"happy", "joy", "delighted", "excited", "thrilled", "content"},
	EmotionSadness:   {"sad", "depressed", "unhappy", "miserable", "down", "blue"},
	EmotionAnger:     {"angry", "frustrated", "annoyed", "irritated", "mad", "furious"},
	EmotionFear:      {"afraid", "scared", "fearful", "terrified", "anxious", "worried"},
	EmotionSurprise:  {"surprised", "shocked", "astonished", "amazed", "startled"},
	EmotionDisgust:   {"disgusted", "revolted", "repulsed", "appalled", "distaste"},
	EmotionHope:      {"hope", "hopeful", "optimistic", "expecting", "looking forward"},
	EmotionBurnout:   {"burnout", "exhausted", "drained", "depleted", "overwhelmed", "tired"},
	EmotionGratitude: {"grateful", "thankful", "appreciative", "blessed", "fortunate"},
	EmotionConfusion: {"confused", "perplexed", "puzzled", "baffled", "unsure"},
}

// neutralResult is reported when a text carries no emotional signal at all.
// Analytical and Curious exist only here, never in the lexicon.
var neutralResult = analysis.EmotionResult{
	Primary:   "Neutral",
	Secondary: "Reflective",
	Intensities: analysis.Intensities{
		{Emotion: "Neutral", Value: 70},
		{Emotion: "Reflective", Value: 30},
		{Emotion: "Analytical", Value: 20},
		{Emotion: "Curious", Value: 15},
	},
}

func defaultEmotionResult() analysis.EmotionResult {
	r := neutralResult
	r.Intensities = append(analysis.Intensities(nil), neutralResult.Intensities...)
	return r
}

// themeVocabulary is the ordered keyword candidate list
var themeVocabulary = []string{
	"goal", "purpose", "burnout", "motivation", "change", "emotion",
	"future", "success", "failure", "growth", "progress", "challenge",
	"balance", "health", "work", "relationship", "opportunity", "obstacle",
	"dream", "aspiration", "struggle", "achievement", "reflection", "direction",
}

// derivedTheme fires when any trigger is a substring of the lowercased text
type derivedTheme struct {
	label    string
	triggers []string
}

var derivedThemes = []derivedTheme{
	{label: "Fatigue", triggers: []string{"tired", "exhausted"}},
	{label: "Optimism", triggers: []string{"hope", "optimistic"}},
	{label: "Stress", triggers: []string{"stress", "pressure"}},
	{label: "Planning", triggers: []string{"future", "plan"}},
}

func capitalize(s string) string {
	return cases.Title(language.English).String(s)
}
