package analyzer

import (
	"math"
	"sort"

	"github.com/YoshitsuguKoike/verve/internal/domain/model/analysis"
)

// EmotionScore is the raw trigger count per emotion for one text
type EmotionScore map[Emotion]int

// Total returns the sum of all counts
func (s EmotionScore) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

const (
	primaryMin       = 60
	primaryMax       = 90
	primaryFallback  = 70
	secondaryMin     = 30
	secondaryMax     = 60
	secondaryDefault = 40
	neutralFloor     = 10
)

// ScoreEmotions detects the primary and secondary emotion of text
func ScoreEmotions(text string) analysis.EmotionResult {
	return scoreTokens(tokenize(text))
}

// countEmotions counts whole-word lexicon hits per emotion, before any fallback
func countEmotions(t *tokenizedText) EmotionScore {
	score := make(EmotionScore, len(emotionOrder))
	for _, e := range emotionOrder {
		score[e] = t.countAny(emotionLexicon[e]...)
	}
	return score
}

type emotionShare struct {
	emotion Emotion
	percent int
}

func scoreTokens(t *tokenizedText) analysis.EmotionResult {
	score := countEmotions(t)

	if score.Total() == 0 {
		// No direct trigger: guess from a couple of loose substrings
		if t.containsAny("goal", "achieve") {
			score[EmotionHope] = 1
		}
		if t.containsAny("stress", "pressure") {
			score[EmotionBurnout] = 1
		}
		if score.Total() == 0 {
			return defaultEmotionResult()
		}
	}

	total := score.Total()
	shares := make([]emotionShare, 0, len(emotionOrder))
	for _, e := range emotionOrder {
		shares = append(shares, emotionShare{
			emotion: e,
			percent: roundHalfUp(float64(score[e]) / float64(total) * 100),
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].percent > shares[j].percent
	})

	primary, secondary := shares[0], shares[1]
	primaryValue := clamp(orDefault(primary.percent, primaryFallback), primaryMin, primaryMax)
	secondaryValue := clamp(orDefault(secondary.percent, secondaryDefault), secondaryMin, secondaryMax)

	intensities := analysis.Intensities{
		{Emotion: primary.emotion.Label(), Value: primaryValue},
		{Emotion: secondary.emotion.Label(), Value: secondaryValue},
		{Emotion: "Neutral", Value: max(neutralFloor, 100-primaryValue-secondaryValue)},
	}
	sort.SliceStable(intensities, func(i, j int) bool {
		return intensities[i].Value > intensities[j].Value
	})
	if len(intensities) > analysis.MaxIntensities {
		intensities = intensities[:analysis.MaxIntensities]
	}

	return analysis.EmotionResult{
		Primary:     primary.emotion.Label(),
		Secondary:   secondary.emotion.Label(),
		Intensities: intensities,
	}
}

// roundHalfUp rounds .5 toward positive infinity
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// orDefault substitutes def for a zero share
func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
