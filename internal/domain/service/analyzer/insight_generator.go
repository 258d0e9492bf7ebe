package analyzer

import (
	"strings"

	"github.com/YoshitsuguKoike/verve/internal/domain/model/analysis"
	"github.com/YoshitsuguKoike/verve/internal/domain/model/journal"
)

const (
	minInsights          = 3
	maxInsights          = 5
	questionMarksTrigger = 2
)

// Triggered insights, in the order they are checked
const (
	InsightBurnout    = "Your entries suggest persistent feelings of burnout. Consider prioritizing rest and rejuvenation."
	InsightHope       = "The hopeful tone in your writing suggests you're finding new possibilities even amid challenges."
	InsightChange     = "You're contemplating change or new directions. This period of reflection can lead to meaningful growth."
	InsightPurpose    = "Reconnecting with your core purpose might help provide clarity during this period."
	InsightBecoming   = "You write more about becoming than being. Consider reflecting on appreciating where you are today."
	InsightPastFocus  = "Your writing focuses more on the past than the future. What small step could you take forward today?"
	InsightQuestions  = "Your entry contains several questions, suggesting a period of deep reflection and seeking clarity."
	InsightRepetition = "Notice any recurring thoughts or phrases in your writing. These patterns may reveal underlying themes to explore."
)

// fillerInsights pad the list when too few insights were triggered
var fillerInsights = []string{
	"Consider how your current challenges are shaping your growth journey.",
	"What small daily practice might help you reconnect with your purpose?",
	"Your writing reveals thoughtfulness and self-awareness.",
	"The themes in your journal suggest you're navigating a significant transition period.",
	"How might you reframe challenges as opportunities for learning?",
	"Your reflective practice is building valuable self-knowledge.",
	"Notice how your energy shifts when writing about different aspects of your life.",
}

// GenerateInsights assembles 3 to 5 reflective sentences for text
func (a *Analyzer) GenerateInsights(text string, emotions analysis.EmotionResult, keywords []string, history []journal.Entry) []string {
	t := tokenize(text)
	var insights []string

	if strings.EqualFold(emotions.Primary, EmotionBurnout.String()) {
		insights = append(insights, InsightBurnout)
	}
	if strings.EqualFold(emotions.Primary, EmotionHope.String()) || strings.EqualFold(emotions.Secondary, EmotionHope.String()) {
		insights = append(insights, InsightHope)
	}
	if containsFold(keywords, "change", "direction") {
		insights = append(insights, InsightChange)
	}
	if containsFold(keywords, "goal", "purpose") {
		insights = append(insights, InsightPurpose)
	}
	if t.countAny("become", "becoming") > t.count("being") {
		insights = append(insights, InsightBecoming)
	}
	if t.countAny("was", "were", "had") > t.countAny("will", "going to") {
		insights = append(insights, InsightPastFocus)
	}
	if strings.Count(text, "?") > questionMarksTrigger {
		insights = append(insights, InsightQuestions)
	}
	if hasRepeatedWord(joinHistory(history) + " " + text) {
		insights = append(insights, InsightRepetition)
	}

	insights = a.padInsights(insights)
	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// padInsights appends fillers until minInsights is reached. Each pick is
// uniform over the fillers not already present.
func (a *Analyzer) padInsights(insights []string) []string {
	for len(insights) < minInsights {
		var unused []string
		for _, f := range fillerInsights {
			if !containsString(insights, f) {
				unused = append(unused, f)
			}
		}
		if len(unused) == 0 {
			break
		}
		insights = append(insights, unused[a.random.Intn(len(unused))])
	}
	return insights
}

func joinHistory(history []journal.Entry) string {
	parts := make([]string, len(history))
	for i, e := range history {
		parts[i] = e.Content()
	}
	return strings.Join(parts, " ")
}

func containsFold(list []string, targets ...string) bool {
	for _, s := range list {
		for _, target := range targets {
			if strings.EqualFold(s, target) {
				return true
			}
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
