package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/YoshitsuguKoike/verve/internal/application/dto"
	"github.com/YoshitsuguKoike/verve/internal/application/port/output"
	"github.com/YoshitsuguKoike/verve/internal/domain/model/analysis"
)

const barWidth = 20

// TextPresenter renders reports for a terminal
type TextPresenter struct {
	output io.Writer
}

// NewTextPresenter creates a new text presenter
func NewTextPresenter(output io.Writer) output.AnalysisPresenter {
	return &TextPresenter{output: output}
}

// PresentAnalysis writes the four report sections
func (p *TextPresenter) PresentAnalysis(out *dto.AnalyzeEntryOutput) error {
	var b strings.Builder
	a := out.Analysis

	fmt.Fprintf(&b, "Entry %s (%s), compared with %d entries from %s\n\n",
		out.EntryID, out.Date, out.Corpus.Entries, out.Corpus.Source)

	b.WriteString("Emotional Tone\n")
	fmt.Fprintf(&b, "  Primary: %s    Secondary: %s\n", a.Emotions.Primary, a.Emotions.Secondary)
	width := labelWidth(a.Emotions.Intensities)
	for _, it := range a.Emotions.Intensities {
		fmt.Fprintf(&b, "  %-*s  %s %3d%%\n", width, it.Emotion, bar(it.Value), it.Value)
	}

	b.WriteString("\nKey Themes\n")
	if len(a.Keywords) == 0 {
		b.WriteString("  (none)\n")
	} else {
		fmt.Fprintf(&b, "  %s\n", strings.Join(a.Keywords, ", "))
	}

	b.WriteString("\nPatterns & Trends\n")
	if len(a.Trends) == 0 {
		b.WriteString("  No patterns yet.\n")
	}
	for i, t := range a.Trends {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, t.Description)
		if hint := trendHint(t); hint != "" {
			fmt.Fprintf(&b, "     %s\n", hint)
		}
	}

	b.WriteString("\nReflective Insights\n")
	for _, insight := range a.Insights {
		fmt.Fprintf(&b, "  • %s\n", insight)
	}

	_, err := io.WriteString(p.output, b.String())
	return err
}

// PresentCorpus lists each entry with its date and id
func (p *TextPresenter) PresentCorpus(out *dto.ListCorpusOutput) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Corpus: %s (%d entries)\n", out.Source, len(out.Entries))
	for _, e := range out.Entries {
		fmt.Fprintf(&b, "\n%s  %s\n", e.Date, e.ID)
		for _, line := range strings.Split(strings.TrimSpace(e.Content), "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	_, err := io.WriteString(p.output, b.String())
	return err
}

func trendHint(t analysis.Trend) string {
	switch {
	case t.Frequency > 0:
		return fmt.Sprintf("Mentioned %d times", t.Frequency)
	case t.DaysAgo > 0:
		return fmt.Sprintf("Last mentioned %d days ago", t.DaysAgo)
	}
	return ""
}

func bar(value int) string {
	filled := min(max(value, 0), 100) * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func labelWidth(intensities analysis.Intensities) int {
	w := 0
	for _, name := range intensities.Names() {
		w = max(w, len(name))
	}
	return w
}
