package presenter

import (
	"encoding/json"
	"io"

	"github.com/YoshitsuguKoike/verve/internal/application/dto"
	"github.com/YoshitsuguKoike/verve/internal/application/port/output"
)

// JSONPresenter formats reports as indented JSON for programmatic consumption
type JSONPresenter struct {
	output io.Writer
}

// NewJSONPresenter creates a new JSON presenter
func NewJSONPresenter(output io.Writer) output.AnalysisPresenter {
	return &JSONPresenter{output: output}
}

// PresentAnalysis encodes the full report
func (p *JSONPresenter) PresentAnalysis(out *dto.AnalyzeEntryOutput) error {
	return p.encode(out)
}

// PresentCorpus encodes the entry list
func (p *JSONPresenter) PresentCorpus(out *dto.ListCorpusOutput) error {
	return p.encode(out)
}

func (p *JSONPresenter) encode(v interface{}) error {
	enc := json.NewEncoder(p.output)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
