package presenter

import (
	"io"

	"github.com/YoshitsuguKoike/verve/internal/application/dto"
	"github.com/YoshitsuguKoike/verve/internal/application/port/output"
	"gopkg.in/yaml.v3"
)

// YAMLPresenter formats reports as YAML documents
type YAMLPresenter struct {
	output io.Writer
}

// NewYAMLPresenter creates a new YAML presenter
func NewYAMLPresenter(output io.Writer) output.AnalysisPresenter {
	return &YAMLPresenter{output: output}
}

// PresentAnalysis encodes the full report
func (p *YAMLPresenter) PresentAnalysis(out *dto.AnalyzeEntryOutput) error {
	return p.encode(out)
}

// PresentCorpus encodes the entry list
func (p *YAMLPresenter) PresentCorpus(out *dto.ListCorpusOutput) error {
	return p.encode(out)
}

func (p *YAMLPresenter) encode(v interface{}) error {
	enc := yaml.NewEncoder(p.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
