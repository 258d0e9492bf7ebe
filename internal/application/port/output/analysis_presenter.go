package output

import "github.com/YoshitsuguKoike/verve/internal/application/dto"

// AnalysisPresenter renders use case results in one output format
type AnalysisPresenter interface {
	// PresentAnalysis renders the report for one analyzed entry
	PresentAnalysis(out *dto.AnalyzeEntryOutput) error

	// PresentCorpus renders the history entries
	PresentCorpus(out *dto.ListCorpusOutput) error
}
