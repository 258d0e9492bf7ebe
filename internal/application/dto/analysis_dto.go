package dto

import (
	"time"

	"github.com/YoshitsuguKoike/verve/internal/domain/model/analysis"
)

// AnalyzeEntryInput represents input for entry analysis
type AnalyzeEntryInput struct {
	Content string    // Entry text, already converted from markdown if needed
	Date    time.Time // Entry date; zero means today
	Origin  string    // Where the text came from ("args", "stdin" or a path), for logs
}

// AnalyzeEntryOutput is the analysis report for one entry
type AnalyzeEntryOutput struct {
	EntryID    string          `json:"entryId" yaml:"entryId" jsonschema:"description=ULID assigned to the analyzed entry"`
	Date       string          `json:"date" yaml:"date" jsonschema:"description=Entry date (YYYY-MM-DD)"`
	AnalyzedAt time.Time       `json:"analyzedAt" yaml:"analyzedAt"`
	Corpus     CorpusSummary   `json:"corpus" yaml:"corpus"`
	Analysis   analysis.Result `json:"analysis" yaml:"analysis"`
}

// CorpusSummary describes the history the trends were computed against
type CorpusSummary struct {
	Source  string `json:"source" yaml:"source"`
	Entries int    `json:"entries" yaml:"entries"`
}

// EntryDTO represents a history entry in data transfer format
type EntryDTO struct {
	ID      string `json:"id" yaml:"id"`
	Date    string `json:"date" yaml:"date"`
	Content string `json:"content" yaml:"content"`
}

// ListCorpusOutput lists the history entries in corpus order
type ListCorpusOutput struct {
	Source  string     `json:"source" yaml:"source"`
	Entries []EntryDTO `json:"entries" yaml:"entries"`
}
