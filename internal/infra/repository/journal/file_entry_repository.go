// Package journal loads past journal entries from the bundled sample set or
// from files on disk.
package journal

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/YoshitsuguKoike/verve/internal/domain/model/journal"
	"github.com/YoshitsuguKoike/verve/internal/infra/markdown"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// corpusFile is the YAML corpus layout
//
//	entries:
//	  - date: 2025-04-04
//	    content: ...
type corpusFile struct {
	Entries []corpusEntry `yaml:"entries"`
}

type corpusEntry struct {
	ID      string `yaml:"id,omitempty"`
	Date    string `yaml:"date"`
	Content string `yaml:"content"`
}

// FileEntryRepository reads entries from a YAML corpus file or from markdown
// files matched by a doublestar pattern. A directory is searched for **/*.md.
type FileEntryRepository struct {
	FS      afero.Fs
	pattern string
}

// NewFileEntryRepository creates a file-based entry repository
func NewFileEntryRepository(fs afero.Fs, pattern string) *FileEntryRepository {
	return &FileEntryRepository{FS: fs, pattern: pattern}
}

// Source returns the configured path or pattern
func (r *FileEntryRepository) Source() string {
	return r.pattern
}

// List loads entries. YAML files keep their order, markdown matches are
// ordered by path.
func (r *FileEntryRepository) List(ctx context.Context) ([]journal.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.pattern == "" {
		return nil, fmt.Errorf("corpus path is empty")
	}

	pattern := filepath.ToSlash(r.pattern)
	if isYAMLPath(pattern) && !hasMeta(pattern) {
		return r.loadYAML(r.pattern)
	}

	if !hasMeta(pattern) {
		if info, err := r.FS.Stat(r.pattern); err == nil && info.IsDir() {
			pattern = strings.TrimSuffix(pattern, "/") + "/**/*.md"
		}
	}
	return r.loadMarkdown(ctx, pattern)
}

func (r *FileEntryRepository) loadYAML(path string) ([]journal.Entry, error) {
	data, err := afero.ReadFile(r.FS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}

	var file corpusFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse corpus %s: %w", path, err)
	}

	entries := make([]journal.Entry, 0, len(file.Entries))
	for i, raw := range file.Entries {
		entry, err := raw.toEntry()
		if err != nil {
			return nil, fmt.Errorf("corpus %s entry %d: %w", path, i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (e corpusEntry) toEntry() (journal.Entry, error) {
	date, err := journal.ParseDate(e.Date)
	if err != nil {
		return journal.Entry{}, err
	}
	if e.ID == "" {
		return journal.NewEntry(date, e.Content)
	}
	id, err := journal.NewEntryIDFromString(e.ID)
	if err != nil {
		return journal.Entry{}, err
	}
	return journal.ReconstructEntry(id, date, e.Content), nil
}

func (r *FileEntryRepository) loadMarkdown(ctx context.Context, pattern string) ([]journal.Entry, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid corpus pattern %q", r.pattern)
	}

	base, rel := doublestar.SplitPattern(pattern)
	fsys := r.FS
	if base != "." {
		fsys = afero.NewBasePathFs(r.FS, filepath.FromSlash(base))
	}

	matches, err := doublestar.Glob(afero.NewIOFS(fsys), rel, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to match corpus pattern %q: %w", r.pattern, err)
	}
	sort.Strings(matches)

	entries := make([]journal.Entry, 0, len(matches))
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(filepath.FromSlash(base), filepath.FromSlash(m))
		entry, err := r.loadMarkdownEntry(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *FileEntryRepository) loadMarkdownEntry(path string) (journal.Entry, error) {
	data, err := afero.ReadFile(r.FS, path)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := markdown.Parse(data)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("%s: %w", path, err)
	}
	if !doc.HasMeta {
		return journal.Entry{}, fmt.Errorf("%s: no front matter (need a date: line)", path)
	}
	if doc.Meta.Date == "" {
		return journal.Entry{}, fmt.Errorf("%s: front matter has no date", path)
	}

	date, err := journal.ParseDate(doc.Meta.Date)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("%s: %w", path, err)
	}
	entry, err := journal.NewEntry(date, doc.Text)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("%s: %w", path, err)
	}
	return entry, nil
}

func isYAMLPath(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".yaml" || ext == ".yml"
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}
