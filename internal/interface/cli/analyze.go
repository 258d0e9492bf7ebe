package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/YoshitsuguKoike/verve/internal/adapter/presenter"
	"github.com/YoshitsuguKoike/verve/internal/application/dto"
	"github.com/YoshitsuguKoike/verve/internal/application/usecase"
	"github.com/YoshitsuguKoike/verve/internal/domain/model/journal"
	"github.com/YoshitsuguKoike/verve/internal/domain/repository"
	"github.com/YoshitsuguKoike/verve/internal/domain/service/analyzer"
	"github.com/YoshitsuguKoike/verve/internal/infra/markdown"
	"github.com/YoshitsuguKoike/verve/internal/infra/persistence/file"
	journalrepo "github.com/YoshitsuguKoike/verve/internal/infra/repository/journal"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type analyzeFlags struct {
	file     string
	markdown bool
	format   string
	out      string
	corpus   string
	seed     int64
	today    string
}

func newAnalyzeCmd(env *environment) *cobra.Command {
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze a journal entry",
		Long: `Analyze a journal entry and report its emotional tone, key themes,
patterns across past entries and reflective insights.

The entry is taken from the arguments, from --file, or from stdin.
Markdown files (.md, .markdown or --markdown) are reduced to plain text.
A front matter "date:" becomes the entry date and also the day trends are
measured from, so it takes precedence over --today.`,
		Example: `  verve analyze "My goal is important but I feel burnout and pressure"
  verve analyze --file today.md --corpus 'journal/**/*.md' --format json
  cat entry.txt | verve analyze --seed 1 --out report.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, env, flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "read the entry from a file")
	cmd.Flags().BoolVar(&flags.markdown, "markdown", false, "treat the entry as markdown")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json or yaml")
	cmd.Flags().StringVar(&flags.out, "out", "", "write the report to a file instead of stdout")
	cmd.Flags().StringVar(&flags.corpus, "corpus", "", `past entries: a YAML file, a directory or a glob of markdown files ("builtin" for the sample set)`)
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "seed for filler insights, for reproducible output")
	cmd.Flags().StringVar(&flags.today, "today", "", "treat this date (YYYY-MM-DD) as today")

	return cmd
}

func runAnalyze(cmd *cobra.Command, env *environment, flags *analyzeFlags, args []string) error {
	logger := GetLogger()

	input, err := readEntry(cmd, env, flags, args)
	if err != nil {
		return err
	}

	format := env.cfg.Format()
	if cmd.Flags().Changed("format") {
		format = flags.format
	}
	// fail on a bad format before doing any work
	if _, err := presenter.New(format, io.Discard); err != nil {
		return err
	}

	clock := env.clock
	if flags.today != "" {
		today, err := journal.ParseDate(flags.today)
		if err != nil {
			return fmt.Errorf("--today: %w", err)
		}
		clock = analyzer.FixedClock(today)
	}

	var opts []analyzer.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, analyzer.WithSeed(flags.seed))
	} else if seed, ok := env.cfg.Seed(); ok {
		opts = append(opts, analyzer.WithSeed(seed))
	}

	corpus := env.cfg.Corpus()
	if cmd.Flags().Changed("corpus") {
		corpus = flags.corpus
	}

	uc := usecase.NewAnalyzeEntryUseCase(newEntryRepository(env.fs, corpus), clock, opts...)
	out, err := uc.Execute(cmd.Context(), input)
	if errors.Is(err, usecase.ErrBlankContent) {
		return fmt.Errorf("nothing to analyze: %w", err)
	}
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	p, err := presenter.New(format, &buf)
	if err != nil {
		return err
	}
	if err := p.PresentAnalysis(out); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if flags.out == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := file.NewAtomicWriter(env.fs).Write(flags.out, buf.Bytes()); err != nil {
		return err
	}
	logger.Info("report written to %s", flags.out)
	return nil
}

// readEntry picks the entry text from --file, the arguments or stdin
func readEntry(cmd *cobra.Command, env *environment, flags *analyzeFlags, args []string) (dto.AnalyzeEntryInput, error) {
	var (
		data   []byte
		origin string
	)
	asMarkdown := flags.markdown || env.cfg.Markdown()

	switch {
	case flags.file != "" && len(args) > 0:
		return dto.AnalyzeEntryInput{}, errors.New("give the entry either as arguments or with --file, not both")
	case flags.file != "":
		b, err := afero.ReadFile(env.fs, flags.file)
		if err != nil {
			return dto.AnalyzeEntryInput{}, fmt.Errorf("failed to read entry: %w", err)
		}
		data, origin = b, flags.file
		asMarkdown = asMarkdown || isMarkdownPath(flags.file)
	case len(args) > 0:
		data, origin = []byte(strings.Join(args, " ")), "args"
	default:
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return dto.AnalyzeEntryInput{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		data, origin = b, "stdin"
	}

	if !asMarkdown {
		return dto.AnalyzeEntryInput{Content: string(data), Origin: origin}, nil
	}

	doc, err := markdown.Parse(data)
	if err != nil {
		return dto.AnalyzeEntryInput{}, fmt.Errorf("%s: %w", origin, err)
	}
	input := dto.AnalyzeEntryInput{Content: doc.Text, Origin: origin}
	if doc.HasMeta {
		GetLogger().Debug("front matter in %s: title=%q date=%q", origin, doc.Meta.Title, doc.Meta.Date)
	}
	if doc.Meta.Date != "" {
		date, err := journal.ParseDate(doc.Meta.Date)
		if err != nil {
			return dto.AnalyzeEntryInput{}, fmt.Errorf("%s: %w", origin, err)
		}
		input.Date = date
	}
	return input, nil
}

// newEntryRepository maps a corpus setting to a repository.
// Empty and "builtin" select the bundled sample entries.
func newEntryRepository(fs afero.Fs, corpus string) repository.EntryRepository {
	if corpus == "" || corpus == journalrepo.BuiltinSource {
		return journalrepo.NewBuiltinEntryRepository()
	}
	return journalrepo.NewFileEntryRepository(fs, corpus)
}

func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
