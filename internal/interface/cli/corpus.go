package cli

import (
	"github.com/YoshitsuguKoike/verve/internal/adapter/presenter"
	"github.com/YoshitsuguKoike/verve/internal/application/usecase"
	"github.com/spf13/cobra"
)

func newCorpusCmd(env *environment) *cobra.Command {
	var corpus, format string

	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "List the past entries trends are computed against",
		Long: `List the past entries trends are computed against, in corpus order.
The first entries are treated as the most recent ones.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("corpus") {
				corpus = env.cfg.Corpus()
			}
			if !cmd.Flags().Changed("format") {
				format = env.cfg.Format()
			}

			p, err := presenter.New(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			out, err := usecase.NewListCorpusUseCase(newEntryRepository(env.fs, corpus)).Execute(cmd.Context())
			if err != nil {
				return err
			}
			GetLogger().Info("listed %d entries from %s", len(out.Entries), out.Source)
			return p.PresentCorpus(out)
		},
	}

	cmd.Flags().StringVar(&corpus, "corpus", "", `a YAML file, a directory or a glob of markdown files ("builtin" for the sample set)`)
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")
	return cmd
}
