package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/YoshitsuguKoike/verve/internal/app/config"
	"github.com/YoshitsuguKoike/verve/internal/domain/service/analyzer"
	infraConfig "github.com/YoshitsuguKoike/verve/internal/infra/config"
	"github.com/YoshitsuguKoike/verve/internal/interface/cli/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// HomeEnv overrides the settings directory
const HomeEnv = "VERVE_HOME"

// environment is what every command shares. The root command's
// PersistentPreRunE fills in cfg before any command runs.
type environment struct {
	fs     afero.Fs
	getenv func(string) string
	clock  analyzer.Clock
	cfg    config.Config
}

// NewRoot builds the verve command tree on the real filesystem
func NewRoot() *cobra.Command {
	return newRootCmd(&environment{
		fs:     afero.NewOsFs(),
		getenv: os.Getenv,
		clock:  analyzer.ClockFunc(time.Now),
	})
}

func newRootCmd(env *environment) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "verve",
		Short:         "Heuristic emotional and thematic analysis of journal entries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Priority: flags > setting.json > defaults
			baseDir := config.DefaultHome
			if home := env.getenv(HomeEnv); home != "" {
				baseDir = home
			}

			cfg, err := infraConfig.LoadSettings(env.fs, baseDir)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			env.cfg = cfg

			level := cfg.StderrLevel()
			if cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			logger := NewLogger(LogLevelFromString(level), cmd.ErrOrStderr())
			InitializeLoggers(logger)
			logger.Debug("configuration source: %s %s", cfg.ConfigSource(), cfg.SettingPath())
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "stderr log level: debug, info, warn or error")

	cmd.AddCommand(newAnalyzeCmd(env))
	cmd.AddCommand(newCorpusCmd(env))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newConfigCmd(env))
	cmd.AddCommand(version.NewCommand())
	return cmd
}

// Execute runs the root command and prints any error to stderr
func Execute(stderr io.Writer) int {
	if err := NewRoot().Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
