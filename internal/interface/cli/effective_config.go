package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/YoshitsuguKoike/verve/internal/app/config"
	"github.com/YoshitsuguKoike/verve/internal/buildinfo"
	infraConfig "github.com/YoshitsuguKoike/verve/internal/infra/config"
	"github.com/YoshitsuguKoike/verve/internal/infra/persistence/file"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// EffectiveConfig is the applied configuration, for display
type EffectiveConfig struct {
	Meta     EffectiveConfigMeta     `json:"meta" yaml:"meta"`
	Logging  EffectiveConfigLogging  `json:"logging" yaml:"logging"`
	Analysis EffectiveConfigAnalysis `json:"analysis" yaml:"analysis"`
}

// EffectiveConfigMeta contains metadata about the configuration
type EffectiveConfigMeta struct {
	Home           string   `json:"home" yaml:"home"`
	ConfigSource   string   `json:"config_source" yaml:"config_source"`
	SettingPath    string   `json:"setting_path,omitempty" yaml:"setting_path,omitempty"`
	SourcePriority []string `json:"source_priority" yaml:"source_priority"`
	Version        string   `json:"version" yaml:"version"`
	TsUTC          string   `json:"ts_utc" yaml:"ts_utc"`
}

// EffectiveConfigLogging represents logging configuration
type EffectiveConfigLogging struct {
	StderrLevel string `json:"stderr_level" yaml:"stderr_level"`
}

// EffectiveConfigAnalysis represents analyze and corpus defaults
type EffectiveConfigAnalysis struct {
	Format   string `json:"format" yaml:"format"`
	Corpus   string `json:"corpus" yaml:"corpus"`
	Markdown bool   `json:"markdown" yaml:"markdown"`
	Seed     *int64 `json:"seed" yaml:"seed"`
}

func buildEffectiveConfig(cfg config.Config, now time.Time) *EffectiveConfig {
	corpus := cfg.Corpus()
	if corpus == "" {
		corpus = "builtin"
	}
	var seed *int64
	if v, ok := cfg.Seed(); ok {
		seed = &v
	}

	return &EffectiveConfig{
		Meta: EffectiveConfigMeta{
			Home:           cfg.Home(),
			ConfigSource:   cfg.ConfigSource(),
			SettingPath:    cfg.SettingPath(),
			SourcePriority: []string{"cli", "setting.json", "defaults"},
			Version:        buildinfo.GetVersion(),
			TsUTC:          now.UTC().Format(time.RFC3339Nano),
		},
		Logging: EffectiveConfigLogging{
			StderrLevel: LogLevelFromString(cfg.StderrLevel()).String(),
		},
		Analysis: EffectiveConfigAnalysis{
			Format:   cfg.Format(),
			Corpus:   corpus,
			Markdown: cfg.Markdown(),
			Seed:     seed,
		},
	}
}

func newConfigCmd(env *environment) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			effective := buildEffectiveConfig(env.cfg, env.clock.Now())

			var (
				data []byte
				err  error
			)
			switch format {
			case "yaml":
				data, err = yaml.Marshal(effective)
			case "json":
				data, err = json.MarshalIndent(effective, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("unsupported format: %s", format)
			}
			if err != nil {
				return fmt.Errorf("failed to encode configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")

	cmd.AddCommand(newConfigInitCmd(env))
	return cmd
}

func newConfigInitCmd(env *environment) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a setting.json with every default spelled out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := filepath.Join(env.cfg.Home(), infraConfig.SettingFile)

			exists, err := afero.Exists(env.fs, path)
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			data := append(infraConfig.CreateDefaultSettings(), '\n')
			if err := file.NewAtomicWriter(env.fs).Write(path, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing setting.json")
	return cmd
}
