package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/YoshitsuguKoike/verve/internal/app/config"
	"github.com/spf13/afero"
)

// SettingFile is the settings file name inside the home directory
const SettingFile = "setting.json"

// RawSettings is the shape of setting.json. Nil fields fall back to defaults.
type RawSettings struct {
	StderrLevel *string `json:"stderr_level,omitempty"`
	Format      *string `json:"format,omitempty"`
	Corpus      *string `json:"corpus,omitempty"`
	Markdown    *bool   `json:"markdown,omitempty"`
	Seed        *int64  `json:"seed,omitempty"`
}

// LoadSettings reads <baseDir>/setting.json when present.
// Priority: setting.json > defaults. A missing file is not an error.
func LoadSettings(fsys afero.Fs, baseDir string) (*config.AppConfig, error) {
	settings := &RawSettings{}
	configSource := "default"
	settingPath := ""

	jsonPath := filepath.Join(baseDir, SettingFile)
	data, err := afero.ReadFile(fsys, jsonPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", jsonPath, err)
		}
		configSource = "json"
		settingPath = jsonPath
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", jsonPath, err)
	}

	applyDefaults(settings)
	if !config.IsValidFormat(*settings.Format) {
		return nil, fmt.Errorf("%s: unsupported format %q (want text, json or yaml)", jsonPath, *settings.Format)
	}

	return buildAppConfig(baseDir, settings, configSource, settingPath), nil
}

// applyDefaults fills in default values for nil fields. Seed stays nil.
func applyDefaults(settings *RawSettings) {
	if settings.StderrLevel == nil {
		v := "warn"
		settings.StderrLevel = &v
	}
	if settings.Format == nil {
		v := config.FormatText
		settings.Format = &v
	}
	if settings.Corpus == nil {
		v := ""
		settings.Corpus = &v
	}
	if settings.Markdown == nil {
		v := false
		settings.Markdown = &v
	}
}

func buildAppConfig(baseDir string, settings *RawSettings, configSource, settingPath string) *config.AppConfig {
	return config.NewAppConfig(
		baseDir,
		*settings.StderrLevel,
		*settings.Format,
		*settings.Corpus,
		*settings.Markdown,
		settings.Seed,
		configSource,
		settingPath,
	)
}

// CreateDefaultSettings returns setting.json content with every default spelled out
func CreateDefaultSettings() []byte {
	settings := &RawSettings{}
	applyDefaults(settings)

	data, _ := json.MarshalIndent(settings, "", "  ")
	return data
}
