package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/YoshitsuguKoike/verve/internal/app/config"
	"github.com/YoshitsuguKoike/verve/internal/application/port/output"
)

// New returns the presenter for format, writing to w
func New(format string, w io.Writer) (output.AnalysisPresenter, error) {
	switch strings.ToLower(format) {
	case config.FormatText, "":
		return NewTextPresenter(w), nil
	case config.FormatJSON:
		return NewJSONPresenter(w), nil
	case config.FormatYAML:
		return NewYAMLPresenter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want text, json or yaml)", format)
	}
}
