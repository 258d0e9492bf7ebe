package file_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/YoshitsuguKoike/verve/internal/infra/persistence/file"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriter_Write(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		setup func(t *testing.T, fs afero.Fs)
		data  string
	}{
		{name: "new file in new directory", path: "reports/2025/04/entry.json", data: `{"keywords":[]}`},
		{
			name: "replaces existing report",
			path: "report.txt",
			setup: func(t *testing.T, fs afero.Fs) {
				require.NoError(t, afero.WriteFile(fs, "report.txt", []byte("old report"), 0o644))
			},
			data: "new report",
		},
		{name: "empty report", path: "empty.txt", data: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.setup != nil {
				tt.setup(t, fs)
			}

			require.NoError(t, file.NewAtomicWriter(fs).Write(tt.path, []byte(tt.data)))

			got, err := afero.ReadFile(fs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, string(got))
		})
	}
}

// renameFailFs fails every rename
type renameFailFs struct {
	afero.Fs
}

func (renameFailFs) Rename(string, string) error {
	return errors.New("rename failed")
}

func TestAtomicWriter_RenameFailureKeepsOldReportAndCleansUp(t *testing.T) {
	fs := renameFailFs{Fs: afero.NewMemMapFs()}
	require.NoError(t, afero.WriteFile(fs, "report.txt", []byte("old report"), 0o644))

	err := file.NewAtomicWriter(fs).Write("report.txt", []byte("new report"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "report.txt")

	got, err := afero.ReadFile(fs, "report.txt")
	require.NoError(t, err)
	assert.Equal(t, "old report", string(got))

	infos, err := afero.ReadDir(fs, ".")
	require.NoError(t, err)
	for _, info := range infos {
		assert.False(t, strings.HasPrefix(info.Name(), ".verve-tmp-"), "temp file left behind: %s", info.Name())
	}
}

func TestAtomicWriter_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := file.NewAtomicWriter(fs).Write("out/report.txt", []byte("x"))

	assert.Error(t, err)
}
