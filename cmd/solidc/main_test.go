package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/solidc/internal/app"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		files        map[string]string
		args         []string
		expectedExit int
	}{
		{
			name:         "Version",
			args:         []string{"version"},
			expectedExit: 0,
		},
		{
			name: "Explain with manifest",
			files: map[string]string{
				"package.json": `{"solid":{"ssr":true}}`,
				"src/app.jsx":  "export default 1",
			},
			args:         []string{"explain", "src/app.jsx"},
			expectedExit: 0,
		},
		{
			name: "Explain with malformed manifest",
			files: map[string]string{
				"package.json": `{"solid":`,
				"src/app.jsx":  "export default 1",
			},
			args:         []string{"explain", "src/app.jsx"},
			expectedExit: 1,
		},
		{
			name: "Explain directory",
			files: map[string]string{
				"src/app.jsx":     "export default 1",
				"src/lib/util.ts": "export const x = 1",
			},
			args:         []string{"explain", "src"},
			expectedExit: 0,
		},
		{
			name:         "Compile missing file",
			args:         []string{"compile", "missing.jsx"},
			expectedExit: 1,
		},
		{
			name:         "Unknown command",
			args:         []string{"frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			for rel, contents := range tt.files {
				path := filepath.Join(tmpDir, rel)
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
				require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
			}

			var stdout bytes.Buffer
			exitCode := run(tt.args, app.WithWorkDir(tmpDir), app.WithOutput(&stdout))
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
