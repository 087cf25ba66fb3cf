package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/solidc/cmd/solidc/commands"
	"go.trai.ch/solidc/internal/adapters/env"
	"go.trai.ch/solidc/internal/adapters/fingerprint"
	"go.trai.ch/solidc/internal/adapters/fs"
	"go.trai.ch/solidc/internal/adapters/manifest"
	"go.trai.ch/solidc/internal/adapters/telemetry"
	"go.trai.ch/solidc/internal/app"
	"go.trai.ch/solidc/internal/build"
	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports/mocks"
	"go.trai.ch/solidc/internal/engine/strategy"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T, root string, stdout *bytes.Buffer) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := domain.DefaultToolConfig(root)
	cfg.Cache.Dir = filepath.Join(root, cfg.Cache.Dir)
	cfg.OutDir = filepath.Join(root, cfg.OutDir)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(cfg, nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	a := app.New(
		loader,
		log,
		env.NewWithLookup(map[string]string{}),
		manifest.NewResolver(),
		strategy.NewSelector(),
		fingerprint.NewComputer(),
		telemetry.NewNoOpTracer(),
		fs.NewFinder(fs.NewWalker()),
	)
	app.WithWorkDir(root)(a)
	app.WithOutput(stdout)(a)
	return a
}

func TestExplain_ArchFlag(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(`{"solid":{"ssr":true}}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "server.jsx"), []byte("x"), 0o600))

	var stdout bytes.Buffer
	cli := commands.New(newApp(t, root, &stdout))
	cli.SetArgs([]string{"explain", "--arch", "os", "server.jsx"})
	require.NoError(t, cli.Execute(context.Background()))

	var report struct {
		Files []map[string]any `json:"files"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	require.Len(t, report.Files, 1)
	assert.Equal(t, "server-ssr", report.Files[0]["variant"])
}

func TestExplain_RequiresFiles(t *testing.T) {
	var stdout bytes.Buffer
	cli := commands.New(newApp(t, t.TempDir(), &stdout))
	cli.SetOutput(&bytes.Buffer{})
	cli.SetArgs([]string{"explain"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCompile_NoArgsShowsHelp(t *testing.T) {
	var stdout, help bytes.Buffer
	cli := commands.New(newApp(t, t.TempDir(), &stdout))
	cli.SetOutput(&help)
	cli.SetArgs([]string{"compile"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, help.String(), "compile [files...]")
}

func TestVersion(t *testing.T) {
	var stdout, out bytes.Buffer
	cli := commands.New(newApp(t, t.TempDir(), &stdout))
	cli.SetOutput(&out)
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "solidc version "+build.Version+"\n", out.String())
}

func TestClean(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(root, domain.DefaultOutPath())
	require.NoError(t, os.MkdirAll(outDir, 0o750))

	var stdout bytes.Buffer
	cli := commands.New(newApp(t, root, &stdout))
	cli.SetArgs([]string{"clean"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.NoDirExists(t, outDir)
}
