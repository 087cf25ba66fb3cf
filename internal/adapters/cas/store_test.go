package cas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/solidc/internal/adapters/cas"
	"go.trai.ch/solidc/internal/core/domain"
)

const (
	fpA domain.Fingerprint = "aa11"
	fpB domain.Fingerprint = "bb22"
	fpC domain.Fingerprint = "cc33"
)

func artifact(char string) *domain.Artifact {
	return domain.NewArtifact(strings.Repeat(char, 64), json.RawMessage(`{"version":3}`))
}

func TestStore_PutAndGet(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "cache"), domain.DefaultDiskBudget)
	require.NoError(t, err)

	want := artifact("a")
	want.Bare = true
	require.NoError(t, store.Put(fpA, want))

	got, err := store.Get(fpA)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Code, got.Code)
	assert.JSONEq(t, string(want.SourceMap), string(got.SourceMap))
	assert.Equal(t, want.Size, got.Size)
	assert.True(t, got.Bare)

	assert.FileExists(t, filepath.Join(store.Dir(), "aa", "aa11"+domain.ArtifactExt))
}

func TestStore_Miss(t *testing.T) {
	store, err := cas.NewStore(t.TempDir(), domain.DefaultDiskBudget)
	require.NoError(t, err)

	got, err := store.Get(fpA)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := cas.NewStore(dir, domain.DefaultDiskBudget)
	require.NoError(t, err)
	require.NoError(t, first.Put(fpA, artifact("a")))

	second, err := cas.NewStore(dir, domain.DefaultDiskBudget)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Len())

	got, err := second.Get(fpA)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, artifact("a").Code, got.Code)
}

func TestStore_EvictsOldestOverBudget(t *testing.T) {
	probe, err := cas.NewStore(t.TempDir(), domain.DefaultDiskBudget)
	require.NoError(t, err)
	require.NoError(t, probe.Put(fpA, artifact("a")))
	unit := probe.Size()
	require.Positive(t, unit)

	store, err := cas.NewStore(t.TempDir(), unit*5/2)
	require.NoError(t, err)

	require.NoError(t, store.Put(fpA, artifact("a")))
	require.NoError(t, store.Put(fpB, artifact("b")))
	require.NoError(t, store.Put(fpC, artifact("c")))

	assert.Equal(t, 2, store.Len())
	assert.NoFileExists(t, filepath.Join(store.Dir(), "aa", "aa11"+domain.ArtifactExt))

	got, err := store.Get(fpA)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.Get(fpC)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestStore_ReopenOrdersByModTime(t *testing.T) {
	dir := t.TempDir()

	seed, err := cas.NewStore(dir, domain.DefaultDiskBudget)
	require.NoError(t, err)
	require.NoError(t, seed.Put(fpA, artifact("a")))
	require.NoError(t, seed.Put(fpB, artifact("b")))
	unit := seed.Size() / 2

	old := time.Now().Add(-time.Hour)
	pathA := filepath.Join(dir, "aa", "aa11"+domain.ArtifactExt)
	pathB := filepath.Join(dir, "bb", "bb22"+domain.ArtifactExt)
	require.NoError(t, os.Chtimes(pathB, old, old))
	require.NoError(t, os.Chtimes(pathA, time.Now(), time.Now()))

	store, err := cas.NewStore(dir, unit*3/2)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Len())
	assert.FileExists(t, pathA)
	assert.NoFileExists(t, pathB)
}

func TestStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := cas.NewStore(dir, domain.DefaultDiskBudget)
	require.NoError(t, err)
	require.NoError(t, store.Put(fpA, artifact("a")))

	path := filepath.Join(dir, "aa", "aa11"+domain.ArtifactExt)
	require.NoError(t, os.WriteFile(path, []byte("not zstd"), domain.FilePerm))

	got, err := store.Get(fpA)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), domain.ErrStoreDecodeFailed.Error())

	got, err = store.Get(fpA)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_MissingFileIsMiss(t *testing.T) {
	dir := t.TempDir()
	store, err := cas.NewStore(dir, domain.DefaultDiskBudget)
	require.NoError(t, err)
	require.NoError(t, store.Put(fpA, artifact("a")))

	require.NoError(t, os.Remove(filepath.Join(dir, "aa", "aa11"+domain.ArtifactExt)))

	got, err := store.Get(fpA)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, store.Len())
}

func TestStore_Purge(t *testing.T) {
	dir := t.TempDir()
	store, err := cas.NewStore(dir, domain.DefaultDiskBudget)
	require.NoError(t, err)
	require.NoError(t, store.Put(fpA, artifact("a")))
	require.NoError(t, store.Put(fpB, artifact("b")))

	require.NoError(t, store.Purge())

	assert.Equal(t, 0, store.Len())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_RemovesStaleTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "aa"), domain.DirPerm))
	stale := filepath.Join(dir, "aa", "aa11.art.123.tmp")
	require.NoError(t, os.WriteFile(stale, []byte("partial"), domain.FilePerm))

	store, err := cas.NewStore(dir, domain.DefaultDiskBudget)
	require.NoError(t, err)

	assert.Equal(t, 0, store.Len())
	assert.NoFileExists(t, stale)
}
