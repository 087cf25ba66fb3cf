// Package cas implements the durable, fingerprint addressed artifact store.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/solidc/internal/adapters/codec"
	"go.trai.ch/solidc/internal/adapters/lru"
	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/zerr"
)

const tempPattern = ".*.tmp"

// Store implements ports.ArtifactStore using one compressed file per fingerprint.
// The recency index is rebuilt from file modification times when the store is opened.
type Store struct {
	dir   string
	index *lru.Sized[domain.Fingerprint, string]
}

var _ ports.ArtifactStore = (*Store)(nil)

type diskEntry struct {
	fp      domain.Fingerprint
	path    string
	size    int64
	modTime time.Time
}

// NewStore opens the store rooted at dir, creating it if needed.
// Entries beyond budget bytes are evicted oldest first.
func NewStore(dir string, budget int64) (*Store, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "dir", dir)
	}

	index, err := lru.New(budget, func(_ domain.Fingerprint, path string) {
		_ = os.Remove(path)
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	s := &Store{dir: dir, index: index}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Len returns the number of indexed artifacts.
func (s *Store) Len() int {
	return s.index.Len()
}

// Size returns the number of bytes the indexed artifacts occupy on disk.
func (s *Store) Size() int64 {
	return s.index.Size()
}

func (s *Store) rebuild() error {
	var entries []diskEntry
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasSuffix(name, ".tmp") {
			_ = os.Remove(path)
			return nil
		}
		if filepath.Ext(name) != domain.ArtifactExt {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, diskEntry{
			fp:      domain.Fingerprint(strings.TrimSuffix(name, domain.ArtifactExt)),
			path:    path,
			size:    info.Size(),
			modTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "dir", s.dir)
	}

	slices.SortFunc(entries, func(a, b diskEntry) int {
		return a.modTime.Compare(b.modTime)
	})
	for _, e := range entries {
		s.index.Add(e.fp, e.path, e.size)
	}
	return nil
}

func (s *Store) pathFor(fp domain.Fingerprint) string {
	return filepath.Join(s.dir, fp.Shard(), fp.String()+domain.ArtifactExt)
}

// Get retrieves the artifact stored under fp. It returns nil, nil on a miss.
// The entry is pinned while it is read so a concurrent Put cannot evict it.
func (s *Store) Get(fp domain.Fingerprint) (*domain.Artifact, error) {
	path, release, ok := s.index.Acquire(fp)
	if !ok {
		return nil, nil
	}
	defer release()

	//nolint:gosec // Path is constructed from the store directory and a hex fingerprint
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.index.Remove(fp)
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "fingerprint", fp.String())
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		s.index.Remove(fp)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreDecodeFailed.Error()), "fingerprint", fp.String())
	}

	var artifact domain.Artifact
	if err := codec.Unmarshal(raw, &artifact); err != nil {
		s.index.Remove(fp)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreDecodeFailed.Error()), "fingerprint", fp.String())
	}

	now := time.Now()
	_ = os.Chtimes(path, now, now)

	return &artifact, nil
}

// Put stores artifact under fp. The file is written to a temporary name and
// renamed into place so readers never observe a partial artifact.
func (s *Store) Put(fp domain.Fingerprint, artifact *domain.Artifact) error {
	raw, err := codec.Marshal(artifact)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreEncodeFailed.Error())
	}
	data := codec.Compress(raw)

	path := s.pathFor(fp)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	if err := writeAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "fingerprint", fp.String())
	}

	s.index.Add(fp, path, int64(len(data)))
	return nil
}

// Purge removes every stored artifact.
func (s *Store) Purge() error {
	s.index.Purge()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrStorePurgeFailed.Error())
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(s.dir, e.Name())); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStorePurgeFailed.Error()), "path", e.Name())
		}
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+tempPattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
