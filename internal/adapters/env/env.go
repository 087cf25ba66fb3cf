// Package env resolves the build mode from the process environment and an
// optional project .env file.
package env

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/zerr"
)

// Source reads environment values. Variables set in the real environment
// always win over values from the project .env file.
type Source struct {
	lookup  func(string) (string, bool)
	environ func() []string
}

// New returns a Source backed by the process environment.
func New() *Source {
	return &Source{lookup: os.LookupEnv, environ: os.Environ}
}

// NewWithLookup returns a Source backed by the given environment list.
func NewWithLookup(vars map[string]string) *Source {
	return &Source{
		lookup: func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		},
		environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			slices.Sort(out)
			return out
		},
	}
}

// Mode returns the build mode for the project rooted at root.
func (s *Source) Mode(root string) (domain.Mode, error) {
	if v, ok := s.lookup(domain.ModeEnvVar); ok {
		return domain.ParseMode(v), nil
	}

	file, err := readEnvFile(root)
	if err != nil {
		return domain.ModeDevelopment, err
	}
	return domain.ParseMode(file[domain.ModeEnvVar]), nil
}

// Environ returns the environment handed to compiler workers: the process
// environment, then .env values that are not already set, then NODE_ENV
// pinned to the resolved mode.
func (s *Source) Environ(root string, mode domain.Mode) ([]string, error) {
	file, err := readEnvFile(root)
	if err != nil {
		return nil, err
	}

	base := s.environ()
	seen := make(map[string]bool, len(base))
	out := make([]string, 0, len(base)+len(file)+1)
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if key == domain.ModeEnvVar {
			continue
		}
		seen[key] = true
		out = append(out, kv)
	}

	keys := make([]string, 0, len(file))
	for k := range file {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if seen[k] || k == domain.ModeEnvVar {
			continue
		}
		out = append(out, k+"="+file[k])
	}

	return append(out, domain.ModeEnvVar+"="+string(mode)), nil
}

// ProjectVars returns the entries of the project .env file as sorted
// KEY=value pairs. A missing file yields none.
func (s *Source) ProjectVars(root string) ([]string, error) {
	file, err := readEnvFile(root)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(file))
	for k, v := range file {
		out = append(out, k+"="+v)
	}
	slices.Sort(out)
	return out, nil
}

func readEnvFile(root string) (map[string]string, error) {
	if root == "" {
		return map[string]string{}, nil
	}

	path := filepath.Join(root, domain.EnvFileName)
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "path", path)
	}
	return vars, nil
}
