// Package shell runs external compiler workers over a JSON stdin/stdout protocol.
package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.trai.ch/solidc/internal/adapters/fingerprint"
	"go.trai.ch/solidc/internal/core/domain"
	"go.trai.ch/solidc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor starts one worker process per request.
// The request is written to stdin as JSON and the response read from stdout.
// Each stderr line is forwarded to the logger as a warning.
type Executor struct {
	logger  ports.Logger
	command []string
	dir     string
	env     []string
}

// NewExecutor creates an Executor for command, run in dir with env.
// A nil env inherits the process environment.
func NewExecutor(logger ports.Logger, command []string, dir string, env []string) *Executor {
	return &Executor{
		logger:  logger,
		command: command,
		dir:     dir,
		env:     env,
	}
}

// Configured reports whether a worker command is set.
func (e *Executor) Configured() bool {
	return len(e.command) > 0
}

// Run sends request to a fresh worker and decodes its reply into response.
func (e *Executor) Run(ctx context.Context, request, response any) error {
	if !e.Configured() {
		return domain.ErrCompilerNotConfigured
	}

	input, err := json.Marshal(request)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCompilerProtocol.Error())
	}

	name := e.command[0]
	executable := e.resolve()

	cmd := exec.CommandContext(ctx, executable, e.command[1:]...) //nolint:gosec // configured worker command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Dir = e.dir
	cmd.Env = e.env
	cmd.Stdin = bytes.NewReader(input)

	var stdout bytes.Buffer
	stderr := &lineWriter{logger: e.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	runErr := cmd.Run()
	stderr.Flush()

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err := zerr.Wrap(runErr, domain.ErrCompilerFailed.Error())
		err = zerr.With(err, "command", name)
		return zerr.With(err, "exit_code", exitCode)
	}

	if err := json.Unmarshal(stdout.Bytes(), response); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCompilerProtocol.Error()), "command", name)
	}
	return nil
}

// Identity digests what decides a worker's output besides the request: the
// command line, the size and modification time of the resolved executable,
// and extra.
func (e *Executor) Identity(extra ...string) string {
	parts := slices.Clone(e.command)
	if e.Configured() {
		executable := e.resolve()
		if info, err := os.Stat(executable); err == nil {
			parts = append(parts,
				executable,
				strconv.FormatInt(info.Size(), 10),
				info.ModTime().UTC().Format(time.RFC3339Nano),
			)
		}
	}
	parts = append(parts, extra...)
	return fingerprint.StringDigest(strings.Join(parts, "\x00"))
}

// resolve returns the executable path of the command, searched in the
// worker's PATH when relative.
func (e *Executor) resolve() string {
	name := e.command[0]
	if filepath.IsAbs(name) {
		return name
	}
	if lp, err := lookPath(name, e.environ()); err == nil {
		return lp
	}
	return name
}

func (e *Executor) environ() []string {
	if e.env == nil {
		return os.Environ()
	}
	return e.env
}

// lineWriter buffers partial writes and logs complete lines.
type lineWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush logs any trailing partial line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *lineWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return
	}
	w.logger.Warn(line)
}

// lookPath searches for an executable in the PATH of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func isExecutable(file string) bool {
	d, err := os.Stat(file)
	if err != nil {
		return false
	}
	m := d.Mode()
	return !m.IsDir() && m&0o111 != 0
}
