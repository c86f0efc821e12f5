// Package fakes contiene dobles de test para los ports de core.
package fakes

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"setupvim/internal/core/ports"
	"setupvim/internal/platform/errors"
)

// FakeExecutor registra cada comando y responde según OnExec o FailOn.
type FakeExecutor struct {
	mu    sync.Mutex
	Calls []ports.Command

	// OnExec decide el resultado; si es nil el comando tiene éxito con Stdout vacío
	OnExec func(cmd ports.Command) (ports.CommandResult, error)

	// Stdout por línea de comando exacta ("brew --prefix")
	Stdout map[string]string

	failOn map[string]bool
}

// NewFakeExecutor crea un executor que acepta todo.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{Stdout: map[string]string{}, failOn: map[string]bool{}}
}

// FailOn hace fallar (exit 1) cualquier comando cuya línea empiece por prefix.
func (f *FakeExecutor) FailOn(prefix string) *FakeExecutor {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOn[prefix] = true
	return f
}

var _ ports.Executor = (*FakeExecutor)(nil)

// Exec implementa ports.Executor.
func (f *FakeExecutor) Exec(ctx context.Context, cmd ports.Command) (ports.CommandResult, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, cmd)
	onExec := f.OnExec
	line := CommandLine(cmd)
	stdout := f.Stdout[line]
	failed := false
	for prefix := range f.failOn {
		if strings.HasPrefix(line, prefix) {
			failed = true
		}
	}
	f.mu.Unlock()

	if onExec != nil {
		return onExec(cmd)
	}
	if failed {
		return ports.CommandResult{ExitCode: 1, Stderr: "fake failure"}, &errors.CommandError{
			Command: cmd.Name, Args: cmd.Args, Dir: cmd.Dir, ExitCode: 1, Stderr: "fake failure",
		}
	}
	return ports.CommandResult{Stdout: stdout}, nil
}

// Lines retorna cada comando ejecutado como "name arg1 arg2".
func (f *FakeExecutor) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = CommandLine(c)
	}
	return out
}

// Find retorna el primer comando cuya línea empiece por prefix.
func (f *FakeExecutor) Find(prefix string) (ports.Command, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.Calls {
		if strings.HasPrefix(CommandLine(c), prefix) {
			return c, true
		}
	}
	return ports.Command{}, false
}

// CommandLine une nombre y argumentos con espacios.
func CommandLine(c ports.Command) string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// FakeFetcher sirve ficheros desde memoria; URLs desconocidas dan 404.
type FakeFetcher struct {
	mu        sync.Mutex
	Files     map[string]string
	Heads     map[string]ports.HeadResult
	Downloads []string
	HeadCalls []string
}

// NewFakeFetcher crea un fetcher vacío.
func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{Files: map[string]string{}, Heads: map[string]ports.HeadResult{}}
}

var _ ports.Fetcher = (*FakeFetcher)(nil)

// Download implementa ports.Fetcher.
func (f *FakeFetcher) Download(ctx context.Context, url, destPath string) error {
	f.mu.Lock()
	f.Downloads = append(f.Downloads, url)
	body, ok := f.Files[url]
	f.mu.Unlock()

	if !ok {
		return &errors.HTTPStatusError{URL: url, StatusCode: http.StatusNotFound, Status: "404 Not Found"}
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte(body), 0o644)
}

// Head implementa ports.Fetcher.
func (f *FakeFetcher) Head(ctx context.Context, url string) (ports.HeadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.HeadCalls = append(f.HeadCalls, url)
	if res, ok := f.Heads[url]; ok {
		return res, nil
	}
	return ports.HeadResult{StatusCode: http.StatusNotFound}, nil
}

// FakeUnarchiver registra llamadas y delega en OnUnarchive para crear el árbol extraído.
type FakeUnarchiver struct {
	mu          sync.Mutex
	Calls       [][2]string
	OnUnarchive func(archivePath, destDir string) error
}

var _ ports.Unarchiver = (*FakeUnarchiver)(nil)

// Unarchive implementa ports.Unarchiver.
func (f *FakeUnarchiver) Unarchive(ctx context.Context, archivePath, destDir string) error {
	f.mu.Lock()
	f.Calls = append(f.Calls, [2]string{archivePath, destDir})
	fn := f.OnUnarchive
	f.mu.Unlock()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}
	if fn != nil {
		return fn(archivePath, destDir)
	}
	return nil
}

// FakeReleaseLister sirve releases por tag ("" es la última).
type FakeReleaseLister struct {
	mu       sync.Mutex
	Releases map[string]ports.Release
	Calls    []string
}

var _ ports.ReleaseLister = (*FakeReleaseLister)(nil)

// Release implementa ports.ReleaseLister.
func (f *FakeReleaseLister) Release(ctx context.Context, repo, tag string) (ports.Release, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, repo+"@"+tag)
	if rel, ok := f.Releases[tag]; ok {
		return rel, nil
	}
	return ports.Release{}, &errors.HTTPStatusError{URL: "https://api.github.com/repos/" + repo + "/releases", StatusCode: http.StatusNotFound}
}
