// internal/platform/actions/actions_test.go
package actions

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"setupvim/internal/testutil"
)

func envFunc(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestRunner_SetOutputAndPath_Files(t *testing.T) {
	dir := t.TempDir()
	outputFile := filepath.Join(dir, "output")
	pathFile := filepath.Join(dir, "path")
	var stdout bytes.Buffer
	r := New(&stdout, &stdout, envFunc(map[string]string{
		"GITHUB_OUTPUT": outputFile,
		"GITHUB_PATH":   pathFile,
	}))

	testutil.AssertTrue(t, r.InActions(), "running under Actions")
	r.SetOutput("executable", "/home/runner/vim-nightly/bin/vim")
	r.SetOutput("vim-dir", "/home/runner/vim-nightly/share/vim")
	r.AddPath("/home/runner/vim-nightly/bin")

	out, err := os.ReadFile(outputFile)
	testutil.RequireNoError(t, err, "read output file")
	testutil.AssertContains(t, string(out), "executable<<", "executable output")
	testutil.AssertContains(t, string(out), "\n/home/runner/vim-nightly/bin/vim\n", "executable value")
	testutil.AssertContains(t, string(out), "vim-dir<<", "vim-dir output")
	testutil.AssertContains(t, string(out), "\n/home/runner/vim-nightly/share/vim\n", "vim-dir value")

	path, err := os.ReadFile(pathFile)
	testutil.RequireNoError(t, err, "read path file")
	testutil.AssertEqual(t, string(path), "/home/runner/vim-nightly/bin\n", "path file")
	testutil.AssertEqual(t, stdout.Len(), 0, "nothing printed")
}

func TestRunner_SetOutput_Multiline(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "output")
	r := New(&bytes.Buffer{}, &bytes.Buffer{}, envFunc(map[string]string{"GITHUB_OUTPUT": outputFile}))

	r.SetOutput("log", "a\nb")
	out, err := os.ReadFile(outputFile)
	testutil.RequireNoError(t, err, "read output file")
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")

	testutil.AssertEqual(t, len(lines), 4, "heredoc form")
	testutil.AssertTrue(t, strings.HasPrefix(lines[0], "log<<"), "delimiter header")
	testutil.AssertEqual(t, lines[1], "a", "first line")
	testutil.AssertEqual(t, lines[2], "b", "second line")
	testutil.AssertEqual(t, lines[3], strings.TrimPrefix(lines[0], "log<<"), "closing delimiter")
}

func TestRunner_LocalFallback(t *testing.T) {
	var stdout bytes.Buffer
	r := New(&stdout, &bytes.Buffer{}, envFunc(nil))

	testutil.AssertFalse(t, r.InActions(), "local run")
	r.SetOutput("executable", "/usr/bin/vim")
	r.AddPath("/usr/bin")

	testutil.AssertEqual(t, stdout.String(), "executable=/usr/bin/vim\nPATH+=/usr/bin\n", "printed outputs")
}

func TestRunner_WorkflowCommands(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := New(&stdout, &stderr, envFunc(nil))

	r.Group("Install vim")
	r.Warning("No stable Vim release is officially provided for Windows. Installing nightly instead")
	r.EndGroup()
	r.Error("100% broken\nsecond line")

	got := stdout.String()
	testutil.AssertContains(t, got, "::group::Install vim\n", "group")
	testutil.AssertContains(t, got, "::warning::No stable Vim release", "warning")
	testutil.AssertContains(t, got, "::endgroup::\n", "endgroup")
	testutil.AssertNotContains(t, got, "::error::", "errors not on stdout")
	testutil.AssertEqual(t, stderr.String(), "::error::100%25 broken%0Asecond line\n", "escaped error on stderr")
}
