// internal/platform/executil/executil_test.go
package executil

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"

	"setupvim/internal/core/ports"
	"setupvim/internal/platform/errors"
	"setupvim/internal/platform/logx"
	"setupvim/internal/testutil"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell commands")
	}
}

func TestRunner_Exec_Success(t *testing.T) {
	skipOnWindows(t)

	var logs bytes.Buffer
	r := New(logx.NewWithWriter(&logs, logx.LevelDebug))

	res, err := r.Exec(context.Background(), ports.Command{Name: "sh", Args: []string{"-c", "echo hello; echo world"}})
	testutil.RequireNoError(t, err, "Exec")
	testutil.AssertEqual(t, res.ExitCode, 0, "exit code")
	testutil.AssertEqual(t, res.Stdout, "hello\nworld\n", "stdout")
	testutil.AssertContains(t, logs.String(), "hello", "stdout line logged")
	testutil.AssertContains(t, logs.String(), "world", "stdout line logged")
}

func TestRunner_Exec_NonZeroExit(t *testing.T) {
	skipOnWindows(t)

	r := New(logx.NewDiscard())
	res, err := r.Exec(context.Background(), ports.Command{
		Name: "sh",
		Args: []string{"-c", "echo oops >&2; exit 3"},
	})

	testutil.RequireError(t, err, "non-zero exit")
	testutil.AssertTrue(t, errors.IsCommandFailed(err), "CommandError")
	testutil.AssertEqual(t, res.ExitCode, 3, "exit code")

	var cmdErr *errors.CommandError
	testutil.AssertTrue(t, errors.As(err, &cmdErr), "As CommandError")
	testutil.AssertEqual(t, cmdErr.ExitCode, 3, "exit code in error")
	testutil.AssertContains(t, cmdErr.Stderr, "oops", "stderr captured")
	testutil.AssertContains(t, err.Error(), "exited with status 3", "message")
}

func TestRunner_Exec_MissingBinary(t *testing.T) {
	r := New(logx.NewDiscard())
	_, err := r.Exec(context.Background(), ports.Command{Name: "setup-vim-no-such-binary"})

	testutil.RequireError(t, err, "missing binary")
	testutil.AssertTrue(t, errors.IsCommandFailed(err), "CommandError")
	testutil.AssertContains(t, err.Error(), "could not be run", "message")
}

func TestRunner_Exec_DirAndEnv(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	r := New(logx.NewDiscard())
	res, err := r.Exec(context.Background(), ports.Command{
		Name: "sh",
		Args: []string{"-c", "pwd; echo $DEVELOPER_DIR"},
		Dir:  dir,
		Env:  []string{"DEVELOPER_DIR=/Applications/Xcode_11.7.app/Contents/Developer"},
	})
	testutil.RequireNoError(t, err, "Exec")

	out := strings.Split(strings.TrimSpace(res.Stdout), "\n")
	testutil.AssertEqual(t, len(out), 2, "two lines")
	testutil.AssertContains(t, out[0], dir[strings.LastIndex(dir, "/")+1:], "working dir")
	testutil.AssertEqual(t, out[1], "/Applications/Xcode_11.7.app/Contents/Developer", "env var")
}

func TestRunner_Exec_ContextCancelled(t *testing.T) {
	skipOnWindows(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(logx.NewDiscard())
	_, err := r.Exec(ctx, ports.Command{Name: "sleep", Args: []string{"5"}})
	testutil.RequireError(t, err, "cancelled context")
}
