// Package executil runs external commands (apt-get, brew, git, make, the editor itself)
// and turns non-zero exits into descriptive errors.
package executil

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"setupvim/internal/core/ports"
	"setupvim/internal/platform/errors"
	"setupvim/internal/platform/logx"
)

// Runner implementa ports.Executor sobre os/exec.
type Runner struct {
	logger logx.Logger
}

// New crea un Runner. Cada línea de stdout se registra en debug mientras el proceso corre.
func New(logger logx.Logger) *Runner {
	return &Runner{logger: logger.With("component", "exec")}
}

var _ ports.Executor = (*Runner)(nil)

// Exec ejecuta cmd y espera a que termine.
// Captura stdout y stderr; un exit code distinto de cero es un *errors.CommandError.
func (r *Runner) Exec(ctx context.Context, c ports.Command) (ports.CommandResult, error) {
	startTime := time.Now()
	r.logger.Info("executing command", "cmd", c.Name, "args", c.Args, "dir", c.Dir)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return ports.CommandResult{}, r.startError(c, err)
	}
	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	if err := cmd.Start(); err != nil {
		return ports.CommandResult{}, r.startError(c, err)
	}
	r.logger.Debug("process started", "pid", cmd.Process.Pid)

	var stdoutBuf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.processOutput(io.TeeReader(stdout, &stdoutBuf))
	}()

	// El pipe debe vaciarse antes de Wait
	wg.Wait()
	waitErr := cmd.Wait()

	res := ports.CommandResult{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}
	if res.Stderr != "" {
		r.logger.Debug("process stderr", "output", strings.TrimSpace(res.Stderr))
	}

	if waitErr != nil {
		r.logger.Warn("command failed", "cmd", c.Name, "exit_code", res.ExitCode, "duration", time.Since(startTime).String())
		cmdErr := &errors.CommandError{
			Command:  c.Name,
			Args:     c.Args,
			Dir:      c.Dir,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		}
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			cmdErr.Cause = waitErr
		} else if ctxErr := ctx.Err(); ctxErr != nil {
			cmdErr.Cause = ctxErr
		}
		return res, cmdErr
	}

	r.logger.Debug("command completed", "cmd", c.Name, "duration", time.Since(startTime).String())
	return res, nil
}

func (r *Runner) startError(c ports.Command, err error) error {
	return &errors.CommandError{
		Command:  c.Name,
		Args:     c.Args,
		Dir:      c.Dir,
		ExitCode: -1,
		Cause:    err,
	}
}

func (r *Runner) processOutput(stdout io.Reader) {
	scanner := bufio.NewScanner(stdout)

	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		r.logger.Debug(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		r.logger.Warn("scanner error", "error", err.Error())
		// Vaciar el resto para que el proceso no se bloquee en write
		_, _ = io.Copy(io.Discard, stdout)
	}
}
