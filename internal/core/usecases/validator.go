// internal/core/usecases/validator.go
package usecases

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"setupvim/internal/core/domain"
	"setupvim/internal/core/ports"
	"setupvim/internal/platform/errors"
	"setupvim/internal/platform/logx"
)

// Validator comprueba que una instalación es utilizable.
// Las comprobaciones son lineales y la primera que falla aborta; nunca repara nada.
type Validator struct {
	exec   ports.Executor
	logger logx.Logger
}

// NewValidator crea un validador que ejecuta el editor con exec.
func NewValidator(exec ports.Executor, logger logx.Logger) *Validator {
	if logger == nil {
		logger = logx.NewDiscard()
	}
	return &Validator{
		exec:   exec,
		logger: logger.With("component", "validator"),
	}
}

// Validate ejecuta todas las comprobaciones sobre inst.
func (v *Validator) Validate(ctx context.Context, inst domain.Installed, target domain.OS) error {
	v.logger.Info("validating installation", "bin_dir", inst.BinDir, "vim_dir", inst.VimDir)

	if err := checkDir(inst.BinDir, "bin directory"); err != nil {
		return err
	}

	exe := inst.Path()
	if err := checkExecutable(exe, target); err != nil {
		return err
	}

	if err := v.checkVersion(ctx, exe); err != nil {
		return err
	}

	runtimeDir, err := findRuntime(inst.VimDir)
	if err != nil {
		return err
	}

	for _, part := range domain.RuntimeParts {
		if err := checkDir(filepath.Join(runtimeDir, part), "runtime directory missing '"+part+"'"); err != nil {
			return err
		}
	}

	v.logger.Info("installation validated", "executable", exe, "runtime", runtimeDir)
	return nil
}

func checkDir(path, check string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &domain.ValidationError{Check: check, Path: path, Cause: err}
	}
	if !info.IsDir() {
		return &domain.ValidationError{Check: check, Path: path, Cause: errors.New("not a directory")}
	}
	return nil
}

// checkExecutable usa los bits de modo fuera de Windows y el sufijo .exe en Windows.
func checkExecutable(path string, target domain.OS) error {
	const check = "executable"

	info, err := os.Stat(path)
	if err != nil {
		return &domain.ValidationError{Check: check, Path: path, Cause: err}
	}
	if info.IsDir() {
		return &domain.ValidationError{Check: check, Path: path, Cause: errors.New("is a directory")}
	}

	if target == domain.OSWindows {
		if !strings.HasSuffix(path, ".exe") && !strings.HasSuffix(path, ".EXE") {
			return &domain.ValidationError{Check: check, Path: path, Cause: errors.New("file name does not end with .exe")}
		}
		return nil
	}

	if info.Mode().Perm()&0o111 == 0 {
		return &domain.ValidationError{Check: check, Path: path, Cause: errors.Errorf("mode %s is not executable", info.Mode().Perm())}
	}
	return nil
}

func (v *Validator) checkVersion(ctx context.Context, exe string) error {
	res, err := v.exec.Exec(ctx, ports.Command{Name: exe, Args: []string{"--version"}})
	if err != nil {
		return &domain.ValidationError{Check: "'--version' did not exit successfully", Path: exe, Cause: err}
	}
	v.logger.Info("editor version", "output", strings.TrimSpace(res.Stdout))
	return nil
}

// findRuntime retorna la ruta del primer subdirectorio vimNN o runtime de vimDir.
func findRuntime(vimDir string) (string, error) {
	const check = "runtime directory"

	entries, err := os.ReadDir(vimDir)
	if err != nil {
		return "", &domain.ValidationError{Check: check, Path: vimDir, Cause: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() && domain.IsRuntimeDirName(e.Name()) {
			return filepath.Join(vimDir, e.Name()), nil
		}
		names = append(names, e.Name())
	}

	return "", &domain.ValidationError{
		Check: check,
		Path:  vimDir,
		Cause: errors.Wrapf(errors.ErrRuntimeNotFound, "entries: %s", strings.Join(names, ", ")),
	}
}
