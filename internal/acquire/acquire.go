// Package acquire installs Vim or Neovim with the strategy Plan selects:
// OS package managers, release archives or a build from source.
package acquire

import (
	"context"
	"os"

	"setupvim/internal/core/domain"
	"setupvim/internal/core/ports"
	"setupvim/internal/platform/errors"
	"setupvim/internal/platform/logx"
	"setupvim/internal/platform/system"
)

// Deps son las capacidades que usan los strategies.
type Deps struct {
	Executor   ports.Executor
	Fetcher    ports.Fetcher
	Unarchiver ports.Unarchiver
	Releases   ports.ReleaseLister
	Logger     logx.Logger

	// Warn publica avisos visibles para el usuario (::warning:: en Actions)
	Warn func(msg string)

	// Getenv y DirExists se inyectan para el toolchain legacy de macOS
	Getenv    func(key string) string
	DirExists func(path string) bool

	// TempRoot es donde se crean los directorios temporales ("" = os.TempDir())
	TempRoot string
}

// Installer implementa ports.Acquirer.
type Installer struct {
	exec      ports.Executor
	fetch     ports.Fetcher
	unarchive ports.Unarchiver
	releases  ports.ReleaseLister
	logger    logx.Logger
	warn      func(string)
	getenv    func(string) string
	dirExists func(string) bool
	tempRoot  string
}

var _ ports.Acquirer = (*Installer)(nil)

// New crea un Installer. Logger, Warn, Getenv y DirExists tienen valores por defecto.
func New(d Deps) *Installer {
	in := &Installer{
		exec:      d.Executor,
		fetch:     d.Fetcher,
		unarchive: d.Unarchiver,
		releases:  d.Releases,
		logger:    d.Logger,
		warn:      d.Warn,
		getenv:    d.Getenv,
		dirExists: d.DirExists,
		tempRoot:  d.TempRoot,
	}
	if in.logger == nil {
		in.logger = logx.NewDiscard()
	}
	in.logger = in.logger.With("component", "acquire")
	if in.warn == nil {
		in.warn = func(msg string) { in.logger.Warn(msg) }
	}
	if in.getenv == nil {
		in.getenv = os.Getenv
	}
	if in.dirExists == nil {
		in.dirExists = system.IsDir
	}
	return in
}

// Install ejecuta el strategy elegido por Plan y retorna dónde quedó el editor.
func (in *Installer) Install(ctx context.Context, cfg domain.Config) (domain.Installed, error) {
	strategy, err := Plan(cfg)
	if err != nil {
		return domain.Installed{}, err
	}

	in.logger.Info("installing editor",
		"editor", cfg.Editor().String(),
		"version", cfg.Version,
		"os", cfg.OS.String(),
		"arch", cfg.Arch.String(),
		"strategy", strategy.String(),
	)

	switch strategy {
	case StrategyApt:
		return in.installVimApt(ctx)
	case StrategyHomebrew:
		return in.installHomebrew(ctx, cfg)
	case StrategyVimSource:
		return in.buildVim(ctx, cfg)
	case StrategyNeovimRelease:
		return in.downloadNeovim(ctx, cfg)
	case StrategyNeovimNightly:
		return in.installNeovimNightly(ctx, cfg)
	case StrategyVimWindowsInstaller:
		return in.installVimWindows(ctx, cfg)
	default:
		return domain.Installed{}, errors.Errorf("unhandled strategy %s", strategy)
	}
}

// run ejecuta un comando y descarta la salida.
func (in *Installer) run(ctx context.Context, dir string, env []string, name string, args ...string) error {
	_, err := in.exec.Exec(ctx, ports.Command{Name: name, Args: args, Dir: dir, Env: env})
	return err
}

// output ejecuta un comando y retorna su stdout.
func (in *Installer) output(ctx context.Context, name string, args ...string) (string, error) {
	res, err := in.exec.Exec(ctx, ports.Command{Name: name, Args: args})
	return res.Stdout, err
}

// mkdirTemp crea un directorio temporal por ejecución. No se limpia si algo falla.
func (in *Installer) mkdirTemp(pattern string) (string, error) {
	dir, err := os.MkdirTemp(in.tempRoot, pattern)
	if err != nil {
		return "", errors.Wrap(err, "failed to create temporary directory")
	}
	return dir, nil
}
