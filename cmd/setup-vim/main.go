// cmd/setup-vim/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"setupvim/internal/acquire"
	"setupvim/internal/core/domain"
	"setupvim/internal/core/usecases"
	"setupvim/internal/platform/actions"
	"setupvim/internal/platform/archive"
	"setupvim/internal/platform/config"
	"setupvim/internal/platform/executil"
	"setupvim/internal/platform/github"
	"setupvim/internal/platform/httpclient"
	"setupvim/internal/platform/logx"
	"setupvim/internal/platform/system"
	"setupvim/internal/platform/ui"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:]))
}

// run retorna el exit code del proceso.
func run(ctx context.Context, args []string) int {
	gh := actions.FromEnv()

	in, err := config.Load(args, os.LookupEnv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		gh.Error(err.Error())
		return 2
	}

	if in.ShowVersion {
		config.PrintVersion(os.Stdout, version, commit, date)
		return 0
	}

	platform, err := system.Detect()
	if err != nil {
		gh.Error(err.Error())
		return 1
	}

	cfg, err := config.Resolve(in, platform, os.LookupEnv)
	if err != nil {
		gh.Error(err.Error())
		return 1
	}

	logger := logx.New()
	if in.Verbose {
		logger.SetLevel(logx.LevelDebug)
	}

	var presenter ui.Presenter = ui.NewPTermPresenter()
	if in.Quiet {
		presenter = ui.NewNoopPresenter()
		logger.SetLevel(logx.LevelError)
	}
	defer presenter.Close()

	logger.Info("setup-vim starting",
		"version", version,
		"commit", commit,
		"editor", cfg.Editor().String(),
		"requested", cfg.Version,
		"os", cfg.OS.String(),
		"arch", cfg.Arch.String(),
	)

	gh.Group(fmt.Sprintf("Install %s %s", cfg.Editor(), cfg.Version))
	installed, err := install(ctx, cfg, logger, presenter, gh)
	gh.EndGroup()
	if err != nil {
		presenter.Error(err.Error())
		gh.Error(err.Error())
		return 1
	}

	exportOutputs(gh, installed)
	return 0
}

// install conecta las implementaciones reales de los ports y ejecuta Setup.
func install(ctx context.Context, cfg domain.Config, logger logx.Logger, presenter ui.Presenter, gh *actions.Runner) (domain.Installed, error) {
	runner := executil.New(logger)
	hc := httpclient.New(httpclient.DefaultConfig(), logger)

	installer := acquire.New(acquire.Deps{
		Executor:   runner,
		Fetcher:    hc,
		Unarchiver: archive.New(logger),
		Releases:   github.New(hc, cfg.Token, logger),
		Logger:     logger,
		Warn: func(msg string) {
			presenter.Warning(msg)
			gh.Warning(msg)
		},
	})

	setup := usecases.NewSetup(usecases.SetupOptions{
		Acquirer:  installer,
		Validator: usecases.NewValidator(runner, logger),
		Presenter: presenter,
		Logger:    logger,
	})

	return setup.Run(ctx, cfg)
}

// exportOutputs publica el ejecutable y vim-dir, y añade binDir al PATH.
func exportOutputs(gh *actions.Runner, installed domain.Installed) {
	gh.SetOutput("executable", installed.Path())
	gh.SetOutput("vim-dir", installed.VimDir)
	gh.AddPath(installed.BinDir)
}
