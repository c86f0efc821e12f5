// internal/core/usecases/setup.go
package usecases

import (
	"context"
	"time"

	"setupvim/internal/core/domain"
	"setupvim/internal/core/ports"
	"setupvim/internal/platform/logx"
	"setupvim/internal/platform/ui"
)

const (
	stepAcquire  = "acquire"
	stepValidate = "validate"
)

// Setup encadena adquisición y validación. La primera falla termina la ejecución.
type Setup struct {
	acquirer  ports.Acquirer
	validator *Validator
	presenter ui.Presenter
	logger    logx.Logger
}

// SetupOptions configura Setup.
type SetupOptions struct {
	Acquirer  ports.Acquirer
	Validator *Validator
	Presenter ui.Presenter
	Logger    logx.Logger
}

// NewSetup crea un Setup. Presenter y Logger son opcionales.
func NewSetup(opts SetupOptions) *Setup {
	if opts.Logger == nil {
		opts.Logger = logx.NewDiscard()
	}
	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}
	return &Setup{
		acquirer:  opts.Acquirer,
		validator: opts.Validator,
		presenter: opts.Presenter,
		logger:    opts.Logger.With("component", "setup"),
	}
}

// Run instala el editor descrito por cfg y lo valida.
func (s *Setup) Run(ctx context.Context, cfg domain.Config) (domain.Installed, error) {
	startTime := time.Now()

	s.presenter.Start(ui.InstallInfo{
		Editor:  cfg.Editor().String(),
		Version: cfg.Version,
		OS:      cfg.OS.String(),
		Arch:    cfg.Arch.String(),
	})

	var installed domain.Installed
	err := s.step(stepAcquire, func() error {
		var err error
		installed, err = s.acquirer.Install(ctx, cfg)
		return err
	})
	if err != nil {
		return domain.Installed{}, err
	}

	s.logger.Info("editor installed",
		"executable", installed.Executable,
		"bin_dir", installed.BinDir,
		"vim_dir", installed.VimDir,
	)

	err = s.step(stepValidate, func() error {
		return s.validator.Validate(ctx, installed, cfg.OS)
	})
	if err != nil {
		return domain.Installed{}, err
	}

	s.presenter.Finish(ui.Summary{
		Executable:    installed.Path(),
		BinDir:        installed.BinDir,
		VimDir:        installed.VimDir,
		TotalDuration: time.Since(startTime),
	})
	return installed, nil
}

func (s *Setup) step(name string, fn func() error) error {
	stepStart := time.Now()
	s.presenter.StartStep(name)

	if err := fn(); err != nil {
		s.presenter.FinishStep(name, ui.StatusError, time.Since(stepStart))
		s.logger.Err(err, "step", name)
		return err
	}

	s.presenter.FinishStep(name, ui.StatusSuccess, time.Since(stepStart))
	return nil
}
