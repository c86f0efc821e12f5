// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm.
type PTermPresenter struct {
	mu        sync.Mutex
	startTime time.Time
	current   string
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{}
}

// Start muestra la cabecera de la instalación
func (p *PTermPresenter) Start(info InstallInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startTime = time.Now()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("setup-vim")

	pterm.Println()

	content := fmt.Sprintf("%s Editor:   %s\n", IconEditor, pterm.Cyan(info.Editor))
	content += fmt.Sprintf("%s Version:  %s\n", IconVersion, pterm.Yellow(info.Version))
	content += fmt.Sprintf("%s Platform: %s/%s", IconSystem, info.OS, info.Arch)

	pterm.DefaultBox.
		WithTitle("Request").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Println(content)

	pterm.Println()
}

// StartStep notifica el inicio de un paso
func (p *PTermPresenter) StartStep(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = name
	pterm.DefaultSection.WithLevel(2).Println(name)
}

// FinishStep notifica la finalización de un paso
func (p *PTermPresenter) FinishStep(name string, status Status, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = ""
	line := fmt.Sprintf("  %s %s (%s)", status.Symbol(), name, formatDuration(duration))
	status.Style().Println(line)
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Info.Println(msg)
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Warning.Println(msg)
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Error.Println(msg)
}

// Finish muestra el resumen final
func (p *PTermPresenter) Finish(summary Summary) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Println()
	pterm.Println(pterm.LightBlue(SeparatorHeavy))

	total := summary.TotalDuration
	if total == 0 && !p.startTime.IsZero() {
		total = time.Since(p.startTime)
	}

	content := fmt.Sprintf("%s Executable: %s\n", IconPath, pterm.Green(summary.Executable))
	content += fmt.Sprintf("   Bin dir:    %s\n", summary.BinDir)
	content += fmt.Sprintf("   Vim dir:    %s\n", summary.VimDir)
	content += fmt.Sprintf("%s Duration:   %s", IconTime, formatDuration(total))

	pterm.DefaultBox.
		WithTitle("Installed").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen)).
		Println(content)
}

// Close limpia recursos del presenter
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != "" {
		StatusWarning.Style().Println(fmt.Sprintf("  %s %s (interrupted)", StatusWarning.Symbol(), p.current))
		p.current = ""
	}
	return nil
}
