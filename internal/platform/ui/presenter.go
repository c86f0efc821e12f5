// internal/platform/ui/presenter.go
package ui

import (
	"time"
)

// Presenter define la interfaz para presentar el progreso de una instalación.
type Presenter interface {
	// Start muestra la cabecera con lo que se va a instalar
	Start(info InstallInfo)

	// StartStep notifica el inicio de un paso (resolve, acquire, validate)
	StartStep(name string)

	// FinishStep notifica la finalización de un paso
	FinishStep(name string, status Status, duration time.Duration)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish muestra el resumen final
	Finish(summary Summary)

	// Close limpia recursos del presenter
	Close() error
}

// InstallInfo contiene la petición resuelta
type InstallInfo struct {
	Editor  string
	Version string
	OS      string
	Arch    string
}

// Summary contiene el resultado de una instalación exitosa
type Summary struct {
	Executable    string
	BinDir        string
	VimDir        string
	TotalDuration time.Duration
}
