// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio comunes.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrValidation    = errors.New("validation failed")
)

// ConfigError es un error de configuración: nada se ejecuta tras él.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("'%s' input '%s' is invalid: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// ValidationError identifica qué comprobación del validador falló y sobre qué ruta.
type ValidationError struct {
	Check string
	Path  string
	Cause error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("Validation failed! %s: %s", e.Check, e.Path)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}
