// internal/core/ports/executor.go
package ports

import "context"

// Command describe un proceso externo a lanzar.
type Command struct {
	// Name es el programa ("sudo", "brew", "git", "./configure", ...)
	Name string

	// Args se pasan tal cual, sin shell de por medio
	Args []string

	// Dir es el directorio de trabajo; vacío hereda el actual
	Dir string

	// Env son variables extra "KEY=VALUE" añadidas al entorno heredado
	Env []string
}

// CommandResult contiene la salida capturada de un proceso terminado.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor es el port para ejecutar procesos externos.
// Un exit code distinto de cero es un error (*errors.CommandError).
type Executor interface {
	Exec(ctx context.Context, cmd Command) (CommandResult, error)
}
