// Package actions speaks the GitHub Actions runner protocol: output files and workflow commands.
package actions

import (
	"fmt"
	"io"
	"os"

	"github.com/sethvargo/go-githubactions"
)

// Runner publica outputs, PATH y comandos de workflow a través de go-githubactions.
// Fuera de Actions (GITHUB_OUTPUT/GITHUB_PATH sin definir) imprime name=value en stdout.
type Runner struct {
	action *githubactions.Action
	errors *githubactions.Action
	getenv func(string) string
	stdout io.Writer
}

// New crea un Runner. ::error:: va a stderr; el resto de comandos a stdout.
func New(stdout, stderr io.Writer, getenv func(string) string) *Runner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Runner{
		action: githubactions.New(githubactions.WithWriter(stdout), githubactions.WithGetenv(getenv)),
		errors: githubactions.New(githubactions.WithWriter(stderr), githubactions.WithGetenv(getenv)),
		getenv: getenv,
		stdout: stdout,
	}
}

// FromEnv construye un Runner a partir del entorno del proceso.
func FromEnv() *Runner {
	return New(os.Stdout, os.Stderr, os.Getenv)
}

// InActions reporta si el proceso corre bajo el runner de Actions.
func (r *Runner) InActions() bool {
	return r.getenv("GITHUB_OUTPUT") != ""
}

// SetOutput publica un output del step.
func (r *Runner) SetOutput(name, value string) {
	if !r.InActions() {
		fmt.Fprintf(r.stdout, "%s=%s\n", name, value)
		return
	}
	r.action.SetOutput(name, value)
}

// AddPath antepone dir al PATH de los steps siguientes.
func (r *Runner) AddPath(dir string) {
	if r.getenv("GITHUB_PATH") == "" {
		fmt.Fprintf(r.stdout, "PATH+=%s\n", dir)
		return
	}
	r.action.AddPath(dir)
}

// Warning emite ::warning::.
func (r *Runner) Warning(msg string) {
	r.action.Warningf("%s", msg)
}

// Error emite ::error:: en stderr.
func (r *Runner) Error(msg string) {
	r.errors.Errorf("%s", msg)
}

// Group abre un grupo plegable en el log del job.
func (r *Runner) Group(title string) {
	r.action.Group(title)
}

// EndGroup cierra el grupo abierto.
func (r *Runner) EndGroup() {
	r.action.EndGroup()
}
