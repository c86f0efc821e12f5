// internal/core/domain/installed.go
package domain

import (
	"path/filepath"
	"regexp"
)

// Installed describe dónde quedó instalado el editor.
// BinDir y VimDir pueden no compartir prefijo (p. ej. instalaciones con apt).
type Installed struct {
	// Executable es el nombre del binario relativo a BinDir ("vim", "nvim.exe", ...)
	Executable string

	// BinDir contiene el ejecutable
	BinDir string

	// VimDir contiene los ficheros de soporte del editor
	VimDir string

	// RuntimeDir es el subdirectorio de runtime ("vim91", "runtime") cuando se conoce
	RuntimeDir string
}

// Path retorna la ruta completa del ejecutable.
func (i Installed) Path() string {
	return filepath.Join(i.BinDir, i.Executable)
}

// ExeName retorna el nombre del binario para el editor y el OS.
func ExeName(neovim bool, os OS) string {
	name := "vim"
	if neovim {
		name = "nvim"
	}
	if os == OSWindows {
		name += ".exe"
	}
	return name
}

var runtimeDirName = regexp.MustCompile(`^vim\d+$`)

// RuntimeParts son los subdirectorios que todo runtime instalado debe tener.
var RuntimeParts = []string{"autoload", "syntax", "plugin", "indent", "ftplugin", "doc"}

// IsRuntimeDirName reporta si name es "vimNN" o "runtime".
func IsRuntimeDirName(name string) bool {
	return name == "runtime" || runtimeDirName.MatchString(name)
}
