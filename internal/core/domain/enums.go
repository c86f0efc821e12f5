// internal/core/domain/enums.go
package domain

// OS es el sistema operativo del runner.
type OS string

const (
	OSLinux   OS = "linux"
	OSMacOS   OS = "macos"
	OSWindows OS = "windows"
)

// IsValid verifica si el OS es uno de los soportados.
func (o OS) IsValid() bool {
	switch o {
	case OSLinux, OSMacOS, OSWindows:
		return true
	default:
		return false
	}
}

// String retorna la representación string del OS.
func (o OS) String() string {
	return string(o)
}

// Arch es la arquitectura de CPU del runner.
type Arch string

const (
	ArchX8664 Arch = "x86_64"
	ArchARM64 Arch = "arm64"
	ArchARM32 Arch = "arm32"
)

// IsValid verifica si la arquitectura es soportada.
func (a Arch) IsValid() bool {
	switch a {
	case ArchX8664, ArchARM64, ArchARM32:
		return true
	default:
		return false
	}
}

// String retorna la representación string de la arquitectura.
func (a Arch) String() string {
	return string(a)
}

// Editor identifica qué editor se instala.
type Editor string

const (
	EditorVim    Editor = "vim"
	EditorNeovim Editor = "neovim"
)

// Repository retorna el repositorio upstream cuyos tags se usan como versiones.
func (e Editor) Repository() string {
	if e == EditorNeovim {
		return "neovim/neovim"
	}
	return "vim/vim"
}

// String retorna la representación string del editor.
func (e Editor) String() string {
	return string(e)
}

// VersionClass agrupa las versiones en stable, nightly o un tag explícito.
type VersionClass string

const (
	VersionStable  VersionClass = "stable"
	VersionNightly VersionClass = "nightly"
	VersionTag     VersionClass = "tag"
)

// ClassifyVersion retorna la clase de una versión ya normalizada.
func ClassifyVersion(version string) VersionClass {
	switch version {
	case string(VersionStable):
		return VersionStable
	case string(VersionNightly):
		return VersionNightly
	default:
		return VersionTag
	}
}

// String retorna la representación string de la clase.
func (c VersionClass) String() string {
	return string(c)
}
