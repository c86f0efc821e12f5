// internal/core/domain/config.go
package domain

// Config es la configuración resuelta de una ejecución. Se crea una vez y no se muta.
type Config struct {
	// Version es "stable", "nightly" o un tag del repositorio upstream
	Version string

	// Neovim indica si se instala Neovim en lugar de Vim
	Neovim bool

	// OS y Arch se detectan del entorno, nunca del input del usuario
	OS   OS
	Arch Arch

	// ConfigureArgs se añade tal cual a ./configure en builds desde fuente
	ConfigureArgs string

	// Token es la credencial para la API de GitHub (solo la usan rutas de Windows)
	Token string

	// InstallRoot es el directorio bajo el que se crean los directorios de instalación
	InstallRoot string
}

// Editor retorna el editor seleccionado.
func (c Config) Editor() Editor {
	if c.Neovim {
		return EditorNeovim
	}
	return EditorVim
}

// VersionClass retorna la clase de la versión configurada.
func (c Config) VersionClass() VersionClass {
	return ClassifyVersion(c.Version)
}
