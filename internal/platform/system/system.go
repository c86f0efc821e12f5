// internal/platform/system/system.go
package system

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"setupvim/internal/core/domain"
	"setupvim/internal/platform/errors"
)

// Platform es el par OS/arquitectura del runner.
type Platform struct {
	OS   domain.OS
	Arch domain.Arch
}

// Detect traduce los valores del runtime de Go a los enums del dominio.
func Detect() (Platform, error) {
	return FromGo(runtime.GOOS, runtime.GOARCH)
}

// FromGo mapea GOOS/GOARCH. Cualquier otro valor es un error de configuración.
func FromGo(goos, goarch string) (Platform, error) {
	var p Platform

	switch goos {
	case "linux":
		p.OS = domain.OSLinux
	case "darwin":
		p.OS = domain.OSMacOS
	case "windows":
		p.OS = domain.OSWindows
	default:
		return p, errors.Wrap(errors.ErrUnsupportedPlatform, fmt.Sprintf("OS %q is not supported", goos))
	}

	switch goarch {
	case "amd64":
		p.Arch = domain.ArchX8664
	case "arm64":
		p.Arch = domain.ArchARM64
	case "arm":
		p.Arch = domain.ArchARM32
	default:
		return p, errors.Wrap(errors.ErrUnsupportedPlatform, fmt.Sprintf("CPU architecture %q is not supported", goarch))
	}

	return p, nil
}

// ExpandHome reemplaza un prefijo $HOME o ~ por el directorio home del usuario.
func ExpandHome(path string) (string, error) {
	var rest string
	switch {
	case strings.HasPrefix(path, "$HOME"):
		rest = strings.TrimPrefix(path, "$HOME")
	case path == "~" || strings.HasPrefix(path, "~/"):
		rest = strings.TrimPrefix(path, "~")
	default:
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return home + rest, nil
}

// IsDir reporta si path existe y es un directorio.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
