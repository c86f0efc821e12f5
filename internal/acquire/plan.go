// internal/acquire/plan.go
package acquire

import (
	"fmt"

	"setupvim/internal/core/domain"
	"setupvim/internal/platform/errors"
)

// Strategy es la forma de obtener el editor.
type Strategy int

const (
	// StrategyApt instala vim-gtk3 con apt-get
	StrategyApt Strategy = iota + 1
	// StrategyHomebrew instala macvim o neovim con brew
	StrategyHomebrew
	// StrategyVimSource clona vim/vim y compila con configure/make
	StrategyVimSource
	// StrategyNeovimRelease descarga un asset de release de neovim/neovim
	StrategyNeovimRelease
	// StrategyNeovimNightly descarga el asset nightly y compila si la descarga falla
	StrategyNeovimNightly
	// StrategyVimWindowsInstaller descarga el zip de vim/vim-win32-installer
	StrategyVimWindowsInstaller
)

// String retorna el nombre del strategy
func (s Strategy) String() string {
	switch s {
	case StrategyApt:
		return "apt-get"
	case StrategyHomebrew:
		return "homebrew"
	case StrategyVimSource:
		return "vim-source-build"
	case StrategyNeovimRelease:
		return "neovim-release"
	case StrategyNeovimNightly:
		return "neovim-nightly-with-fallback"
	case StrategyVimWindowsInstaller:
		return "vim-win32-installer"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Plan elige el strategy para (editor, os, clase de versión). No tiene efectos.
//
//	OS       Editor  stable                 nightly                 tag
//	linux    vim     apt-get vim-gtk3       source build (HEAD)     source build (tag)
//	linux    neovim  release "stable"       release + fallback      release tag
//	macos    vim     brew macvim            source build (HEAD)     source build (tag)
//	macos    neovim  brew neovim            release + fallback      release tag
//	windows  vim     installer (nightly)    installer (latest)      installer tag
//	windows  neovim  release "stable"       release "nightly"       release tag
func Plan(cfg domain.Config) (Strategy, error) {
	class := cfg.VersionClass()

	switch cfg.OS {
	case domain.OSLinux:
		if cfg.Neovim {
			if class == domain.VersionNightly {
				return StrategyNeovimNightly, nil
			}
			return StrategyNeovimRelease, nil
		}
		if class == domain.VersionStable {
			return StrategyApt, nil
		}
		return StrategyVimSource, nil

	case domain.OSMacOS:
		switch {
		case class == domain.VersionStable:
			return StrategyHomebrew, nil
		case !cfg.Neovim:
			return StrategyVimSource, nil
		case class == domain.VersionNightly:
			return StrategyNeovimNightly, nil
		default:
			return StrategyNeovimRelease, nil
		}

	case domain.OSWindows:
		if cfg.Neovim {
			return StrategyNeovimRelease, nil
		}
		return StrategyVimWindowsInstaller, nil

	default:
		return 0, errors.Wrapf(errors.ErrUnsupportedPlatform, "no installation strategy for OS %q", cfg.OS)
	}
}
