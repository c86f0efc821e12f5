// internal/acquire/macos.go
package acquire

import (
	"context"
	"path/filepath"
	"strings"

	"setupvim/internal/core/domain"
	"setupvim/internal/platform/errors"
)

// installHomebrew instala la fórmula stable: macvim para Vim, neovim para Neovim.
func (in *Installer) installHomebrew(ctx context.Context, cfg domain.Config) (domain.Installed, error) {
	formula := "macvim"
	if cfg.Neovim {
		formula = "neovim"
	}
	in.logger.Info("installing with Homebrew", "formula", formula)

	if err := in.run(ctx, "", nil, "brew", "update", "--quiet"); err != nil {
		return domain.Installed{}, errors.Wrap(err, "brew update failed")
	}

	// En runners x86_64 python3 preinstalado choca con los symlinks que trae macvim
	if formula == "macvim" && cfg.Arch == domain.ArchX8664 {
		if err := in.run(ctx, "", nil, "brew", "link", "--overwrite", "python3"); err != nil {
			in.warn("Could not relink python3 before installing MacVim: " + err.Error())
		}
	}

	if err := in.run(ctx, "", nil, "brew", "install", formula, "--quiet"); err != nil {
		return domain.Installed{}, errors.Wrapf(err, "could not install %s with Homebrew", formula)
	}

	prefix, err := in.brewPrefix(ctx)
	if err != nil {
		return domain.Installed{}, err
	}

	if cfg.Neovim {
		return domain.Installed{
			Executable: "nvim",
			BinDir:     filepath.Join(prefix, "bin"),
			VimDir:     filepath.Join(prefix, "share", "nvim"),
		}, nil
	}
	return domain.Installed{
		Executable: "vim",
		BinDir:     filepath.Join(prefix, "bin"),
		VimDir:     filepath.Join(prefix, "opt", "macvim", "MacVim.app", "Contents", "Resources", "vim"),
	}, nil
}

func (in *Installer) brewPrefix(ctx context.Context) (string, error) {
	out, err := in.output(ctx, "brew", "--prefix")
	if err != nil {
		return "", errors.Wrap(err, "could not get Homebrew prefix")
	}
	prefix := strings.TrimSpace(out)
	if prefix == "" {
		return "", errors.Wrap(errors.ErrInvalidResponse, "'brew --prefix' printed nothing")
	}
	return prefix, nil
}

var neovimBuildDepsBrew = []string{"ninja", "libtool", "automake", "cmake", "pkg-config", "gettext", "curl"}

func (in *Installer) installNeovimBuildDepsBrew(ctx context.Context) error {
	args := append([]string{"install"}, neovimBuildDepsBrew...)
	if err := in.run(ctx, "", nil, "brew", args...); err != nil {
		return errors.Wrap(err, "could not install Neovim build dependencies with Homebrew")
	}
	return nil
}
