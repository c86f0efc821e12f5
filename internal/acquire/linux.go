// internal/acquire/linux.go
package acquire

import (
	"context"

	"setupvim/internal/core/domain"
	"setupvim/internal/platform/errors"
)

// installVimApt instala el paquete vim-gtk3; binario y runtime quedan en prefijos distintos.
func (in *Installer) installVimApt(ctx context.Context) (domain.Installed, error) {
	in.logger.Info("installing vim-gtk3 with apt-get")

	if err := in.run(ctx, "", nil, "sudo", "apt-get", "update", "-y", "-q"); err != nil {
		return domain.Installed{}, errors.Wrap(err, "apt-get update failed")
	}
	if err := in.run(ctx, "", nil, "sudo", "apt-get", "install", "-y", "--no-install-recommends", "-q", "vim-gtk3"); err != nil {
		return domain.Installed{}, errors.Wrap(err, "could not install vim-gtk3 with apt-get")
	}

	return domain.Installed{
		Executable: "vim",
		BinDir:     "/usr/bin",
		VimDir:     "/usr/share/vim",
	}, nil
}

var neovimBuildDepsApt = []string{
	"ninja-build", "gettext", "libtool", "libtool-bin", "autoconf", "automake",
	"cmake", "g++", "pkg-config", "unzip", "curl",
}

func (in *Installer) installNeovimBuildDepsApt(ctx context.Context) error {
	args := append([]string{"apt-get", "install", "-y", "--no-install-recommends"}, neovimBuildDepsApt...)
	if err := in.run(ctx, "", nil, "sudo", args...); err != nil {
		return errors.Wrap(err, "could not install Neovim build dependencies with apt-get")
	}
	return nil
}
