// internal/acquire/neovim.go
package acquire

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"setupvim/internal/core/domain"
	"setupvim/internal/platform/errors"
)

const (
	neovimRepoURL     = "https://github.com/neovim/neovim"
	neovimDownloadURL = neovimRepoURL + "/releases/download"
)

// NeovimAssetName retorna el fichero de release para la plataforma y versión.
// Los nombres cambiaron en v0.10.0 (macOS) y v0.10.4 (Linux).
func NeovimAssetName(cfg domain.Config) (string, error) {
	if cfg.Arch == domain.ArchARM32 {
		return "", errors.Wrap(errors.ErrUnsupportedPlatform, "Neovim does not provide prebuilt binaries for arm32")
	}

	switch cfg.OS {
	case domain.OSLinux:
		if VersionIsOlderThan(cfg.Version, 0, 10, 4) {
			if cfg.Arch != domain.ArchX8664 {
				return "", errors.Wrapf(errors.ErrNoAsset, "Neovim %s has no Linux %s release", cfg.Version, cfg.Arch)
			}
			return "nvim-linux64.tar.gz", nil
		}
		return fmt.Sprintf("nvim-linux-%s.tar.gz", cfg.Arch), nil

	case domain.OSMacOS:
		if VersionIsOlderThan(cfg.Version, 0, 10, 0) {
			return "nvim-macos.tar.gz", nil
		}
		return fmt.Sprintf("nvim-macos-%s.tar.gz", cfg.Arch), nil

	case domain.OSWindows:
		// ARM64 ejecuta el build x86_64 por emulación
		return "nvim-win64.zip", nil

	default:
		return "", errors.Wrapf(errors.ErrUnsupportedPlatform, "no Neovim release for OS %q", cfg.OS)
	}
}

// NeovimDownloadURL retorna la URL del asset para cfg.Version ("stable", "nightly" o tag).
func NeovimDownloadURL(cfg domain.Config) (string, string, error) {
	file, err := NeovimAssetName(cfg)
	if err != nil {
		return "", "", err
	}
	return fmt.Sprintf("%s/%s/%s", neovimDownloadURL, cfg.Version, file), file, nil
}

// downloadNeovim instala el asset de release en <installRoot>/nvim-<version>.
func (in *Installer) downloadNeovim(ctx context.Context, cfg domain.Config) (domain.Installed, error) {
	url, file, err := NeovimDownloadURL(cfg)
	if err != nil {
		return domain.Installed{}, err
	}

	destDir := filepath.Join(cfg.InstallRoot, "nvim-"+cfg.Version)
	if err := in.downloadAndUnpack(ctx, url, file, destDir); err != nil {
		return domain.Installed{}, err
	}

	root, err := findNeovimRoot(destDir)
	if err != nil {
		return domain.Installed{}, err
	}

	in.logger.Info("installed Neovim release", "version", cfg.Version, "root", root)

	return domain.Installed{
		Executable: domain.ExeName(true, cfg.OS),
		BinDir:     filepath.Join(root, "bin"),
		VimDir:     filepath.Join(root, "share", "nvim"),
	}, nil
}

// findNeovimRoot localiza el único directorio nvim-* extraído.
// Los zips de Windows anteriores a v0.7 usaban "Neovim".
func findNeovimRoot(destDir string) (string, error) {
	entries, err := os.ReadDir(destDir)
	if err != nil {
		return "", errors.Wrapf(err, "could not read directory %s", destDir)
	}

	var names, candidates []string
	for _, e := range entries {
		names = append(names, e.Name())
		if e.IsDir() && (strings.HasPrefix(e.Name(), "nvim-") || strings.EqualFold(e.Name(), "neovim")) {
			candidates = append(candidates, e.Name())
		}
	}

	if len(candidates) != 1 {
		return "", errors.Wrapf(errors.ErrNotFound, "expected one Neovim directory in %s, found %d (entries: %s)",
			destDir, len(candidates), strings.Join(names, ", "))
	}
	return filepath.Join(destDir, candidates[0]), nil
}

// installNeovimNightly descarga el nightly y compila desde fuente si la descarga falla.
func (in *Installer) installNeovimNightly(ctx context.Context, cfg domain.Config) (domain.Installed, error) {
	installed, err := in.downloadNeovim(ctx, cfg)
	if err == nil {
		return installed, nil
	}

	in.warn(fmt.Sprintf("Neovim nightly download failed, building from source instead: %v", err))
	return in.buildNeovimNightly(ctx, cfg)
}

// buildNeovimNightly clona neovim/neovim HEAD y lo instala en <installRoot>/nvim-nightly.
func (in *Installer) buildNeovimNightly(ctx context.Context, cfg domain.Config) (domain.Installed, error) {
	switch cfg.OS {
	case domain.OSLinux:
		if err := in.installNeovimBuildDepsApt(ctx); err != nil {
			return domain.Installed{}, err
		}
	case domain.OSMacOS:
		if err := in.installNeovimBuildDepsBrew(ctx); err != nil {
			return domain.Installed{}, err
		}
	default:
		return domain.Installed{}, errors.Wrapf(errors.ErrUnsupportedPlatform, "building Neovim from source is not supported on %s", cfg.OS)
	}

	installDir := filepath.Join(cfg.InstallRoot, "nvim-nightly")
	tmp, err := in.mkdirTemp("setup-vim-")
	if err != nil {
		return domain.Installed{}, err
	}
	srcDir := filepath.Join(tmp, "neovim")

	in.logger.Info("building Neovim from source", "install_dir", installDir)

	if err := in.run(ctx, "", nil, "git", "clone", "--depth=1", neovimRepoURL, srcDir); err != nil {
		return domain.Installed{}, errors.Wrapf(err, "could not clone %s", neovimRepoURL)
	}
	if err := in.run(ctx, srcDir, nil, "make", "CMAKE_BUILD_TYPE=RelWithDebInfo", "CMAKE_INSTALL_PREFIX="+installDir); err != nil {
		return domain.Installed{}, errors.Wrap(err, "make failed")
	}
	if err := in.run(ctx, srcDir, nil, "make", "install"); err != nil {
		return domain.Installed{}, errors.Wrap(err, "make install failed")
	}

	return domain.Installed{
		Executable: "nvim",
		BinDir:     filepath.Join(installDir, "bin"),
		VimDir:     filepath.Join(installDir, "share", "nvim"),
	}, nil
}
