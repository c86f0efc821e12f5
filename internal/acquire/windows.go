// internal/acquire/windows.go
package acquire

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"setupvim/internal/core/domain"
	"setupvim/internal/platform/errors"
	"setupvim/internal/platform/github"
)

const (
	vimInstallerRepo      = "vim/vim-win32-installer"
	vimInstallerURL       = "https://github.com/" + vimInstallerRepo + "/releases"
	vimInstallerLatestURL = vimInstallerURL + "/latest"
)

// installerArch retorna el sufijo de arquitectura de los assets de vim-win32-installer.
func installerArch(arch domain.Arch) (string, error) {
	switch arch {
	case domain.ArchX8664:
		return "x64", nil
	case domain.ArchARM64:
		return "arm64", nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedPlatform, "vim-win32-installer has no %s build", arch)
	}
}

// installVimWindows descarga y descomprime el zip de gvim.
// No hay release stable para Windows: stable instala el último nightly.
func (in *Installer) installVimWindows(ctx context.Context, cfg domain.Config) (domain.Installed, error) {
	arch, err := installerArch(cfg.Arch)
	if err != nil {
		return domain.Installed{}, err
	}

	class := cfg.VersionClass()
	if class == domain.VersionStable {
		in.warn("No stable Vim release is officially provided for Windows. Installing nightly instead")
		class = domain.VersionNightly
	}

	var tag, url, file string
	if class == domain.VersionNightly {
		tag, err = in.latestInstallerTag(ctx)
		if err != nil {
			return domain.Installed{}, err
		}
		url, file, err = in.installerAssetFromRelease(ctx, cfg, tag, arch)
		if err != nil {
			return domain.Installed{}, err
		}
	} else {
		tag = cfg.Version
	}

	destDir := filepath.Join(cfg.InstallRoot, "vim-"+tag)

	if url != "" {
		err = in.downloadAndUnpack(ctx, url, file, destDir)
	} else {
		err = in.downloadInstallerByTag(ctx, tag, arch, destDir)
	}
	if err != nil {
		return domain.Installed{}, err
	}

	vimDir := filepath.Join(destDir, "vim")
	runtime, err := FindRuntimeDir(vimDir)
	if err != nil {
		return domain.Installed{}, err
	}

	return domain.Installed{
		Executable: "vim.exe",
		BinDir:     filepath.Join(vimDir, runtime),
		VimDir:     vimDir,
		RuntimeDir: runtime,
	}, nil
}

// latestInstallerTag lee el tag de la redirección de /releases/latest. Solo se acepta un 302.
func (in *Installer) latestInstallerTag(ctx context.Context) (string, error) {
	res, err := in.fetch.Head(ctx, vimInstallerLatestURL)
	if err != nil {
		return "", errors.Wrapf(err, "could not detect latest release of %s", vimInstallerRepo)
	}
	if res.StatusCode != http.StatusFound {
		return "", errors.Wrapf(errors.ErrProtocolMismatch, "expected status 302 (Found) from %s but got %d", vimInstallerLatestURL, res.StatusCode)
	}

	loc := strings.TrimSuffix(res.Location, "/")
	tag := loc[strings.LastIndex(loc, "/")+1:]
	if tag == "" {
		return "", errors.Wrapf(errors.ErrProtocolMismatch, "redirect from %s has no tag in Location %q", vimInstallerLatestURL, res.Location)
	}

	in.logger.Info("latest Windows installer", "tag", tag)
	return tag, nil
}

// installerAssetFromRelease busca el zip de la arquitectura en la release tag.
// Si no hay asset arm64 se usa el x64.
func (in *Installer) installerAssetFromRelease(ctx context.Context, cfg domain.Config, tag, arch string) (string, string, error) {
	if cfg.Token == "" {
		in.warn("No GitHub token given: calling the GitHub API anonymously, which is rate limited")
	}

	rel, err := in.releases.Release(ctx, vimInstallerRepo, tag)
	if err != nil {
		return "", "", errors.Wrapf(err, "could not get release %s of %s", tag, vimInstallerRepo)
	}

	asset, err := github.FindAsset(rel, "_"+arch+".zip")
	if err != nil && arch == "arm64" {
		in.logger.Info("no arm64 asset, falling back to x64", "tag", tag)
		asset, err = github.FindAsset(rel, "_x64.zip")
	}
	if err != nil {
		return "", "", err
	}
	return asset.DownloadURL, asset.Name, nil
}

// downloadInstallerByTag usa la URL directa del asset; arm64 reintenta con x64.
func (in *Installer) downloadInstallerByTag(ctx context.Context, tag, arch, destDir string) error {
	err := in.downloadAndUnpack(ctx, installerURL(tag, arch), installerFile(tag, arch), destDir)
	if err == nil || arch != "arm64" || !errors.IsHTTPStatus(err) {
		return err
	}

	in.logger.Info("arm64 installer not found, retrying with x64", "tag", tag, "error", err.Error())
	return in.downloadAndUnpack(ctx, installerURL(tag, "x64"), installerFile(tag, "x64"), destDir)
}

func installerFile(tag, arch string) string {
	return fmt.Sprintf("gvim_%s_%s.zip", strings.TrimPrefix(tag, "v"), arch)
}

func installerURL(tag, arch string) string {
	return fmt.Sprintf("%s/download/%s/%s", vimInstallerURL, tag, installerFile(tag, arch))
}
