// internal/acquire/vim.go
package acquire

import (
	"context"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/kballard/go-shellquote"

	"setupvim/internal/core/domain"
	"setupvim/internal/platform/errors"
)

const vimRepoURL = "https://github.com/vim/vim"

// Vim anterior a 8.2.1119 no compila con el Xcode por defecto de los runners de macOS.
const defaultXcode11Dir = "/Applications/Xcode_11.7.app/Contents/Developer"

var versionTriple = regexp.MustCompile(`^v(\d+)\.(\d+)\.(\d+)$`)

// VersionIsOlderThan compara version ("vX.Y.Z") con major.minor.patch.
// Cualquier otra forma ("stable", "v7.4", "8.2.1118") no se considera más antigua.
func VersionIsOlderThan(version string, major, minor, patch uint64) bool {
	m := versionTriple.FindStringSubmatch(version)
	if m == nil {
		return false
	}

	parts := make([]uint64, 3)
	for i := range parts {
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return false
		}
		parts[i] = n
	}

	v := semver.New(parts[0], parts[1], parts[2], "", "")
	return v.LessThan(semver.New(major, minor, patch, "", ""))
}

// buildVim clona vim/vim y lo instala en <installRoot>/vim-<version>.
func (in *Installer) buildVim(ctx context.Context, cfg domain.Config) (domain.Installed, error) {
	userArgs, err := shellquote.Split(cfg.ConfigureArgs)
	if err != nil {
		return domain.Installed{}, &domain.ConfigError{
			Field:  "configure-args",
			Value:  cfg.ConfigureArgs,
			Reason: err.Error(),
		}
	}

	installDir := filepath.Join(cfg.InstallRoot, "vim-"+cfg.Version)
	tmp, err := in.mkdirTemp("setup-vim-")
	if err != nil {
		return domain.Installed{}, err
	}
	srcDir := filepath.Join(tmp, "vim")

	in.logger.Info("building Vim from source", "version", cfg.Version, "install_dir", installDir)

	cloneArgs := []string{"clone", "--depth=1", "--single-branch"}
	if cfg.VersionClass() == domain.VersionTag {
		cloneArgs = append(cloneArgs, "--branch", cfg.Version)
	} else {
		cloneArgs = append(cloneArgs, "--no-tags")
	}
	cloneArgs = append(cloneArgs, vimRepoURL, srcDir)
	if err := in.run(ctx, "", nil, "git", cloneArgs...); err != nil {
		return domain.Installed{}, errors.Wrapf(err, "could not clone %s", vimRepoURL)
	}

	env := in.legacyToolchainEnv(cfg)

	configureArgs := append([]string{
		"--prefix=" + installDir,
		"--with-features=huge",
		"--enable-fail-if-missing",
	}, userArgs...)
	if err := in.run(ctx, srcDir, env, "./configure", configureArgs...); err != nil {
		return domain.Installed{}, errors.Wrap(err, "./configure failed")
	}
	if err := in.run(ctx, srcDir, env, "make", "-j"); err != nil {
		return domain.Installed{}, errors.Wrap(err, "make failed")
	}
	if err := in.run(ctx, srcDir, env, "make", "install"); err != nil {
		return domain.Installed{}, errors.Wrap(err, "make install failed")
	}

	in.logger.Info("built Vim", "version", cfg.Version, "install_dir", installDir)

	return domain.Installed{
		Executable: "vim",
		BinDir:     filepath.Join(installDir, "bin"),
		VimDir:     filepath.Join(installDir, "share", "vim"),
	}, nil
}

// legacyToolchainEnv retorna DEVELOPER_DIR para versiones antiguas en macOS, o nil.
func (in *Installer) legacyToolchainEnv(cfg domain.Config) []string {
	if cfg.OS != domain.OSMacOS || !VersionIsOlderThan(cfg.Version, 8, 2, 1119) {
		return nil
	}

	dir := in.getenv("XCODE_11_DEVELOPER_DIR")
	if dir == "" {
		dir = defaultXcode11Dir
	}
	if !in.dirExists(dir) {
		in.warn("Vim " + cfg.Version + " may not build with the current Xcode and Xcode 11 was not found at " + dir)
		return nil
	}

	in.logger.Info("building with legacy Xcode", "developer_dir", dir)
	return []string{"DEVELOPER_DIR=" + dir}
}
