// internal/acquire/archive.go
package acquire

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"setupvim/internal/core/domain"
	"setupvim/internal/platform/errors"
)

// FindRuntimeDir retorna el primer subdirectorio de dir llamado vimNN o runtime.
func FindRuntimeDir(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "could not read directory %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
		if e.IsDir() && domain.IsRuntimeDirName(e.Name()) {
			return e.Name(), nil
		}
	}

	return "", errors.Wrapf(errors.ErrRuntimeNotFound, "in %s (entries: %s)", dir, strings.Join(names, ", "))
}

// downloadAndUnpack baja url a un directorio temporal y lo extrae en destDir.
// El nombre del fichero decide el formato.
func (in *Installer) downloadAndUnpack(ctx context.Context, url, file, destDir string) error {
	tmp, err := in.mkdirTemp("setup-vim-")
	if err != nil {
		return err
	}
	archivePath := filepath.Join(tmp, file)

	in.logger.Info("downloading", "url", url)
	if err := in.fetch.Download(ctx, url, archivePath); err != nil {
		return errors.Wrapf(err, "could not download %s", file)
	}

	if err := in.unarchive.Unarchive(ctx, archivePath, destDir); err != nil {
		return errors.Wrapf(err, "could not unarchive %s", file)
	}
	return nil
}
