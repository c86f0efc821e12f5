// Package archive unpacks release archives (.zip, .tar.gz) in-process.
package archive

import (
	"archive/tar"
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"setupvim/internal/core/ports"
	"setupvim/internal/platform/errors"
	"setupvim/internal/platform/logx"
)

// Format es el tipo de archivo según su extensión.
type Format int

const (
	FormatUnknown Format = iota
	FormatZip
	FormatTarGz
)

// DetectFormat clasifica path por su extensión.
func DetectFormat(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return FormatZip
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return FormatTarGz
	default:
		return FormatUnknown
	}
}

// Extractor implementa ports.Unarchiver.
type Extractor struct {
	logger logx.Logger
}

// New crea un Extractor.
func New(logger logx.Logger) *Extractor {
	return &Extractor{logger: logger.With("component", "archive")}
}

var _ ports.Unarchiver = (*Extractor)(nil)

// Unarchive extrae archivePath en destDir según su extensión.
func (e *Extractor) Unarchive(ctx context.Context, archivePath, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", destDir)
	}

	e.logger.Info("extracting archive", "archive", archivePath, "dest", destDir)

	switch DetectFormat(archivePath) {
	case FormatZip:
		return e.extractZip(ctx, archivePath, destDir)
	case FormatTarGz:
		return e.extractTarGz(ctx, archivePath, destDir)
	default:
		return errors.Wrapf(errors.ErrUnknownArchive, "don't know how to unarchive %s to %s", archivePath, destDir)
	}
}

func (e *Extractor) extractZip(ctx context.Context, zipPath, destDir string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return errors.Wrapf(err, "failed to open zip %s", zipPath)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		target, err := safeJoin(destDir, file.Name)
		if err != nil {
			return err
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return errors.Wrap(err, "failed to create directory")
			}
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return errors.Wrapf(err, "failed to open %s in zip", file.Name)
		}
		err = writeFile(target, rc, file.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

func (e *Extractor) extractTarGz(ctx context.Context, tarGzPath, destDir string) error {
	file, err := os.Open(tarGzPath)
	if err != nil {
		return errors.Wrapf(err, "failed to open tar.gz %s", tarGzPath)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return errors.Wrap(err, "failed to create gzip reader")
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to read tar header")
		}

		target, err := safeJoin(destDir, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return errors.Wrap(err, "failed to create directory")
			}

		case tar.TypeReg:
			if err := writeFile(target, tarReader, os.FileMode(header.Mode)); err != nil {
				return err
			}

		case tar.TypeSymlink:
			// Solo symlinks relativos que apunten dentro del árbol extraído
			if filepath.IsAbs(header.Linkname) {
				return errors.Wrapf(errors.ErrInvalidInput, "archive symlink %q points to absolute path %q", header.Name, header.Linkname)
			}
			if _, err := safeJoin(destDir, filepath.Join(filepath.Dir(header.Name), header.Linkname)); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return errors.Wrap(err, "failed to create parent directory")
			}
			_ = os.Remove(target)
			if err := os.Symlink(header.Linkname, target); err != nil {
				return errors.Wrapf(err, "failed to create symlink %s", target)
			}

		default:
			e.logger.Debug("skipping tar entry", "name", header.Name, "type", string(header.Typeflag))
		}
	}

	return nil
}

func writeFile(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrap(err, "failed to create parent directory")
	}
	if mode.Perm() == 0 {
		mode = 0o644
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", target)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to extract %s", target)
	}
	return out.Close()
}

// safeJoin rechaza entradas que escaparían de destDir.
func safeJoin(destDir, name string) (string, error) {
	target := filepath.Join(destDir, name)
	rel, err := filepath.Rel(destDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Wrapf(errors.ErrInvalidInput, "archive entry %q escapes %s", name, destDir)
	}
	return target, nil
}
