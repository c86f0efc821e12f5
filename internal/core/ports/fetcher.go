// internal/core/ports/fetcher.go
package ports

import "context"

// HeadResult es la respuesta de un HEAD sin seguir redirecciones.
type HeadResult struct {
	StatusCode int
	Location   string
}

// Fetcher es el port para transferencias HTTP.
type Fetcher interface {
	// Download guarda el cuerpo de url en destPath. Un status no-2xx es error.
	Download(ctx context.Context, url, destPath string) error

	// Head hace un HEAD sin seguir redirecciones.
	Head(ctx context.Context, url string) (HeadResult, error)
}

// Unarchiver extrae un archivo .zip o .tar.gz en destDir.
type Unarchiver interface {
	Unarchive(ctx context.Context, archivePath, destDir string) error
}
