// internal/core/ports/releases.go
package ports

import "context"

// ReleaseAsset es un fichero adjunto a una release.
type ReleaseAsset struct {
	Name        string
	DownloadURL string
}

// Release es una release de GitHub con sus assets.
type Release struct {
	Tag    string
	Assets []ReleaseAsset
}

// ReleaseLister obtiene releases de un repositorio "owner/name".
// Un tag vacío pide la última release.
type ReleaseLister interface {
	Release(ctx context.Context, repo, tag string) (Release, error)
}
