// internal/core/ports/acquirer.go
package ports

import (
	"context"

	"setupvim/internal/core/domain"
)

// Acquirer instala el editor descrito por cfg y retorna su ubicación.
type Acquirer interface {
	Install(ctx context.Context, cfg domain.Config) (domain.Installed, error)
}
