package interfaces

import (
	"context"

	"cotizador3d/internal/domain/entities"
)

// IFilamentProfileRepository abstracts the filament catalog lookup. GetByID
// returns a zero value (no error) when the id is unknown.
type IFilamentProfileRepository interface {
	GetByID(ctx context.Context, id string) (entities.FilamentProfile, error)
}
