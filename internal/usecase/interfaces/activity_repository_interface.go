package interfaces

import (
	"context"

	"bizops/internal/domain/entities"
)

// IActivityRepository is an append-only sink for activity entries.
type IActivityRepository interface {
	Append(ctx context.Context, entry entities.ActivityEntry) error
}
