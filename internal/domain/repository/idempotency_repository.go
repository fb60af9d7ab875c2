package repository

import (
	"context"

	"github.com/sangkips/medrep-crm/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency record operations
type IdempotencyRepository interface {
	// Get retrieves a record by user and key, (nil, nil) when absent
	Get(ctx context.Context, userID, key string) (*entity.IdempotencyRecord, error)
	// Save stores a record until its ExpiresAt
	Save(ctx context.Context, record *entity.IdempotencyRecord) error
}
