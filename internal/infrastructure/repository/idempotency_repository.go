package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sangkips/medrep-crm/internal/domain/entity"
	domainRepo "github.com/sangkips/medrep-crm/internal/domain/repository"
)

type idempotencyRepository struct {
	client *redis.Client
}

// NewIdempotencyRepository creates a Redis-backed idempotency repository
func NewIdempotencyRepository(client *redis.Client) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{client: client}
}

func idempotencyKey(userID, key string) string {
	return fmt.Sprintf("idempotency:%s:%s", userID, key)
}

func (r *idempotencyRepository) Get(ctx context.Context, userID, key string) (*entity.IdempotencyRecord, error) {
	data, err := r.client.Get(ctx, idempotencyKey(userID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record entity.IdempotencyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode idempotency record: %w", err)
	}
	return &record, nil
}

func (r *idempotencyRepository) Save(ctx context.Context, record *entity.IdempotencyRecord) error {
	ttl := time.Until(record.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, idempotencyKey(record.UserID, record.Key), data, ttl).Err()
}
