package observations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mcherald/mcherald/internal/core/entities/observation"
	"github.com/mcherald/mcherald/internal/core/repositories"
)

const historyKey = "observations:history"

// Repository keeps the observation history in a capped redis list,
// newest first.
type Repository struct {
	client  *redis.Client
	maxSize int
}

func New(client *redis.Client, maxSize int) *Repository {
	return &Repository{
		client:  client,
		maxSize: maxSize,
	}
}

func (r *Repository) Add(ctx context.Context, obs observation.Observation) error {
	item, err := json.Marshal(newStoredItem(obs))
	if err != nil {
		return fmt.Errorf("failed to marshal observation: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, historyKey, item)
		if r.maxSize > 0 {
			pipe.LTrim(ctx, historyKey, 0, int64(r.maxSize-1))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add observation: %w", err)
	}

	return nil
}

func (r *Repository) Latest(ctx context.Context) (observation.Observation, error) {
	value, err := r.client.LIndex(ctx, historyKey, 0).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return observation.Blank, repositories.ErrObservationNotFound
		}
		return observation.Blank, fmt.Errorf("failed to fetch latest observation: %w", err)
	}
	return asObservation(value)
}

func (r *Repository) List(ctx context.Context, limit int) ([]observation.Observation, error) {
	end := int64(-1)
	if limit > 0 {
		end = int64(limit - 1)
	}

	values, err := r.client.LRange(ctx, historyKey, 0, end).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}

	items := make([]observation.Observation, 0, len(values))
	for _, value := range values {
		obs, convErr := asObservation(value)
		if convErr != nil {
			return nil, convErr
		}
		items = append(items, obs)
	}

	return items, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.client.LLen(ctx, historyKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count observations: %w", err)
	}
	return int(count), nil
}

func (r *Repository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, historyKey).Err(); err != nil {
		return fmt.Errorf("failed to clear observations: %w", err)
	}
	return nil
}

func asObservation(value string) (observation.Observation, error) {
	var item storedItem
	if err := json.Unmarshal([]byte(value), &item); err != nil {
		return observation.Blank, fmt.Errorf("failed to unmarshal observation: %w", err)
	}
	obs, err := item.convert()
	if err != nil {
		return observation.Blank, fmt.Errorf("failed to restore observation: %w", err)
	}
	return obs, nil
}
