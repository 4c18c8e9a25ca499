package announcements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/repositories"
)

const historyKey = "announcements:history"

// Repository keeps the announcement history in a capped redis list,
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

func (r *Repository) Add(ctx context.Context, ann announcement.Announcement) error {
	item, err := json.Marshal(newStoredItem(ann))
	if err != nil {
		return fmt.Errorf("failed to marshal announcement: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, historyKey, item)
		if r.maxSize > 0 {
			pipe.LTrim(ctx, historyKey, 0, int64(r.maxSize-1))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add announcement: %w", err)
	}

	return nil
}

func (r *Repository) Latest(ctx context.Context) (announcement.Announcement, error) {
	value, err := r.client.LIndex(ctx, historyKey, 0).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return announcement.BlankAnnouncement, repositories.ErrAnnouncementNotFound
		}
		return announcement.BlankAnnouncement, fmt.Errorf("failed to fetch latest announcement: %w", err)
	}
	return asAnnouncement(value)
}

func (r *Repository) List(ctx context.Context, limit int) ([]announcement.Announcement, error) {
	end := int64(-1)
	if limit > 0 {
		end = int64(limit - 1)
	}

	values, err := r.client.LRange(ctx, historyKey, 0, end).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	items := make([]announcement.Announcement, 0, len(values))
	for _, value := range values {
		ann, convErr := asAnnouncement(value)
		if convErr != nil {
			return nil, convErr
		}
		items = append(items, ann)
	}

	return items, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.client.LLen(ctx, historyKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count announcements: %w", err)
	}
	return int(count), nil
}

func (r *Repository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, historyKey).Err(); err != nil {
		return fmt.Errorf("failed to clear announcements: %w", err)
	}
	return nil
}

func asAnnouncement(value string) (announcement.Announcement, error) {
	var item storedItem
	if err := json.Unmarshal([]byte(value), &item); err != nil {
		return announcement.BlankAnnouncement, fmt.Errorf("failed to unmarshal announcement: %w", err)
	}
	ann, err := item.convert()
	if err != nil {
		return announcement.BlankAnnouncement, fmt.Errorf("failed to restore announcement: %w", err)
	}
	return ann, nil
}
