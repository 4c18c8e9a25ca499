package repositories

import (
	"context"
	"errors"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
)

var ErrAnnouncementNotFound = errors.New("the requested announcement was not found")

// AnnouncementRepository keeps a capped history of delivered
// announcements, newest first.
type AnnouncementRepository interface {
	Add(ctx context.Context, ann announcement.Announcement) error
	Latest(ctx context.Context) (announcement.Announcement, error)
	List(ctx context.Context, limit int) ([]announcement.Announcement, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
