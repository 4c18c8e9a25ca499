package announcements

import (
	"time"

	"github.com/google/uuid"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/entities/status"
)

type storedItem struct {
	ID             string    `json:"id"`
	Classification int       `json:"classification"`
	Text           string    `json:"text"`
	SentAt         time.Time `json:"sent_at"`
}

func newStoredItem(ann announcement.Announcement) storedItem {
	return storedItem{
		ID:             ann.ID.String(),
		Classification: int(ann.Classification),
		Text:           ann.Text,
		SentAt:         ann.SentAt,
	}
}

func (i storedItem) convert() (announcement.Announcement, error) {
	id, err := uuid.Parse(i.ID)
	if err != nil {
		return announcement.BlankAnnouncement, err
	}
	return announcement.Announcement{
		ID:             id,
		Classification: status.Classification(i.Classification),
		Text:           i.Text,
		SentAt:         i.SentAt,
	}, nil
}
