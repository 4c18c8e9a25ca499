package announcement

import (
	"time"

	"github.com/google/uuid"

	"github.com/mcherald/mcherald/internal/core/entities/status"
)

// Announcement is the audit record of a notification that was
// actually delivered to the sink.
type Announcement struct {
	ID             uuid.UUID
	Classification status.Classification
	Text           string
	SentAt         time.Time
}

var BlankAnnouncement Announcement // nolint: gochecknoglobals

func New(classification status.Classification, text string, sentAt time.Time) Announcement {
	return Announcement{
		ID:             uuid.New(),
		Classification: classification,
		Text:           text,
		SentAt:         sentAt,
	}
}
