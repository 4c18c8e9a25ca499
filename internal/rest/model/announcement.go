package model

import (
	"time"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
)

type Announcement struct {
	ID             string    `json:"id"`
	Classification string    `json:"classification"`
	Text           string    `json:"text"`
	SentAt         time.Time `json:"sent_at"`
}

func NewAnnouncementFromDomain(ann announcement.Announcement) Announcement {
	return Announcement{
		ID:             ann.ID.String(),
		Classification: ann.Classification.String(),
		Text:           ann.Text,
		SentAt:         ann.SentAt,
	}
}
