package persistence

import (
	"github.com/mcherald/mcherald/internal/core/repositories"
)

type Repositories struct {
	Observations  repositories.ObservationRepository
	Announcements repositories.AnnouncementRepository
}
