package memory

import (
	"github.com/mcherald/mcherald/internal/persistence"
	"github.com/mcherald/mcherald/internal/persistence/memory/announcements"
	"github.com/mcherald/mcherald/internal/persistence/memory/observations"
)

func New(maxHistorySize int) persistence.Repositories {
	return persistence.Repositories{
		Observations:  observations.New(maxHistorySize),
		Announcements: announcements.New(maxHistorySize),
	}
}
