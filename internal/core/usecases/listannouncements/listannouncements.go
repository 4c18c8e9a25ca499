package listannouncements

import (
	"context"
	"errors"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/repositories"
)

var ErrUnableToObtainAnnouncements = errors.New("unable to obtain announcements from repository")

type UseCase struct {
	annRepo repositories.AnnouncementRepository
}

type Request struct {
	limit int
}

func New(
	annRepo repositories.AnnouncementRepository,
) UseCase {
	return UseCase{
		annRepo: annRepo,
	}
}

func NewRequest(limit int) Request {
	return Request{
		limit: limit,
	}
}

func (uc UseCase) Execute(ctx context.Context, req Request) ([]announcement.Announcement, error) {
	items, err := uc.annRepo.List(ctx, req.limit)
	if err != nil {
		return nil, ErrUnableToObtainAnnouncements
	}
	return items, nil
}
