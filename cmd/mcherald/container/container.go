package container

import (
	"go.uber.org/fx"

	"github.com/mcherald/mcherald/internal/core/usecases/checkstatus"
	"github.com/mcherald/mcherald/internal/core/usecases/listannouncements"
	"github.com/mcherald/mcherald/internal/core/usecases/listobservations"
)

type Container struct {
	CheckStatus       checkstatus.UseCase
	ListObservations  listobservations.UseCase
	ListAnnouncements listannouncements.UseCase
}

func New(
	checkStatusUseCase checkstatus.UseCase,
	listObservationsUseCase listobservations.UseCase,
	listAnnouncementsUseCase listannouncements.UseCase,
) Container {
	return Container{
		CheckStatus:       checkStatusUseCase,
		ListObservations:  listObservationsUseCase,
		ListAnnouncements: listAnnouncementsUseCase,
	}
}

var Module = fx.Module("container",
	fx.Provide(checkstatus.New),
	fx.Provide(listobservations.New),
	fx.Provide(listannouncements.New),
	fx.Provide(New),
)
