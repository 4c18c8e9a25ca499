package api

import (
	"github.com/rs/zerolog"

	"github.com/mcherald/mcherald/cmd/mcherald/container"
	"github.com/mcherald/mcherald/internal/settings"
)

// API bundles the handlers of the REST surface: build info, on-demand
// status checks and the observation/announcement history.
type API struct {
	settings  settings.Settings
	container container.Container
	logger    *zerolog.Logger
}

type Error struct {
	Error string `json:"error"`
}

func New(
	settings settings.Settings,
	logger *zerolog.Logger,
	container container.Container,
) *API {
	return &API{
		container: container,
		settings:  settings,
		logger:    logger,
	}
}
