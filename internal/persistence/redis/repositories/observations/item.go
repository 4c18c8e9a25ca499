package observations

import (
	"time"

	"github.com/google/uuid"

	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/entities/observation"
	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
)

type storedItem struct {
	ID             string        `json:"id"`
	Host           string        `json:"host"`
	Port           int           `json:"port"`
	Available      bool          `json:"available"`
	Edition        int           `json:"edition"`
	Method         int           `json:"method"`
	MOTD           string        `json:"motd"`
	VersionName    string        `json:"version_name"`
	PlayersOnline  int           `json:"players_online"`
	MaxPlayers     int           `json:"max_players"`
	Latency        time.Duration `json:"latency"`
	Error          string        `json:"error"`
	Classification int           `json:"classification"`
	Streak         int           `json:"streak"`
	Stable         bool          `json:"stable"`
	Decision       int           `json:"decision"`
	ObservedAt     time.Time     `json:"observed_at"`
}

func newStoredItem(obs observation.Observation) storedItem {
	return storedItem{
		ID:             obs.ID.String(),
		Host:           obs.Target.Host,
		Port:           obs.Target.Port,
		Available:      obs.Status.Available,
		Edition:        int(obs.Status.Edition),
		Method:         int(obs.Status.Method),
		MOTD:           obs.Status.MOTD,
		VersionName:    obs.Status.VersionName,
		PlayersOnline:  obs.Status.PlayersOnline,
		MaxPlayers:     obs.Status.MaxPlayers,
		Latency:        obs.Status.Latency,
		Error:          obs.Status.Error,
		Classification: int(obs.Classification),
		Streak:         obs.Streak,
		Stable:         obs.Stable,
		Decision:       int(obs.Decision),
		ObservedAt:     obs.ObservedAt,
	}
}

func (i storedItem) convert() (observation.Observation, error) {
	id, err := uuid.Parse(i.ID)
	if err != nil {
		return observation.Blank, err
	}
	tgt, err := target.New(i.Host, i.Port)
	if err != nil {
		return observation.Blank, err
	}
	return observation.Observation{
		ID:     id,
		Target: tgt,
		Status: status.ServerStatus{
			Available:     i.Available,
			Edition:       protocol.Edition(i.Edition),
			Method:        status.Method(i.Method),
			MOTD:          i.MOTD,
			VersionName:   i.VersionName,
			PlayersOnline: i.PlayersOnline,
			MaxPlayers:    i.MaxPlayers,
			Latency:       i.Latency,
			Error:         i.Error,
		},
		Classification: status.Classification(i.Classification),
		Streak:         i.Streak,
		Stable:         i.Stable,
		Decision:       announcement.Decision(i.Decision),
		ObservedAt:     i.ObservedAt,
	}, nil
}
