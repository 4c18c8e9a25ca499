package model

import (
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/pkg/minecraft/motd"
)

type ServerStatus struct {
	Address   string `json:"address"`
	Online    bool   `json:"online"`
	Edition   string `json:"edition"`
	Method    string `json:"method"`
	MOTD      string `json:"motd"`
	MOTDPlain string `json:"motd_plain"`
	MOTDHTML  string `json:"motd_html"`
	Version   string `json:"version"`
	PlayerNum int    `json:"player_num"`
	PlayerMax int    `json:"player_max"`
	Latency   int64  `json:"latency_ms"`
	Error     string `json:"error"`
}

func NewServerStatusFromDomain(tgt target.Target, st status.ServerStatus) ServerStatus {
	return ServerStatus{
		Address:   tgt.String(),
		Online:    st.Available,
		Edition:   st.Edition.String(),
		Method:    st.Method.String(),
		MOTD:      st.MOTD,
		MOTDPlain: motd.Clean(st.MOTD),
		MOTDHTML:  motd.ToHTML(st.MOTD),
		Version:   st.VersionName,
		PlayerNum: st.PlayersOnline,
		PlayerMax: st.MaxPlayers,
		Latency:   st.Latency.Milliseconds(),
		Error:     st.Error,
	}
}
