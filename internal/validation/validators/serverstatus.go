package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/mcherald/mcherald/internal/core/entities/status"
)

// ValidateServerStatus enforces the consistency of a probe verdict:
// an available server carries no error, and an unavailable one
// carries no gameplay details.
func ValidateServerStatus(sl validator.StructLevel) {
	st, ok := sl.Current().Interface().(status.ServerStatus)
	if !ok {
		return
	}

	if st.Available {
		if st.Error != "" {
			sl.ReportError(st.Error, "Error", "Error", "conflicts_with_available", "")
		}
		return
	}

	if st.Method != status.MethodNone {
		sl.ReportError(st.Method, "Method", "Method", "requires_available", "")
	}
	if st.MOTD != "" || st.VersionName != "" {
		sl.ReportError(st.MOTD, "MOTD", "MOTD", "requires_available", "")
	}
	if st.PlayersOnline != 0 || st.MaxPlayers != 0 {
		sl.ReportError(st.PlayersOnline, "PlayersOnline", "PlayersOnline", "requires_available", "")
	}
	if st.Latency != 0 {
		sl.ReportError(st.Latency, "Latency", "Latency", "requires_available", "")
	}
}
