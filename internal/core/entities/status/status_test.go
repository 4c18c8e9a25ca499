package status_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/validation"
)

func TestNewUnavailable(t *testing.T) {
	unavailable := status.NewUnavailable(protocol.EditionJava, "connection refused")

	assert.False(t, unavailable.Available)
	assert.Equal(t, protocol.EditionJava, unavailable.Edition)
	assert.Equal(t, status.MethodNone, unavailable.Method)
	assert.Equal(t, "connection refused", unavailable.Error)
	assert.Equal(t, "", unavailable.MOTD)
	assert.Equal(t, 0, unavailable.PlayersOnline)
	assert.Equal(t, 0, unavailable.MaxPlayers)
	assert.Equal(t, time.Duration(0), unavailable.Latency)
}

func TestServerStatus_Classification(t *testing.T) {
	online := status.ServerStatus{Available: true, Edition: protocol.EditionJava, Method: status.MethodQuery}
	assert.Equal(t, status.Online, online.Classification())

	offline := status.NewUnavailable(protocol.EditionBedrock, "i/o timeout")
	assert.Equal(t, status.Offline, offline.Classification())

	assert.Equal(t, status.Offline, status.Blank.Classification())
}

func TestServerStatus_Validate(t *testing.T) {
	tests := []struct {
		name   string
		status status.ServerStatus
		want   bool
	}{
		{
			name: "full query status is valid",
			status: status.ServerStatus{
				Available:     true,
				Edition:       protocol.EditionJava,
				Method:        status.MethodQuery,
				MOTD:          "A Minecraft Server",
				VersionName:   "1.21.5",
				PlayersOnline: 5,
				MaxPlayers:    20,
				Latency:       25 * time.Millisecond,
			},
			want: true,
		},
		{
			name: "bare connect status is valid",
			status: status.ServerStatus{
				Available: true,
				Edition:   protocol.EditionJava,
				Method:    status.MethodConnect,
				Latency:   10 * time.Millisecond,
			},
			want: true,
		},
		{
			name:   "unavailable status is valid",
			status: status.NewUnavailable(protocol.EditionBedrock, "i/o timeout"),
			want:   true,
		},
		{
			name: "negative player count is not valid",
			status: status.ServerStatus{
				Available:     true,
				Edition:       protocol.EditionJava,
				Method:        status.MethodQuery,
				PlayersOnline: -1,
				MaxPlayers:    20,
			},
			want: false,
		},
		{
			name: "negative player limit is not valid",
			status: status.ServerStatus{
				Available:  true,
				Edition:    protocol.EditionJava,
				Method:     status.MethodQuery,
				MaxPlayers: -20,
			},
			want: false,
		},
		{
			name: "negative latency is not valid",
			status: status.ServerStatus{
				Available: true,
				Edition:   protocol.EditionJava,
				Method:    status.MethodConnect,
				Latency:   -time.Second,
			},
			want: false,
		},
		{
			name: "unknown edition value is not valid",
			status: status.ServerStatus{
				Available: true,
				Edition:   protocol.Edition(42),
				Method:    status.MethodQuery,
			},
			want: false,
		},
		{
			name: "available status with an error is not valid",
			status: status.ServerStatus{
				Available: true,
				Edition:   protocol.EditionJava,
				Method:    status.MethodQuery,
				Error:     "connection refused",
			},
			want: false,
		},
		{
			name: "unavailable status with gameplay fields is not valid",
			status: status.ServerStatus{
				Available:     false,
				Edition:       protocol.EditionJava,
				Method:        status.MethodNone,
				PlayersOnline: 5,
				MaxPlayers:    20,
			},
			want: false,
		},
		{
			name: "unavailable status with a probe method is not valid",
			status: status.ServerStatus{
				Available: false,
				Edition:   protocol.EditionJava,
				Method:    status.MethodConnect,
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validate, _ := validation.New()
			err := tt.status.Validate(validate)
			if tt.want {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "none", status.MethodNone.String())
	assert.Equal(t, "query", status.MethodQuery.String())
	assert.Equal(t, "legacy", status.MethodLegacy.String())
	assert.Equal(t, "connect", status.MethodConnect.String())
}

func TestClassification_String(t *testing.T) {
	assert.Equal(t, "online", status.Online.String())
	assert.Equal(t, "offline", status.Offline.String())
}
