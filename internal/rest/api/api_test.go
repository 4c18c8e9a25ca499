package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcherald/mcherald/cmd/mcherald/container"
	"github.com/mcherald/mcherald/internal/core/entities/announcement"
	"github.com/mcherald/mcherald/internal/core/entities/observation"
	"github.com/mcherald/mcherald/internal/core/entities/protocol"
	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/core/entities/target"
	"github.com/mcherald/mcherald/internal/core/usecases/checkstatus"
	"github.com/mcherald/mcherald/internal/core/usecases/listannouncements"
	"github.com/mcherald/mcherald/internal/core/usecases/listobservations"
	"github.com/mcherald/mcherald/internal/metrics"
	"github.com/mcherald/mcherald/internal/persistence"
	"github.com/mcherald/mcherald/internal/persistence/memory"
	"github.com/mcherald/mcherald/internal/prober/resolver"
	"github.com/mcherald/mcherald/internal/rest"
	"github.com/mcherald/mcherald/internal/rest/api"
	"github.com/mcherald/mcherald/internal/settings"
)

type serverStatusSchema struct {
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

type observationSchema struct {
	ID             string             `json:"id"`
	Status         serverStatusSchema `json:"status"`
	Classification string             `json:"classification"`
	Streak         int                `json:"streak"`
	Stable         bool               `json:"stable"`
	Decision       string             `json:"decision"`
	ObservedAt     time.Time          `json:"observed_at"`
}

type announcementSchema struct {
	ID             string    `json:"id"`
	Classification string    `json:"classification"`
	Text           string    `json:"text"`
	SentAt         time.Time `json:"sent_at"`
}

type fakeProber struct {
	status status.ServerStatus
	err    error
}

func (f *fakeProber) Probe(
	_ context.Context,
	_ target.Target,
	_ time.Duration,
) (status.ServerStatus, error) {
	if f.err != nil {
		return status.Blank, f.err
	}
	return f.status, nil
}

type testState struct {
	Router  *gin.Engine
	Repos   persistence.Repositories
	Java    *fakeProber
	Bedrock *fakeProber
}

func setup() testState {
	gin.SetMode(gin.TestMode)
	logger := zerolog.Nop()

	stngs := settings.Settings{
		Target:              target.MustNew("mc.example.com", 25565),
		Mode:                protocol.ModeAuto,
		ProbeTimeout:        time.Second,
		JavaQueryEnabled:    true,
		BedrockQueryEnabled: true,
	}

	java := &fakeProber{err: errors.New("connection refused")}
	bedrock := &fakeProber{err: errors.New("i/o timeout")}
	rslvr := resolver.New(java, bedrock, metrics.New(), &logger, resolver.Opts{
		Target:              stngs.Target,
		Timeout:             stngs.ProbeTimeout,
		BedrockQueryEnabled: stngs.BedrockQueryEnabled,
	})

	repos := memory.New(100)
	cnt := container.New(
		checkstatus.New(rslvr),
		listobservations.New(repos.Observations),
		listannouncements.New(repos.Announcements),
	)

	a := api.New(stngs, &logger, cnt)
	return testState{
		Router:  rest.NewRouter(a),
		Repos:   repos,
		Java:    java,
		Bedrock: bedrock,
	}
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestAPI_Status(t *testing.T) {
	ts := setup()

	resp := doRequest(ts.Router, "/status")

	assert.Equal(t, http.StatusOK, resp.Code)
	var info map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &info))
	assert.Contains(t, info, "BuildVersion")
	assert.Contains(t, info, "BuildCommit")
	assert.Contains(t, info, "BuildTime")
}

func TestAPI_CheckStatus_Online(t *testing.T) {
	ts := setup()
	ts.Bedrock.err = nil
	ts.Bedrock.status = status.ServerStatus{
		Available:     true,
		Edition:       protocol.EditionBedrock,
		Method:        status.MethodQuery,
		MOTD:          "§bBedrock level",
		VersionName:   "1.21.90",
		PlayersOnline: 7,
		MaxPlayers:    30,
		Latency:       13 * time.Millisecond,
	}

	resp := doRequest(ts.Router, "/api/status")

	assert.Equal(t, http.StatusOK, resp.Code)
	var parsed serverStatusSchema
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &parsed))
	assert.Equal(t, "mc.example.com:25565", parsed.Address)
	assert.True(t, parsed.Online)
	assert.Equal(t, "bedrock", parsed.Edition)
	assert.Equal(t, "query", parsed.Method)
	assert.Equal(t, "§bBedrock level", parsed.MOTD)
	assert.Equal(t, "Bedrock level", parsed.MOTDPlain)
	assert.Equal(t, "Bedrock level", parsed.MOTDHTML)
	assert.Equal(t, "1.21.90", parsed.Version)
	assert.Equal(t, 7, parsed.PlayerNum)
	assert.Equal(t, 30, parsed.PlayerMax)
	assert.Equal(t, int64(13), parsed.Latency)
	assert.Empty(t, parsed.Error)
}

func TestAPI_CheckStatus_Offline(t *testing.T) {
	ts := setup()

	resp := doRequest(ts.Router, "/api/status")

	assert.Equal(t, http.StatusOK, resp.Code)
	var parsed serverStatusSchema
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &parsed))
	assert.False(t, parsed.Online)
	assert.Equal(t, "bedrock", parsed.Edition)
	assert.Equal(t, "none", parsed.Method)
	assert.Equal(t, "connection refused", parsed.Error)
}

func TestAPI_CheckStatus_EditionOverride(t *testing.T) {
	ts := setup()
	ts.Java.err = nil
	ts.Java.status = status.ServerStatus{
		Available: true,
		Edition:   protocol.EditionJava,
		Method:    status.MethodConnect,
	}

	resp := doRequest(ts.Router, "/api/status?edition=java")

	assert.Equal(t, http.StatusOK, resp.Code)
	var parsed serverStatusSchema
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &parsed))
	assert.True(t, parsed.Online)
	assert.Equal(t, "java", parsed.Edition)
	assert.Equal(t, "connect", parsed.Method)
}

func TestAPI_CheckStatus_UnknownEdition(t *testing.T) {
	ts := setup()

	resp := doRequest(ts.Router, "/api/status?edition=pocket")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAPI_ListObservations(t *testing.T) {
	ctx := context.TODO()
	ts := setup()

	tgt := target.MustNew("mc.example.com", 25565)
	offline := status.NewUnavailable(protocol.EditionJava, "connection refused")
	online := status.ServerStatus{
		Available:     true,
		Edition:       protocol.EditionJava,
		Method:        status.MethodQuery,
		MOTD:          "A Minecraft Server",
		PlayersOnline: 3,
		MaxPlayers:    20,
	}
	for i, st := range []status.ServerStatus{offline, online, online} {
		obs := observation.New(tgt, st, i+1, i > 0, announcement.DecisionNone, time.Now())
		require.NoError(t, ts.Repos.Observations.Add(ctx, obs))
	}

	resp := doRequest(ts.Router, "/api/observations")

	assert.Equal(t, http.StatusOK, resp.Code)
	var items []observationSchema
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &items))
	require.Len(t, items, 3)
	// newest first
	assert.Equal(t, 3, items[0].Streak)
	assert.True(t, items[0].Stable)
	assert.Equal(t, "online", items[0].Classification)
	assert.Equal(t, "none", items[0].Decision)
	assert.Equal(t, "A Minecraft Server", items[0].Status.MOTD)
	assert.Equal(t, 1, items[2].Streak)
	assert.Equal(t, "offline", items[2].Classification)
	assert.Equal(t, "connection refused", items[2].Status.Error)
}

func TestAPI_ListObservations_Limited(t *testing.T) {
	ctx := context.TODO()
	ts := setup()

	tgt := target.MustNew("mc.example.com", 25565)
	offline := status.NewUnavailable(protocol.EditionJava, "connection refused")
	for i := range 5 {
		obs := observation.New(tgt, offline, i+1, false, announcement.DecisionNone, time.Now())
		require.NoError(t, ts.Repos.Observations.Add(ctx, obs))
	}

	resp := doRequest(ts.Router, "/api/observations?limit=2")

	assert.Equal(t, http.StatusOK, resp.Code)
	var items []observationSchema
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Streak)
	assert.Equal(t, 4, items[1].Streak)
}

func TestAPI_ListObservations_LimitIsValidated(t *testing.T) {
	ts := setup()

	for _, path := range []string{
		"/api/observations?limit=-1",
		"/api/observations?limit=5000",
	} {
		resp := doRequest(ts.Router, path)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	}
}

func TestAPI_ListAnnouncements(t *testing.T) {
	ctx := context.TODO()
	ts := setup()

	older := announcement.New(status.Offline, "Server mc.example.com:25565 has gone offline", time.Now())
	newer := announcement.New(status.Online, "Server mc.example.com:25565 is back online", time.Now())
	require.NoError(t, ts.Repos.Announcements.Add(ctx, older))
	require.NoError(t, ts.Repos.Announcements.Add(ctx, newer))

	resp := doRequest(ts.Router, "/api/announcements")

	assert.Equal(t, http.StatusOK, resp.Code)
	var items []announcementSchema
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID.String(), items[0].ID)
	assert.Equal(t, "online", items[0].Classification)
	assert.Equal(t, "Server mc.example.com:25565 is back online", items[0].Text)
	assert.Equal(t, older.ID.String(), items[1].ID)
}

func TestAPI_ListAnnouncements_Empty(t *testing.T) {
	ts := setup()

	resp := doRequest(ts.Router, "/api/announcements")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}
