package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mearas/realmwar/internal/api"
	"github.com/mearas/realmwar/internal/api/apierr"
	"github.com/mearas/realmwar/internal/api/response"
	"github.com/mearas/realmwar/internal/factory"
	"github.com/mearas/realmwar/internal/model"
	"github.com/mearas/realmwar/internal/storage/memory"
)

// stubDirectory resolves any IGN to a deterministic fake UUID
type stubDirectory struct{}

func (stubDirectory) LookupUUID(_ context.Context, ign string) (string, error) {
	if ign == "UnknownAccount" {
		return "", fmt.Errorf("%w: %q", model.ErrAccountNotFound, ign)
	}
	return "uuid-" + ign, nil
}

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{
		Logger:    logger,
		Directory: stubDirectory{},
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		ArmyService:       app.ArmyService,
		PlayerService:     app.PlayerService,
		FactionService:    app.FactionService,
		ClaimBuildService: app.ClaimBuildService,
		UnitTypeService:   app.UnitTypeService,
	})

	ts := &testServer{
		handler: router,
		app:     app,
		storage: app.Storage.(*memory.Storage),
	}
	ts.seed(t)
	return ts
}

// seed loads the reference data the workflows depend on, through the same
// service Save methods a deployment would use
func (ts *testServer) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, ts.storage.SaveRegion(ctx, &model.Region{
		ID: "91", Name: "Western Ithilien", Type: model.RegionTypeLand,
	}))
	require.NoError(t, ts.app.FactionService.Save(ctx, &model.Faction{
		Name: "Gondor", Leader: "Aldwin", HomeRegion: "91",
	}))
	require.NoError(t, ts.app.FactionService.Save(ctx, &model.Faction{
		Name: "Mordor", HomeRegion: "102",
	}))
	require.NoError(t, ts.app.ClaimBuildService.Save(ctx, &model.ClaimBuild{
		Name: "Minas Ithil", Type: model.ClaimBuildTown, Region: "91", OwnedBy: "Gondor",
	}))
	require.NoError(t, ts.app.UnitTypeService.Save(ctx, &model.UnitType{
		Name: "Gondor Soldier", TokenCost: 1.0,
	}))
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createPlayer(t *testing.T, ign, discordID string) response.Player {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{
		"ign":        ign,
		"discord_id": discordID,
		"faction":    "Gondor",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func (ts *testServer) createRPChar(t *testing.T, discordID, name string) {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/players/"+discordID+"/rpchar", map[string]any{
		"name": name,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func (ts *testServer) createArmy(t *testing.T, name string, soldiers int) response.Army {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/armies", map[string]any{
		"name":       name,
		"faction":    "Gondor",
		"type":       "ARMY",
		"claimbuild": "Minas Ithil",
		"units": []map[string]any{
			{"unit_type": "Gondor Soldier", "count": soldiers},
		},
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp response.Army
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreatePlayer(t *testing.T) {
	ts := newTestServer(t)

	player := ts.createPlayer(t, "Borondir", "discord-1")
	assert.Equal(t, "Borondir", player.IGN)
	assert.Equal(t, "uuid-Borondir", player.UUID)
	assert.Equal(t, "Gondor", player.Faction)
	assert.Nil(t, player.RPChar)
}

func TestCreatePlayerUnknownAccount(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{
		"ign":        "UnknownAccount",
		"discord_id": "discord-1",
		"faction":    "Gondor",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeAccountNotFound, errorCode(t, rr))
}

func TestCreatePlayerDuplicate(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Borondir", "discord-1")

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{
		"ign":        "Borondir",
		"discord_id": "discord-2",
		"faction":    "Gondor",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodePlayerExists, errorCode(t, rr))
}

func TestGetPlayer(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Borondir", "discord-1")

	rr := ts.request(http.MethodGet, "/api/v1/players/discord-1", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Borondir", resp.IGN)
}

func TestGetPlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/discord-nobody", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, errorCode(t, rr))
}

func TestUpdatePlayerFaction(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Borondir", "discord-1")

	rr := ts.request(http.MethodPatch, "/api/v1/players/discord-1", map[string]string{
		"faction": "Mordor",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Mordor", resp.Faction)
}

func TestUpdatePlayerNoFieldsSet(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Borondir", "discord-1")

	rr := ts.request(http.MethodPatch, "/api/v1/players/discord-1", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeletePlayer(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Borondir", "discord-1")

	rr := ts.request(http.MethodDelete, "/api/v1/players/discord-1", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/discord-1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateRPChar(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Borondir", "discord-1")

	rr := ts.request(http.MethodPost, "/api/v1/players/discord-1/rpchar", map[string]any{
		"name":  "Borondir the Bold",
		"title": "Captain of Ithilien",
		"pvp":   true,
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.RPChar
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Borondir the Bold", resp.Name)
	// Spawns at the faction's home region
	assert.Equal(t, "91", resp.CurrentRegion)
}

func TestCreateRPCharTitleTooLong(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Borondir", "discord-1")

	rr := ts.request(http.MethodPost, "/api/v1/players/discord-1/rpchar", map[string]any{
		"name":  "Borondir the Bold",
		"title": "An exceedingly long and grandiose title",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeTitleTooLong, errorCode(t, rr))
}

func TestCreateArmy(t *testing.T) {
	ts := newTestServer(t)

	army := ts.createArmy(t, "Host of Ithilien", 11)
	assert.Equal(t, "Host of Ithilien", army.Name)
	assert.Equal(t, "91", army.CurrentRegion)
	assert.Equal(t, "Minas Ithil", army.Origin)
	// Town budget of 30 minus 11 soldiers at 1 token each
	assert.Equal(t, 19, army.FreeTokens)
}

func TestCreateArmyOverBudget(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/armies", map[string]any{
		"name":       "Grand Host",
		"faction":    "Gondor",
		"type":       "ARMY",
		"claimbuild": "Minas Ithil",
		"units": []map[string]any{
			{"unit_type": "Gondor Soldier", "count": 31},
		},
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeNotEnoughTokens, errorCode(t, rr))
}

func TestCreateArmyUnknownUnitType(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/armies", map[string]any{
		"name":       "Strange Host",
		"faction":    "Gondor",
		"type":       "ARMY",
		"claimbuild": "Minas Ithil",
		"units": []map[string]any{
			{"unit_type": "Oliphaunt", "count": 1},
		},
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeUnitTypeNotFound, errorCode(t, rr))
}

func TestCreateArmyInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/armies", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetArmy(t *testing.T) {
	ts := newTestServer(t)
	ts.createArmy(t, "Host of Ithilien", 11)

	rr := ts.request(http.MethodGet, "/api/v1/armies/Host%20of%20Ithilien", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Army
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Host of Ithilien", resp.Name)
}

func TestGetArmyNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/armies/Ghost%20Host", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeArmyNotFound, errorCode(t, rr))
}

func TestBindArmySelf(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Borondir", "discord-1")
	ts.createRPChar(t, "discord-1", "Borondir the Bold")
	ts.createArmy(t, "Host of Ithilien", 11)

	rr := ts.request(http.MethodPost, "/api/v1/armies/Host%20of%20Ithilien/bind", map[string]string{
		"executor_discord_id": "discord-1",
		"target_discord_id":   "discord-1",
	})
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp response.Army
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Borondir", resp.BoundTo)
}

func TestBindArmyForOtherRequiresLeader(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Borondir", "discord-1")
	ts.createRPChar(t, "discord-1", "Borondir the Bold")
	ts.createPlayer(t, "Calmacil", "discord-2")
	ts.createRPChar(t, "discord-2", "Calmacil the Quiet")
	ts.createArmy(t, "Host of Ithilien", 11)

	rr := ts.request(http.MethodPost, "/api/v1/armies/Host%20of%20Ithilien/bind", map[string]string{
		"executor_discord_id": "discord-1",
		"target_discord_id":   "discord-2",
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, apierr.CodeNotFactionLeader, errorCode(t, rr))
}

func TestBindArmyAlreadyBound(t *testing.T) {
	ts := newTestServer(t)
	ts.createPlayer(t, "Borondir", "discord-1")
	ts.createRPChar(t, "discord-1", "Borondir the Bold")
	ts.createPlayer(t, "Calmacil", "discord-2")
	ts.createRPChar(t, "discord-2", "Calmacil the Quiet")
	ts.createArmy(t, "Host of Ithilien", 11)

	rr := ts.request(http.MethodPost, "/api/v1/armies/Host%20of%20Ithilien/bind", map[string]string{
		"executor_discord_id": "discord-1",
		"target_discord_id":   "discord-1",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/armies/Host%20of%20Ithilien/bind", map[string]string{
		"executor_discord_id": "discord-2",
		"target_discord_id":   "discord-2",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeArmyAlreadyBound, errorCode(t, rr))
}

func TestListFactions(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/factions", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []response.Faction
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Gondor", resp[0].Name)
}

func TestGetFaction(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/factions/Gondor", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Faction
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Aldwin", resp.Leader)
}

func TestListFactionArmies(t *testing.T) {
	ts := newTestServer(t)
	ts.createArmy(t, "Host of Ithilien", 11)

	rr := ts.request(http.MethodGet, "/api/v1/factions/Gondor/armies", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []response.Army
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Host of Ithilien", resp[0].Name)
}

func TestGetClaimBuild(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/claimbuilds/Minas%20Ithil", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.ClaimBuild
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "TOWN", resp.Type)
}

func TestListUnitTypes(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/unittypes", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []response.UnitType
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Gondor Soldier", resp[0].Name)
}
