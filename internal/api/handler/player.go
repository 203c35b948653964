package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mearas/realmwar/internal/api/apierr"
	"github.com/mearas/realmwar/internal/api/request"
	"github.com/mearas/realmwar/internal/api/response"
	"github.com/mearas/realmwar/internal/services/player"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	playerService *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	created, err := h.playerService.Create(r.Context(), player.CreateRequest{
		IGN:       req.IGN,
		DiscordID: req.DiscordID,
		Faction:   req.Faction,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(created))
}

// Get handles GET /api/v1/players/{discord_id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	discordID := mux.Vars(r)["discord_id"]

	found, err := h.playerService.GetByDiscordID(r.Context(), discordID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(found))
}

// Update handles PATCH /api/v1/players/{discord_id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	discordID := mux.Vars(r)["discord_id"]

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	switch {
	case req.Faction != "":
		p, err := h.playerService.UpdateFaction(r.Context(), discordID, req.Faction)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
	case req.IGN != "":
		p, err := h.playerService.UpdateIGN(r.Context(), discordID, req.IGN)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
	case req.NewDiscordID != "":
		p, err := h.playerService.UpdateDiscordID(r.Context(), discordID, req.NewDiscordID)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
	default:
		apierr.WriteError(w, apierr.NewInvalidRequestError("no update field set"))
	}
}

// Delete handles DELETE /api/v1/players/{discord_id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	discordID := mux.Vars(r)["discord_id"]

	if _, err := h.playerService.Delete(r.Context(), discordID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// CreateRPChar handles POST /api/v1/players/{discord_id}/rpchar
func (h *PlayerHandler) CreateRPChar(w http.ResponseWriter, r *http.Request) {
	discordID := mux.Vars(r)["discord_id"]

	var req request.CreateRPCharRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	char, err := h.playerService.CreateRPChar(r.Context(), player.CreateRPCharRequest{
		DiscordID: discordID,
		Name:      req.Name,
		Title:     req.Title,
		Gear:      req.Gear,
		PvP:       req.PvP,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RPCharFromModel(char))
}

// UpdateRPChar handles PATCH /api/v1/players/{discord_id}/rpchar
func (h *PlayerHandler) UpdateRPChar(w http.ResponseWriter, r *http.Request) {
	discordID := mux.Vars(r)["discord_id"]

	var req request.UpdateRPCharRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	switch {
	case req.Name != "":
		char, err := h.playerService.UpdateRPCharName(r.Context(), discordID, req.Name)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.RPCharFromModel(char))
	case req.Title != "":
		char, err := h.playerService.UpdateRPCharTitle(r.Context(), discordID, req.Title)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.RPCharFromModel(char))
	default:
		apierr.WriteError(w, apierr.NewInvalidRequestError("no update field set"))
	}
}

// DeleteRPChar handles DELETE /api/v1/players/{discord_id}/rpchar
func (h *PlayerHandler) DeleteRPChar(w http.ResponseWriter, r *http.Request) {
	discordID := mux.Vars(r)["discord_id"]

	if _, err := h.playerService.DeleteRPChar(r.Context(), discordID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
