package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mearas/realmwar/internal/api/apierr"
	"github.com/mearas/realmwar/internal/api/request"
	"github.com/mearas/realmwar/internal/api/response"
	"github.com/mearas/realmwar/internal/model"
	"github.com/mearas/realmwar/internal/services/army"
)

// ArmyHandler handles army-related endpoints
type ArmyHandler struct {
	armyService *army.Service
}

// NewArmyHandler creates a new army handler
func NewArmyHandler(armyService *army.Service) *ArmyHandler {
	return &ArmyHandler{armyService: armyService}
}

// Create handles POST /api/v1/armies
func (h *ArmyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateArmyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	units := make([]army.UnitRequest, len(req.Units))
	for i, u := range req.Units {
		units[i] = army.UnitRequest{UnitTypeName: u.UnitType, Count: u.Count}
	}

	created, err := h.armyService.Create(r.Context(), army.CreateRequest{
		Name:       req.Name,
		Faction:    req.Faction,
		Type:       model.ArmyType(req.Type),
		ClaimBuild: req.ClaimBuild,
		Units:      units,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ArmyFromModel(created))
}

// Get handles GET /api/v1/armies/{name}
func (h *ArmyHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := model.ArmyName(mux.Vars(r)["name"])

	found, err := h.armyService.Get(r.Context(), name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ArmyFromModel(found))
}

// Bind handles POST /api/v1/armies/{name}/bind
func (h *ArmyHandler) Bind(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req request.BindArmyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	bound, err := h.armyService.Bind(r.Context(), army.BindRequest{
		ExecutorDiscordID: req.ExecutorDiscordID,
		TargetDiscordID:   req.TargetDiscordID,
		ArmyName:          name,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ArmyFromModel(bound))
}

// ListByFaction handles GET /api/v1/factions/{name}/armies
func (h *ArmyHandler) ListByFaction(w http.ResponseWriter, r *http.Request) {
	faction := mux.Vars(r)["name"]

	armies, err := h.armyService.ListByFaction(r.Context(), faction)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := make([]response.Army, len(armies))
	for i, a := range armies {
		resp[i] = response.ArmyFromModel(a)
	}
	response.JSON(w, http.StatusOK, resp)
}
