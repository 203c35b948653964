package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mearas/realmwar/internal/api/apierr"
	"github.com/mearas/realmwar/internal/api/response"
	"github.com/mearas/realmwar/internal/services/claimbuild"
	"github.com/mearas/realmwar/internal/services/faction"
	"github.com/mearas/realmwar/internal/services/unittype"
)

// ReferenceHandler serves the read-only reference entities: factions,
// claimbuilds and unit types.
type ReferenceHandler struct {
	factionService    *faction.Service
	claimBuildService *claimbuild.Service
	unitTypeService   *unittype.Service
}

// NewReferenceHandler creates a new reference-data handler
func NewReferenceHandler(
	factionService *faction.Service,
	claimBuildService *claimbuild.Service,
	unitTypeService *unittype.Service,
) *ReferenceHandler {
	return &ReferenceHandler{
		factionService:    factionService,
		claimBuildService: claimBuildService,
		unitTypeService:   unitTypeService,
	}
}

// GetFaction handles GET /api/v1/factions/{name}
func (h *ReferenceHandler) GetFaction(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	found, err := h.factionService.GetByName(r.Context(), name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FactionFromModel(found))
}

// ListFactions handles GET /api/v1/factions
func (h *ReferenceHandler) ListFactions(w http.ResponseWriter, r *http.Request) {
	factions, err := h.factionService.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := make([]response.Faction, len(factions))
	for i, f := range factions {
		resp[i] = response.FactionFromModel(f)
	}
	response.JSON(w, http.StatusOK, resp)
}

// GetClaimBuild handles GET /api/v1/claimbuilds/{name}
func (h *ReferenceHandler) GetClaimBuild(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	found, err := h.claimBuildService.GetByName(r.Context(), name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ClaimBuildFromModel(found))
}

// ListUnitTypes handles GET /api/v1/unittypes
func (h *ReferenceHandler) ListUnitTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.unitTypeService.List(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := make([]response.UnitType, len(types))
	for i, ut := range types {
		resp[i] = response.UnitTypeFromModel(ut)
	}
	response.JSON(w, http.StatusOK, resp)
}
