package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mearas/realmwar/internal/api/handler"
	"github.com/mearas/realmwar/internal/middleware"
	"github.com/mearas/realmwar/internal/services/army"
	"github.com/mearas/realmwar/internal/services/claimbuild"
	"github.com/mearas/realmwar/internal/services/faction"
	"github.com/mearas/realmwar/internal/services/player"
	"github.com/mearas/realmwar/internal/services/unittype"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	ArmyService       *army.Service
	PlayerService     *player.Service
	FactionService    *faction.Service
	ClaimBuildService *claimbuild.Service
	UnitTypeService   *unittype.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	armyHandler := handler.NewArmyHandler(cfg.ArmyService)
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)
	referenceHandler := handler.NewReferenceHandler(cfg.FactionService, cfg.ClaimBuildService, cfg.UnitTypeService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Army routes
	api.HandleFunc("/armies", armyHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/armies/{name}", armyHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/armies/{name}/bind", armyHandler.Bind).Methods(http.MethodPost)

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/{discord_id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{discord_id}", playerHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/players/{discord_id}", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/players/{discord_id}/rpchar", playerHandler.CreateRPChar).Methods(http.MethodPost)
	api.HandleFunc("/players/{discord_id}/rpchar", playerHandler.UpdateRPChar).Methods(http.MethodPatch)
	api.HandleFunc("/players/{discord_id}/rpchar", playerHandler.DeleteRPChar).Methods(http.MethodDelete)

	// Reference data routes
	api.HandleFunc("/factions", referenceHandler.ListFactions).Methods(http.MethodGet)
	api.HandleFunc("/factions/{name}", referenceHandler.GetFaction).Methods(http.MethodGet)
	api.HandleFunc("/factions/{name}/armies", armyHandler.ListByFaction).Methods(http.MethodGet)
	api.HandleFunc("/claimbuilds/{name}", referenceHandler.GetClaimBuild).Methods(http.MethodGet)
	api.HandleFunc("/unittypes", referenceHandler.ListUnitTypes).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
