package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchday/internal/platform/logging"
)

type RouterConfig struct {
	ServiceName        string
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handler.Healthz)
	registerTeamRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)
	registerGameRoutes(mux, handler)
	registerLineUpRoutes(mux, handler)
	registerWeatherRoutes(mux, handler)

	return RequestTracing(cfg.ServiceName,
		RequestID(
			RequestLogging(logger,
				CORS(cfg.CORSAllowedOrigins,
					recoverPanic(logger, mux)))))
}

func registerTeamRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/teams", h.ListTeams)
	mux.HandleFunc("POST /api/teams", h.CreateTeam)
	mux.HandleFunc("GET /api/teams/export/json", h.ExportTeamsJSON)
	mux.HandleFunc("GET /api/teams/export/csv", h.ExportTeamsCSV)
	mux.HandleFunc("GET /api/teams/{id}", h.GetTeam)
	mux.HandleFunc("PUT /api/teams/{id}", h.UpdateTeam)
	mux.HandleFunc("DELETE /api/teams/{id}", h.DeleteTeam)
}

func registerPlayerRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/teams/{teamId}/players", h.ListPlayers)
	mux.HandleFunc("POST /api/teams/{teamId}/players", h.CreatePlayer)
	mux.HandleFunc("GET /api/teams/{teamId}/players/export/json", h.ExportPlayersJSON)
	mux.HandleFunc("GET /api/teams/{teamId}/players/export/csv", h.ExportPlayersCSV)
	mux.HandleFunc("GET /api/teams/{teamId}/players/{id}", h.GetPlayer)
	mux.HandleFunc("PUT /api/teams/{teamId}/players/{id}", h.UpdatePlayer)
	mux.HandleFunc("DELETE /api/teams/{teamId}/players/{id}", h.DeletePlayer)
}

func registerGameRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/games", h.ListGames)
	mux.HandleFunc("POST /api/games", h.CreateGame)
	mux.HandleFunc("GET /api/games/export/json", h.ExportGamesJSON)
	mux.HandleFunc("GET /api/games/export/csv", h.ExportGamesCSV)
	mux.HandleFunc("GET /api/games/{id}", h.GetGame)
	mux.HandleFunc("PUT /api/games/{id}", h.UpdateGame)
	mux.HandleFunc("DELETE /api/games/{id}", h.DeleteGame)
}

func registerLineUpRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/games/{gameId}/lineups", h.ListLineUps)
	mux.HandleFunc("POST /api/games/{gameId}/lineups", h.CreateLineUp)
	mux.HandleFunc("GET /api/games/{gameId}/lineups/export/json", h.ExportLineUpsJSON)
	mux.HandleFunc("GET /api/games/{gameId}/lineups/export/csv", h.ExportLineUpsCSV)
	mux.HandleFunc("GET /api/games/{gameId}/lineups/{id}", h.GetLineUp)
	mux.HandleFunc("PUT /api/games/{gameId}/lineups/{id}", h.UpdateLineUp)
	mux.HandleFunc("DELETE /api/games/{gameId}/lineups/{id}", h.DeleteLineUp)
}

func registerWeatherRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/games/{gameId}/weather", h.GetWeather)
	mux.HandleFunc("POST /api/games/{gameId}/weather", h.CreateWeather)
	mux.HandleFunc("PUT /api/games/{gameId}/weather", h.UpdateWeather)
	mux.HandleFunc("DELETE /api/games/{gameId}/weather", h.DeleteWeather)
	mux.HandleFunc("GET /api/games/{gameId}/weather/export/json", h.ExportWeatherJSON)
	mux.HandleFunc("GET /api/games/{gameId}/weather/export/csv", h.ExportWeatherCSV)
}
