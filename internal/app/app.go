package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchday/internal/config"
	"github.com/riskibarqy/matchday/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

// Server pairs the HTTP server with the storage it owns.
type Server struct {
	HTTP  *http.Server
	repos Repositories
}

// Shutdown drains in-flight requests and then releases storage.
func (s *Server) Shutdown(ctx context.Context) error {
	httpErr := s.HTTP.Shutdown(ctx)
	repoErr := s.repos.Close()
	return errors.Join(httpErr, repoErr)
}

// NewServices builds the five use case services over repos.
func NewServices(repos Repositories, cfg config.Config) httpapi.Services {
	return httpapi.Services{
		Teams:   usecase.NewTeamService(repos.Teams, cfg.Pagination),
		Players: usecase.NewPlayerService(repos.Players, cfg.Pagination),
		Games:   usecase.NewGameService(repos.Games, cfg.Pagination),
		LineUps: usecase.NewLineUpService(repos.LineUps, cfg.Pagination),
		Weather: usecase.NewWeatherService(repos.Weather),
	}
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(NewServices(repos, cfg), logger, clockwork.NewRealClock())
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		repos: repos,
	}, nil
}
