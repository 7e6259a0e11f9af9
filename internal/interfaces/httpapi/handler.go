package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

// exportPageSize is the page size used by export routes when the caller does
// not pass one. The services still clamp it to the configured maximum.
const exportPageSize = 100

// firstPage is assumed when the caller omits page. An explicit page below one
// still falls back to the configured defaults.
const firstPage = 1

type Services struct {
	Teams   *usecase.TeamService
	Players *usecase.PlayerService
	Games   *usecase.GameService
	LineUps *usecase.LineUpService
	Weather *usecase.WeatherService
}

type Handler struct {
	teamService    *usecase.TeamService
	playerService  *usecase.PlayerService
	gameService    *usecase.GameService
	lineUpService  *usecase.LineUpService
	weatherService *usecase.WeatherService
	logger         *logging.Logger
	validator      *validator.Validate
	clock          clockwork.Clock
}

func NewHandler(services Services, logger *logging.Logger, clock clockwork.Clock) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Handler{
		teamService:    services.Teams,
		playerService:  services.Players,
		gameService:    services.Games,
		lineUpService:  services.LineUps,
		weatherService: services.Weather,
		logger:         logger,
		validator:      validator.New(),
		clock:          clock,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail logs the failure at a level matching its class and writes the error
// envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(w, err)
}

func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	if err := h.validator.StructCtx(ctx, dst); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// queryInt returns fallback when the parameter is absent.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

func pagingParams(r *http.Request, defaultPageSize int) (int, int, error) {
	page, err := queryInt(r, "page", firstPage)
	if err != nil {
		return 0, 0, err
	}
	pageSize, err := queryInt(r, "pageSize", defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}

// matchBodyID adopts the path id when the body omits it and rejects a
// conflicting one.
func matchBodyID(pathID int64, bodyID *int64) error {
	if *bodyID == 0 {
		*bodyID = pathID
		return nil
	}
	if *bodyID != pathID {
		return fmt.Errorf("%w: id mismatch between path (%d) and payload (%d)", usecase.ErrInvalidInput, pathID, *bodyID)
	}
	return nil
}
