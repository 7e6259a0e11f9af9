package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/matchday/internal/dto"
	"github.com/riskibarqy/matchday/internal/platform/pagination"
	"github.com/riskibarqy/matchday/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	result, err := h.listGames(ctx, r, 0)
	if err != nil {
		h.fail(ctx, w, "list games failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, "get game rejected", err)
		return
	}
	span.SetAttributes(attribute.Int64("game_id", id))

	item, exists, err := h.gameService.GetByID(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get game failed", err, "game_id", id)
		return
	}
	if !exists {
		writeError(w, fmt.Errorf("%w: game=%d", usecase.ErrNotFound, id))
		return
	}

	writeSuccess(w, http.StatusOK, item)
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	var in dto.Game
	if err := h.decodeAndValidate(ctx, r, &in); err != nil {
		h.fail(ctx, w, "create game rejected", err)
		return
	}

	created, err := h.gameService.Create(ctx, &in)
	if err != nil {
		h.fail(ctx, w, "create game failed", err,
			"home_team_id", in.HomeTeam.ID,
			"away_team_id", in.AwayTeam.ID,
		)
		return
	}

	writeSuccess(w, http.StatusCreated, created)
}

func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGame")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, "update game rejected", err)
		return
	}

	var in dto.Game
	if err := h.decodeAndValidate(ctx, r, &in); err != nil {
		h.fail(ctx, w, "update game rejected", err, "game_id", id)
		return
	}
	if err := matchBodyID(id, &in.ID); err != nil {
		h.fail(ctx, w, "update game rejected", err, "game_id", id)
		return
	}

	if err := h.gameService.Update(ctx, &in); err != nil {
		h.fail(ctx, w, "update game failed", err, "game_id", id)
		return
	}

	writeNoContent(w)
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGame")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, "delete game rejected", err)
		return
	}

	if err := h.gameService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete game failed", err, "game_id", id)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ExportGamesJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportGamesJSON")
	defer span.End()

	result, err := h.listGames(ctx, r, exportPageSize)
	if err != nil {
		h.fail(ctx, w, "export games failed", err)
		return
	}
	if err := h.writeJSONFile(w, "games", result.Items); err != nil {
		h.fail(ctx, w, "export games failed", err)
	}
}

func (h *Handler) ExportGamesCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportGamesCSV")
	defer span.End()

	result, err := h.listGames(ctx, r, exportPageSize)
	if err != nil {
		h.fail(ctx, w, "export games failed", err)
		return
	}

	rows := make([][]string, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, []string{
			formatInt64(item.ID),
			item.Date.UTC().Format(time.RFC3339),
			item.Location,
			formatInt64(item.HomeTeam.ID),
			item.HomeTeam.Name,
			formatInt64(item.AwayTeam.ID),
			item.AwayTeam.Name,
		})
	}
	header := []string{"id", "date", "location", "home_team_id", "home_team", "away_team_id", "away_team"}
	if err := h.writeCSVFile(w, "games", header, rows); err != nil {
		h.fail(ctx, w, "export games failed", err)
	}
}

func (h *Handler) listGames(ctx context.Context, r *http.Request, defaultPageSize int) (pagination.Page[dto.Game], error) {
	page, pageSize, err := pagingParams(r, defaultPageSize)
	if err != nil {
		return pagination.Page[dto.Game]{}, err
	}
	return h.gameService.List(ctx, page, pageSize)
}
