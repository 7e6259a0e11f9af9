package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/matchday/internal/dto"
	"github.com/riskibarqy/matchday/internal/platform/pagination"
	"github.com/riskibarqy/matchday/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListLineUps(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLineUps")
	defer span.End()

	result, err := h.listLineUps(ctx, r, 0)
	if err != nil {
		h.fail(ctx, w, "list lineups failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}

func (h *Handler) GetLineUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineUp")
	defer span.End()

	gameID, id, err := lineUpRoute(r)
	if err != nil {
		h.fail(ctx, w, "get lineup rejected", err)
		return
	}
	span.SetAttributes(attribute.Int64("game_id", gameID), attribute.Int64("lineup_id", id))

	item, err := h.lineUpOfGame(ctx, gameID, id)
	if err != nil {
		h.fail(ctx, w, "get lineup failed", err, "game_id", gameID, "lineup_id", id)
		return
	}

	writeSuccess(w, http.StatusOK, item)
}

func (h *Handler) CreateLineUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLineUp")
	defer span.End()

	gameID, err := pathID(r, "gameId")
	if err != nil {
		h.fail(ctx, w, "create lineup rejected", err)
		return
	}

	var in dto.LineUp
	if err := h.decodeAndValidate(ctx, r, &in); err != nil {
		h.fail(ctx, w, "create lineup rejected", err, "game_id", gameID)
		return
	}

	created, err := h.lineUpService.Create(ctx, gameID, &in)
	if err != nil {
		h.fail(ctx, w, "create lineup failed", err,
			"game_id", gameID,
			"team_id", in.TeamID,
			"player_id", in.Player.ID,
		)
		return
	}

	writeSuccess(w, http.StatusCreated, created)
}

func (h *Handler) UpdateLineUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLineUp")
	defer span.End()

	gameID, id, err := lineUpRoute(r)
	if err != nil {
		h.fail(ctx, w, "update lineup rejected", err)
		return
	}

	var in dto.LineUp
	if err := h.decodeAndValidate(ctx, r, &in); err != nil {
		h.fail(ctx, w, "update lineup rejected", err, "lineup_id", id)
		return
	}
	if err := matchBodyID(id, &in.ID); err != nil {
		h.fail(ctx, w, "update lineup rejected", err, "lineup_id", id)
		return
	}
	if _, err := h.lineUpOfGame(ctx, gameID, id); err != nil {
		h.fail(ctx, w, "update lineup failed", err, "game_id", gameID, "lineup_id", id)
		return
	}

	if err := h.lineUpService.Update(ctx, &in); err != nil {
		h.fail(ctx, w, "update lineup failed", err, "game_id", gameID, "lineup_id", id)
		return
	}

	writeNoContent(w)
}

func (h *Handler) DeleteLineUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLineUp")
	defer span.End()

	gameID, id, err := lineUpRoute(r)
	if err != nil {
		h.fail(ctx, w, "delete lineup rejected", err)
		return
	}
	if _, err := h.lineUpOfGame(ctx, gameID, id); err != nil {
		h.fail(ctx, w, "delete lineup failed", err, "game_id", gameID, "lineup_id", id)
		return
	}

	if err := h.lineUpService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete lineup failed", err, "game_id", gameID, "lineup_id", id)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ExportLineUpsJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportLineUpsJSON")
	defer span.End()

	result, err := h.listLineUps(ctx, r, exportPageSize)
	if err != nil {
		h.fail(ctx, w, "export lineups failed", err)
		return
	}
	if err := h.writeJSONFile(w, "lineups", result.Items); err != nil {
		h.fail(ctx, w, "export lineups failed", err)
	}
}

func (h *Handler) ExportLineUpsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportLineUpsCSV")
	defer span.End()

	result, err := h.listLineUps(ctx, r, exportPageSize)
	if err != nil {
		h.fail(ctx, w, "export lineups failed", err)
		return
	}

	rows := make([][]string, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, []string{
			formatInt64(item.ID),
			formatInt64(item.GameID),
			formatInt64(item.TeamID),
			formatInt64(item.Player.ID),
			item.Player.FullName,
			item.Position,
			item.Spot,
			item.Status.String(),
		})
	}
	header := []string{"id", "game_id", "team_id", "player_id", "player_name", "position", "spot", "status"}
	if err := h.writeCSVFile(w, "lineups", header, rows); err != nil {
		h.fail(ctx, w, "export lineups failed", err)
	}
}

func (h *Handler) listLineUps(ctx context.Context, r *http.Request, defaultPageSize int) (pagination.Page[dto.LineUp], error) {
	gameID, err := pathID(r, "gameId")
	if err != nil {
		return pagination.Page[dto.LineUp]{}, err
	}
	page, pageSize, err := pagingParams(r, defaultPageSize)
	if err != nil {
		return pagination.Page[dto.LineUp]{}, err
	}
	return h.lineUpService.ListByGame(ctx, gameID, page, pageSize)
}

func (h *Handler) lineUpOfGame(ctx context.Context, gameID, id int64) (dto.LineUp, error) {
	item, exists, err := h.lineUpService.GetByID(ctx, id)
	if err != nil {
		return dto.LineUp{}, err
	}
	if !exists || item.GameID != gameID {
		return dto.LineUp{}, fmt.Errorf("%w: lineup=%d game=%d", usecase.ErrNotFound, id, gameID)
	}
	return item, nil
}

func lineUpRoute(r *http.Request) (int64, int64, error) {
	gameID, err := pathID(r, "gameId")
	if err != nil {
		return 0, 0, err
	}
	id, err := pathID(r, "id")
	if err != nil {
		return 0, 0, err
	}
	return gameID, id, nil
}
