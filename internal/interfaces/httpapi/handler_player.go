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

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	result, err := h.listPlayers(ctx, r, 0)
	if err != nil {
		h.fail(ctx, w, "list players failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	teamID, id, err := playerRoute(r)
	if err != nil {
		h.fail(ctx, w, "get player rejected", err)
		return
	}
	span.SetAttributes(attribute.Int64("team_id", teamID), attribute.Int64("player_id", id))

	item, err := h.playerOfTeam(ctx, teamID, id)
	if err != nil {
		h.fail(ctx, w, "get player failed", err, "team_id", teamID, "player_id", id)
		return
	}

	writeSuccess(w, http.StatusOK, item)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	teamID, err := pathID(r, "teamId")
	if err != nil {
		h.fail(ctx, w, "create player rejected", err)
		return
	}

	var in dto.Player
	if err := h.decodeAndValidate(ctx, r, &in); err != nil {
		h.fail(ctx, w, "create player rejected", err, "team_id", teamID)
		return
	}

	created, err := h.playerService.Create(ctx, teamID, &in)
	if err != nil {
		h.fail(ctx, w, "create player failed", err, "team_id", teamID)
		return
	}

	writeSuccess(w, http.StatusCreated, created)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	teamID, id, err := playerRoute(r)
	if err != nil {
		h.fail(ctx, w, "update player rejected", err)
		return
	}

	var in dto.Player
	if err := h.decodeAndValidate(ctx, r, &in); err != nil {
		h.fail(ctx, w, "update player rejected", err, "player_id", id)
		return
	}
	if err := matchBodyID(id, &in.ID); err != nil {
		h.fail(ctx, w, "update player rejected", err, "player_id", id)
		return
	}
	if _, err := h.playerOfTeam(ctx, teamID, id); err != nil {
		h.fail(ctx, w, "update player failed", err, "team_id", teamID, "player_id", id)
		return
	}

	if err := h.playerService.Update(ctx, &in); err != nil {
		h.fail(ctx, w, "update player failed", err, "team_id", teamID, "player_id", id)
		return
	}

	writeNoContent(w)
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	teamID, id, err := playerRoute(r)
	if err != nil {
		h.fail(ctx, w, "delete player rejected", err)
		return
	}
	if _, err := h.playerOfTeam(ctx, teamID, id); err != nil {
		h.fail(ctx, w, "delete player failed", err, "team_id", teamID, "player_id", id)
		return
	}

	if err := h.playerService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete player failed", err, "team_id", teamID, "player_id", id)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ExportPlayersJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportPlayersJSON")
	defer span.End()

	result, err := h.listPlayers(ctx, r, exportPageSize)
	if err != nil {
		h.fail(ctx, w, "export players failed", err)
		return
	}
	if err := h.writeJSONFile(w, "players", result.Items); err != nil {
		h.fail(ctx, w, "export players failed", err)
	}
}

func (h *Handler) ExportPlayersCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportPlayersCSV")
	defer span.End()

	result, err := h.listPlayers(ctx, r, exportPageSize)
	if err != nil {
		h.fail(ctx, w, "export players failed", err)
		return
	}

	rows := make([][]string, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, []string{
			formatInt64(item.ID),
			formatInt64(item.TeamID),
			fmt.Sprint(item.Number),
			item.FirstName,
			item.LastName,
			item.FullName,
		})
	}
	header := []string{"id", "team_id", "number", "first_name", "last_name", "full_name"}
	if err := h.writeCSVFile(w, "players", header, rows); err != nil {
		h.fail(ctx, w, "export players failed", err)
	}
}

func (h *Handler) listPlayers(ctx context.Context, r *http.Request, defaultPageSize int) (pagination.Page[dto.Player], error) {
	teamID, err := pathID(r, "teamId")
	if err != nil {
		return pagination.Page[dto.Player]{}, err
	}
	page, pageSize, err := pagingParams(r, defaultPageSize)
	if err != nil {
		return pagination.Page[dto.Player]{}, err
	}
	return h.playerService.ListByTeam(ctx, teamID, page, pageSize)
}

// playerOfTeam treats a player registered to another team as absent.
func (h *Handler) playerOfTeam(ctx context.Context, teamID, id int64) (dto.Player, error) {
	item, exists, err := h.playerService.GetByID(ctx, id)
	if err != nil {
		return dto.Player{}, err
	}
	if !exists || item.TeamID != teamID {
		return dto.Player{}, fmt.Errorf("%w: player=%d team=%d", usecase.ErrNotFound, id, teamID)
	}
	return item, nil
}

func playerRoute(r *http.Request) (int64, int64, error) {
	teamID, err := pathID(r, "teamId")
	if err != nil {
		return 0, 0, err
	}
	id, err := pathID(r, "id")
	if err != nil {
		return 0, 0, err
	}
	return teamID, id, nil
}
