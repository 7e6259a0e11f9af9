package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchday/internal/dto"
	"github.com/riskibarqy/matchday/internal/platform/pagination"
	"github.com/riskibarqy/matchday/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	page, pageSize, err := pagingParams(r, 0)
	if err != nil {
		h.fail(ctx, w, "list teams rejected", err)
		return
	}

	result, err := h.teamService.List(ctx, page, pageSize, teamFilterFromQuery(r))
	if err != nil {
		h.fail(ctx, w, "list teams failed", err, "page", page, "page_size", pageSize)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, "get team rejected", err)
		return
	}
	span.SetAttributes(attribute.Int64("team_id", id))

	item, exists, err := h.teamService.GetByID(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "team_id", id)
		return
	}
	if !exists {
		writeError(w, fmt.Errorf("%w: team=%d", usecase.ErrNotFound, id))
		return
	}

	writeSuccess(w, http.StatusOK, item)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var in dto.Team
	if err := h.decodeAndValidate(ctx, r, &in); err != nil {
		h.fail(ctx, w, "create team rejected", err)
		return
	}

	created, err := h.teamService.Create(ctx, &in)
	if err != nil {
		h.fail(ctx, w, "create team failed", err, "tricode", in.Tricode)
		return
	}

	writeSuccess(w, http.StatusCreated, created)
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, "update team rejected", err)
		return
	}

	var in dto.Team
	if err := h.decodeAndValidate(ctx, r, &in); err != nil {
		h.fail(ctx, w, "update team rejected", err, "team_id", id)
		return
	}
	if err := matchBodyID(id, &in.ID); err != nil {
		h.fail(ctx, w, "update team rejected", err, "team_id", id)
		return
	}

	if err := h.teamService.Update(ctx, &in); err != nil {
		h.fail(ctx, w, "update team failed", err, "team_id", id)
		return
	}

	writeNoContent(w)
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		h.fail(ctx, w, "delete team rejected", err)
		return
	}

	if err := h.teamService.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete team failed", err, "team_id", id)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ExportTeamsJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportTeamsJSON")
	defer span.End()

	result, err := h.exportTeams(ctx, r)
	if err != nil {
		h.fail(ctx, w, "export teams failed", err)
		return
	}
	if err := h.writeJSONFile(w, "teams", result.Items); err != nil {
		h.fail(ctx, w, "export teams failed", err)
	}
}

func (h *Handler) ExportTeamsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportTeamsCSV")
	defer span.End()

	result, err := h.exportTeams(ctx, r)
	if err != nil {
		h.fail(ctx, w, "export teams failed", err)
		return
	}

	rows := make([][]string, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, []string{
			formatInt64(item.ID),
			item.Tricode,
			item.Name,
			item.Coach,
			strconv.Itoa(len(item.Players)),
		})
	}
	header := []string{"id", "tricode", "name", "coach", "players"}
	if err := h.writeCSVFile(w, "teams", header, rows); err != nil {
		h.fail(ctx, w, "export teams failed", err)
	}
}

func (h *Handler) exportTeams(ctx context.Context, r *http.Request) (pagination.Page[dto.Team], error) {
	page, pageSize, err := pagingParams(r, exportPageSize)
	if err != nil {
		return pagination.Page[dto.Team]{}, err
	}
	return h.teamService.List(ctx, page, pageSize, teamFilterFromQuery(r))
}

func teamFilterFromQuery(r *http.Request) usecase.TeamListFilter {
	query := r.URL.Query()
	return usecase.TeamListFilter{
		Name:  strings.TrimSpace(query.Get("name")),
		Coach: strings.TrimSpace(query.Get("coach")),
	}
}
