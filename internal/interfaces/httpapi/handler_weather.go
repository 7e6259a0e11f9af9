package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/matchday/internal/dto"
	"github.com/riskibarqy/matchday/internal/usecase"
)

func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeather")
	defer span.End()

	item, err := h.weatherOfGame(ctx, r)
	if err != nil {
		h.fail(ctx, w, "get weather failed", err)
		return
	}

	writeSuccess(w, http.StatusOK, item)
}

func (h *Handler) CreateWeather(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateWeather")
	defer span.End()

	gameID, err := pathID(r, "gameId")
	if err != nil {
		h.fail(ctx, w, "create weather rejected", err)
		return
	}

	var in dto.Weather
	if err := h.decodeAndValidate(ctx, r, &in); err != nil {
		h.fail(ctx, w, "create weather rejected", err, "game_id", gameID)
		return
	}

	created, err := h.weatherService.Create(ctx, gameID, &in)
	if err != nil {
		h.fail(ctx, w, "create weather failed", err, "game_id", gameID)
		return
	}

	writeSuccess(w, http.StatusCreated, created)
}

func (h *Handler) UpdateWeather(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateWeather")
	defer span.End()

	gameID, err := pathID(r, "gameId")
	if err != nil {
		h.fail(ctx, w, "update weather rejected", err)
		return
	}

	var in dto.Weather
	if err := h.decodeAndValidate(ctx, r, &in); err != nil {
		h.fail(ctx, w, "update weather rejected", err, "game_id", gameID)
		return
	}
	if err := matchBodyID(gameID, &in.GameID); err != nil {
		h.fail(ctx, w, "update weather rejected", err, "game_id", gameID)
		return
	}

	if err := h.weatherService.Update(ctx, gameID, &in); err != nil {
		h.fail(ctx, w, "update weather failed", err, "game_id", gameID)
		return
	}

	writeNoContent(w)
}

func (h *Handler) DeleteWeather(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteWeather")
	defer span.End()

	gameID, err := pathID(r, "gameId")
	if err != nil {
		h.fail(ctx, w, "delete weather rejected", err)
		return
	}

	if err := h.weatherService.Delete(ctx, gameID); err != nil {
		h.fail(ctx, w, "delete weather failed", err, "game_id", gameID)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ExportWeatherJSON(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportWeatherJSON")
	defer span.End()

	item, err := h.weatherOfGame(ctx, r)
	if err != nil {
		h.fail(ctx, w, "export weather failed", err)
		return
	}
	if err := h.writeJSONFile(w, "weather", []dto.Weather{item}); err != nil {
		h.fail(ctx, w, "export weather failed", err)
	}
}

func (h *Handler) ExportWeatherCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportWeatherCSV")
	defer span.End()

	item, err := h.weatherOfGame(ctx, r)
	if err != nil {
		h.fail(ctx, w, "export weather failed", err)
		return
	}

	header := []string{"game_id", "temperature", "rain_chance", "wind_speed", "icon", "status"}
	rows := [][]string{{
		formatInt64(item.GameID),
		formatFloat(item.Temperature),
		formatFloat(item.RainChance),
		formatFloat(item.WindSpeed),
		item.Icon,
		item.Status.String(),
	}}
	if err := h.writeCSVFile(w, "weather", header, rows); err != nil {
		h.fail(ctx, w, "export weather failed", err)
	}
}

func (h *Handler) weatherOfGame(ctx context.Context, r *http.Request) (dto.Weather, error) {
	gameID, err := pathID(r, "gameId")
	if err != nil {
		return dto.Weather{}, err
	}

	item, exists, err := h.weatherService.GetByGame(ctx, gameID)
	if err != nil {
		return dto.Weather{}, err
	}
	if !exists {
		return dto.Weather{}, fmt.Errorf("%w: weather for game=%d", usecase.ErrNotFound, gameID)
	}
	return item, nil
}
