package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/football"
	"github.com/riskibarqy/matchday/internal/dto"
	"go.opentelemetry.io/otel/attribute"
)

// WeatherService manages the single forecast attached to a game. Weather is
// addressed by game id and has no listing.
type WeatherService struct {
	weatherRepo football.WeatherRepository
}

func NewWeatherService(weatherRepo football.WeatherRepository) *WeatherService {
	return &WeatherService{weatherRepo: weatherRepo}
}

func (s *WeatherService) GetByGame(ctx context.Context, gameID int64) (dto.Weather, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeatherService.GetByGame", attribute.Int64("game_id", gameID))
	defer span.End()

	item, exists, err := s.weatherRepo.GetByGame(ctx, gameID)
	if err != nil {
		return dto.Weather{}, false, fmt.Errorf("get weather: %w", err)
	}
	if !exists {
		return dto.Weather{}, false, nil
	}

	return dto.WeatherFromEntity(item), true, nil
}

func (s *WeatherService) Create(ctx context.Context, gameID int64, in *dto.Weather) (dto.Weather, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeatherService.Create", attribute.Int64("game_id", gameID))
	defer span.End()

	if in == nil {
		return dto.Weather{}, fmt.Errorf("%w: weather payload is required", ErrInvalidInput)
	}
	if gameID == 0 {
		return dto.Weather{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	entity := dto.WeatherToEntity(*in)
	entity.GameID = gameID
	if err := s.weatherRepo.Add(ctx, &entity); err != nil {
		return dto.Weather{}, fmt.Errorf("add weather: %w", err)
	}

	created, exists, err := s.weatherRepo.GetByGame(ctx, gameID)
	if err != nil {
		return dto.Weather{}, fmt.Errorf("get created weather: %w", err)
	}
	if !exists {
		return dto.Weather{}, fmt.Errorf("%w: weather for game=%d after insert", ErrNotFound, gameID)
	}

	return dto.WeatherFromEntity(created), nil
}

func (s *WeatherService) Update(ctx context.Context, gameID int64, in *dto.Weather) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeatherService.Update", attribute.Int64("game_id", gameID))
	defer span.End()

	if in == nil {
		return fmt.Errorf("%w: weather payload is required", ErrInvalidInput)
	}

	existing, exists, err := s.weatherRepo.GetByGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("get weather: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: weather for game=%d", ErrNotFound, gameID)
	}

	dto.ApplyWeather(&existing, *in)
	if err := s.weatherRepo.Update(ctx, &existing); err != nil {
		return fmt.Errorf("update weather: %w", err)
	}

	return nil
}

func (s *WeatherService) Delete(ctx context.Context, gameID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.WeatherService.Delete", attribute.Int64("game_id", gameID))
	defer span.End()

	existing, exists, err := s.weatherRepo.GetByGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("get weather: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: weather for game=%d", ErrNotFound, gameID)
	}

	if err := s.weatherRepo.Delete(ctx, existing); err != nil {
		return fmt.Errorf("delete weather: %w", err)
	}

	return nil
}
