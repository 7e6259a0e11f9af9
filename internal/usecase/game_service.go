package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/football"
	"github.com/riskibarqy/matchday/internal/dto"
	"github.com/riskibarqy/matchday/internal/platform/pagination"
	"go.opentelemetry.io/otel/attribute"
)

type GameService struct {
	gameRepo football.GameRepository
	paging   pagination.Options
}

func NewGameService(gameRepo football.GameRepository, paging pagination.Options) *GameService {
	return &GameService{
		gameRepo: gameRepo,
		paging:   paging,
	}
}

func (s *GameService) GetByID(ctx context.Context, id int64) (dto.Game, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetByID", attribute.Int64("game_id", id))
	defer span.End()

	item, exists, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return dto.Game{}, false, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return dto.Game{}, false, nil
	}

	return dto.GameFromEntity(item), true, nil
}

// Create stores the game and returns it re-read with teams, lineups and weather.
// Only the ids of the nested home and away teams are used.
func (s *GameService) Create(ctx context.Context, in *dto.Game) (dto.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Create")
	defer span.End()

	if in == nil {
		return dto.Game{}, fmt.Errorf("%w: game payload is required", ErrInvalidInput)
	}

	entity := dto.GameToEntity(*in)
	if err := s.gameRepo.Add(ctx, &entity); err != nil {
		return dto.Game{}, fmt.Errorf("add game: %w", err)
	}

	created, exists, err := s.gameRepo.GetByID(ctx, entity.ID)
	if err != nil {
		return dto.Game{}, fmt.Errorf("get created game: %w", err)
	}
	if !exists {
		return dto.Game{}, fmt.Errorf("%w: game=%d after insert", ErrNotFound, entity.ID)
	}

	return dto.GameFromEntity(created), nil
}

func (s *GameService) Update(ctx context.Context, in *dto.Game) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Update")
	defer span.End()

	if in == nil {
		return fmt.Errorf("%w: game payload is required", ErrInvalidInput)
	}

	existing, exists, err := s.gameRepo.GetByID(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: game=%d", ErrNotFound, in.ID)
	}

	dto.ApplyGame(&existing, *in)
	if err := s.gameRepo.Update(ctx, &existing); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}

func (s *GameService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Delete", attribute.Int64("game_id", id))
	defer span.End()

	existing, exists, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: game=%d", ErrNotFound, id)
	}

	if err := s.gameRepo.Delete(ctx, existing); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}

	return nil
}

func (s *GameService) List(ctx context.Context, page, pageSize int) (pagination.Page[dto.Game], error) {
	page, pageSize = pagination.Normalize(page, pageSize, s.paging)

	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.List", pagingAttributes(page, pageSize)...)
	defer span.End()

	items, total, err := s.gameRepo.GetPaged(ctx, page, pageSize)
	if err != nil {
		return pagination.Page[dto.Game]{}, fmt.Errorf("list games: %w", err)
	}

	return pagination.NewPage(dto.GamesFromEntities(items), total, page, pageSize), nil
}
