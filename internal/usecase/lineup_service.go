package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/football"
	"github.com/riskibarqy/matchday/internal/dto"
	"github.com/riskibarqy/matchday/internal/platform/pagination"
	"go.opentelemetry.io/otel/attribute"
)

type LineUpService struct {
	lineUpRepo football.LineUpRepository
	paging     pagination.Options
}

func NewLineUpService(lineUpRepo football.LineUpRepository, paging pagination.Options) *LineUpService {
	return &LineUpService{
		lineUpRepo: lineUpRepo,
		paging:     paging,
	}
}

func (s *LineUpService) GetByID(ctx context.Context, id int64) (dto.LineUp, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineUpService.GetByID", attribute.Int64("lineup_id", id))
	defer span.End()

	item, exists, err := s.lineUpRepo.GetByID(ctx, id)
	if err != nil {
		return dto.LineUp{}, false, fmt.Errorf("get lineup: %w", err)
	}
	if !exists {
		return dto.LineUp{}, false, nil
	}

	return dto.LineUpFromEntity(item), true, nil
}

// Create places a player into gameID. Game, team and player ids must all be set
// after mapping; the team id comes from the payload and the player id from the
// nested player.
func (s *LineUpService) Create(ctx context.Context, gameID int64, in *dto.LineUp) (dto.LineUp, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineUpService.Create", attribute.Int64("game_id", gameID))
	defer span.End()

	if in == nil {
		return dto.LineUp{}, fmt.Errorf("%w: lineup payload is required", ErrInvalidInput)
	}

	entity := dto.LineUpToEntity(*in)
	entity.GameID = gameID
	if err := entity.Validate(); err != nil {
		return dto.LineUp{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.lineUpRepo.Add(ctx, &entity); err != nil {
		return dto.LineUp{}, fmt.Errorf("add lineup: %w", err)
	}

	created, exists, err := s.lineUpRepo.GetByID(ctx, entity.ID)
	if err != nil {
		return dto.LineUp{}, fmt.Errorf("get created lineup: %w", err)
	}
	if !exists {
		return dto.LineUp{}, fmt.Errorf("%w: lineup=%d after insert", ErrNotFound, entity.ID)
	}

	return dto.LineUpFromEntity(created), nil
}

func (s *LineUpService) Update(ctx context.Context, in *dto.LineUp) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineUpService.Update")
	defer span.End()

	if in == nil {
		return fmt.Errorf("%w: lineup payload is required", ErrInvalidInput)
	}

	existing, exists, err := s.lineUpRepo.GetByID(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get lineup: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: lineup=%d", ErrNotFound, in.ID)
	}

	dto.ApplyLineUp(&existing, *in)
	if err := existing.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.lineUpRepo.Update(ctx, &existing); err != nil {
		return fmt.Errorf("update lineup: %w", err)
	}

	return nil
}

func (s *LineUpService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineUpService.Delete", attribute.Int64("lineup_id", id))
	defer span.End()

	existing, exists, err := s.lineUpRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get lineup: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: lineup=%d", ErrNotFound, id)
	}

	if err := s.lineUpRepo.Delete(ctx, existing); err != nil {
		return fmt.Errorf("delete lineup: %w", err)
	}

	return nil
}

func (s *LineUpService) ListByGame(ctx context.Context, gameID int64, page, pageSize int) (pagination.Page[dto.LineUp], error) {
	page, pageSize = pagination.Normalize(page, pageSize, s.paging)

	ctx, span := startUsecaseSpan(ctx, "usecase.LineUpService.ListByGame",
		append(pagingAttributes(page, pageSize), attribute.Int64("game_id", gameID))...)
	defer span.End()

	items, total, err := s.lineUpRepo.GetPagedByGame(ctx, gameID, page, pageSize)
	if err != nil {
		return pagination.Page[dto.LineUp]{}, fmt.Errorf("list lineups by game: %w", err)
	}

	return pagination.NewPage(dto.LineUpsFromEntities(items), total, page, pageSize), nil
}
