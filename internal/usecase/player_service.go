package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/football"
	"github.com/riskibarqy/matchday/internal/dto"
	"github.com/riskibarqy/matchday/internal/platform/pagination"
	"go.opentelemetry.io/otel/attribute"
)

type PlayerService struct {
	playerRepo football.PlayerRepository
	paging     pagination.Options
}

func NewPlayerService(playerRepo football.PlayerRepository, paging pagination.Options) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		paging:     paging,
	}
}

func (s *PlayerService) GetByID(ctx context.Context, id int64) (dto.Player, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID", attribute.Int64("player_id", id))
	defer span.End()

	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return dto.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return dto.Player{}, false, nil
	}

	return dto.PlayerFromEntity(item), true, nil
}

// Create adds a player to teamID. The team id in the payload is ignored.
func (s *PlayerService) Create(ctx context.Context, teamID int64, in *dto.Player) (dto.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create", attribute.Int64("team_id", teamID))
	defer span.End()

	if in == nil {
		return dto.Player{}, fmt.Errorf("%w: player payload is required", ErrInvalidInput)
	}

	entity := dto.PlayerToEntity(*in)
	entity.TeamID = teamID
	if err := entity.Validate(); err != nil {
		return dto.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Add(ctx, &entity); err != nil {
		return dto.Player{}, fmt.Errorf("add player: %w", err)
	}

	created, exists, err := s.playerRepo.GetByID(ctx, entity.ID)
	if err != nil {
		return dto.Player{}, fmt.Errorf("get created player: %w", err)
	}
	if !exists {
		return dto.Player{}, fmt.Errorf("%w: player=%d after insert", ErrNotFound, entity.ID)
	}

	return dto.PlayerFromEntity(created), nil
}

func (s *PlayerService) Update(ctx context.Context, in *dto.Player) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	if in == nil {
		return fmt.Errorf("%w: player payload is required", ErrInvalidInput)
	}

	existing, exists, err := s.playerRepo.GetByID(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%d", ErrNotFound, in.ID)
	}

	dto.ApplyPlayer(&existing, *in)
	if err := existing.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Update(ctx, &existing); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete", attribute.Int64("player_id", id))
	defer span.End()

	existing, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	if err := s.playerRepo.Delete(ctx, existing); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID int64, page, pageSize int) (pagination.Page[dto.Player], error) {
	page, pageSize = pagination.Normalize(page, pageSize, s.paging)

	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam",
		append(pagingAttributes(page, pageSize), attribute.Int64("team_id", teamID))...)
	defer span.End()

	items, total, err := s.playerRepo.GetPagedByTeam(ctx, teamID, page, pageSize)
	if err != nil {
		return pagination.Page[dto.Player]{}, fmt.Errorf("list players by team: %w", err)
	}

	return pagination.NewPage(dto.PlayersFromEntities(items), total, page, pageSize), nil
}
