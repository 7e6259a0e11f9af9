package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/football"
	"github.com/riskibarqy/matchday/internal/dto"
	"github.com/riskibarqy/matchday/internal/platform/pagination"
	"go.opentelemetry.io/otel/attribute"
)

// TeamListFilter narrows List by case-insensitive substrings.
type TeamListFilter struct {
	Name  string
	Coach string
}

type TeamService struct {
	teamRepo football.TeamRepository
	paging   pagination.Options
}

func NewTeamService(teamRepo football.TeamRepository, paging pagination.Options) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		paging:   paging,
	}
}

func (s *TeamService) GetByID(ctx context.Context, id int64) (dto.Team, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID", attribute.Int64("team_id", id))
	defer span.End()

	item, exists, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return dto.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return dto.Team{}, false, nil
	}

	return dto.TeamFromEntity(item), true, nil
}

func (s *TeamService) Create(ctx context.Context, in *dto.Team) (dto.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	if in == nil {
		return dto.Team{}, fmt.Errorf("%w: team payload is required", ErrInvalidInput)
	}

	entity := dto.TeamToEntity(*in)
	if err := entity.Validate(); err != nil {
		return dto.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.Add(ctx, &entity); err != nil {
		return dto.Team{}, fmt.Errorf("add team: %w", err)
	}

	// Re-read so the result carries the stored graph, not just the input.
	created, exists, err := s.teamRepo.GetByID(ctx, entity.ID)
	if err != nil {
		return dto.Team{}, fmt.Errorf("get created team: %w", err)
	}
	if !exists {
		return dto.Team{}, fmt.Errorf("%w: team=%d after insert", ErrNotFound, entity.ID)
	}

	return dto.TeamFromEntity(created), nil
}

func (s *TeamService) Update(ctx context.Context, in *dto.Team) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	if in == nil {
		return fmt.Errorf("%w: team payload is required", ErrInvalidInput)
	}

	existing, exists, err := s.teamRepo.GetByID(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%d", ErrNotFound, in.ID)
	}

	dto.ApplyTeam(&existing, *in)
	if err := existing.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.Update(ctx, &existing); err != nil {
		return fmt.Errorf("update team: %w", err)
	}

	return nil
}

func (s *TeamService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete", attribute.Int64("team_id", id))
	defer span.End()

	existing, exists, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%d", ErrNotFound, id)
	}

	if err := s.teamRepo.Delete(ctx, existing); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}

func (s *TeamService) List(ctx context.Context, page, pageSize int, filter TeamListFilter) (pagination.Page[dto.Team], error) {
	page, pageSize = pagination.Normalize(page, pageSize, s.paging)

	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List", pagingAttributes(page, pageSize)...)
	defer span.End()

	items, total, err := s.teamRepo.GetPaged(ctx, page, pageSize, football.TeamFilter{
		Name:  filter.Name,
		Coach: filter.Coach,
	})
	if err != nil {
		return pagination.Page[dto.Team]{}, fmt.Errorf("list teams: %w", err)
	}

	return pagination.NewPage(dto.TeamsFromEntities(items), total, page, pageSize), nil
}
