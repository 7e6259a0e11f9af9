package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/football"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (football.Player, bool, error) {
	query, args, err := qb.Select(qb.Columns(playerTableModel{})...).
		From("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return football.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return football.Player{}, false, nil
		}
		return football.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	teams, err := loadTeams(ctx, r.db, []int64{row.TeamID})
	if err != nil {
		return football.Player{}, false, err
	}

	item := row.entity()
	item.Team = teamPtr(teams, row.TeamID)
	return item, true, nil
}

func (r *PlayerRepository) Add(ctx context.Context, item *football.Player) error {
	audit, err := insertReturningAudit(ctx, r.db, "players", playerRowFromEntity(*item))
	if err != nil {
		return err
	}

	item.ID = audit.ID
	item.CreatedAt = audit.CreatedAt
	item.UpdatedAt = audit.UpdatedAt
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item *football.Player) error {
	audit, err := updateReturningAudit(ctx, r.db, "players", item.ID, playerRowFromEntity(*item))
	if err != nil {
		return err
	}

	item.CreatedAt = audit.CreatedAt
	item.UpdatedAt = audit.UpdatedAt
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, item football.Player) error {
	return deleteByID(ctx, r.db, "players", item.ID)
}

func (r *PlayerRepository) GetPagedByTeam(ctx context.Context, teamID int64, page, pageSize int) ([]football.Player, int, error) {
	b := qb.Select(qb.Columns(playerTableModel{})...).
		From("players").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("id ASC")

	var rows []playerTableModel
	total, err := selectPage(ctx, r.db, b, page, pageSize, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list players by team: %w", err)
	}

	out := make([]football.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entity())
	}
	return out, total, nil
}
