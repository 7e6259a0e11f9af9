package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/football"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (football.Team, bool, error) {
	query, args, err := qb.Select(qb.Columns(teamTableModel{})...).
		From("teams").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return football.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return football.Team{}, false, nil
		}
		return football.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	rosters, err := loadRosters(ctx, r.db, []int64{row.ID})
	if err != nil {
		return football.Team{}, false, err
	}

	item := row.entity()
	item.Players = rosters[row.ID]
	return item, true, nil
}

func (r *TeamRepository) Add(ctx context.Context, item *football.Team) error {
	audit, err := insertReturningAudit(ctx, r.db, "teams", teamRowFromEntity(*item))
	if err != nil {
		return err
	}

	item.ID = audit.ID
	item.CreatedAt = audit.CreatedAt
	item.UpdatedAt = audit.UpdatedAt
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item *football.Team) error {
	audit, err := updateReturningAudit(ctx, r.db, "teams", item.ID, teamRowFromEntity(*item))
	if err != nil {
		return err
	}

	item.CreatedAt = audit.CreatedAt
	item.UpdatedAt = audit.UpdatedAt
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, item football.Team) error {
	return deleteByID(ctx, r.db, "teams", item.ID)
}

func (r *TeamRepository) GetPaged(ctx context.Context, page, pageSize int, filter football.TeamFilter) ([]football.Team, int, error) {
	filter = filter.Normalized()

	b := qb.Select(qb.Columns(teamTableModel{})...).From("teams").OrderBy("id ASC")
	if filter.Name != "" {
		b.Where(qb.ContainsFold("name", filter.Name))
	}
	if filter.Coach != "" {
		b.Where(qb.ContainsFold("coach", filter.Coach))
	}

	var rows []teamTableModel
	total, err := selectPage(ctx, r.db, b, page, pageSize, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list teams: %w", err)
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	rosters, err := loadRosters(ctx, r.db, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]football.Team, 0, len(rows))
	for _, row := range rows {
		item := row.entity()
		item.Players = rosters[row.ID]
		out = append(out, item)
	}
	return out, total, nil
}
