package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/football"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type LineUpRepository struct {
	db *sqlx.DB
}

func NewLineUpRepository(db *sqlx.DB) *LineUpRepository {
	return &LineUpRepository{db: db}
}

func (r *LineUpRepository) GetByID(ctx context.Context, id int64) (football.LineUp, bool, error) {
	query, args, err := qb.Select(qb.Columns(lineUpTableModel{})...).
		From("lineups").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return football.LineUp{}, false, fmt.Errorf("build get lineup query: %w", err)
	}

	var row lineUpTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return football.LineUp{}, false, nil
		}
		return football.LineUp{}, false, fmt.Errorf("get lineup: %w", err)
	}

	gameQuery, gameArgs, err := qb.Select(qb.Columns(gameTableModel{})...).
		From("games").
		Where(qb.Eq("id", row.GameID)).
		ToSQL()
	if err != nil {
		return football.LineUp{}, false, fmt.Errorf("build get lineup game query: %w", err)
	}
	var game gameTableModel
	hasGame := true
	if err := r.db.GetContext(ctx, &game, gameQuery, gameArgs...); err != nil {
		if !isNotFound(err) {
			return football.LineUp{}, false, fmt.Errorf("get lineup game: %w", err)
		}
		hasGame = false
	}

	teams, err := loadTeams(ctx, r.db, []int64{row.TeamID})
	if err != nil {
		return football.LineUp{}, false, err
	}
	players, err := loadPlayers(ctx, r.db, []int64{row.PlayerID})
	if err != nil {
		return football.LineUp{}, false, err
	}

	item := row.entity()
	if hasGame {
		g := game.entity()
		item.Game = &g
	}
	item.Team = teamPtr(teams, row.TeamID)
	item.Player = playerPtr(players, row.PlayerID)
	return item, true, nil
}

func (r *LineUpRepository) Add(ctx context.Context, item *football.LineUp) error {
	audit, err := insertReturningAudit(ctx, r.db, "lineups", lineUpRowFromEntity(*item))
	if err != nil {
		return err
	}

	item.ID = audit.ID
	item.CreatedAt = audit.CreatedAt
	item.UpdatedAt = audit.UpdatedAt
	return nil
}

func (r *LineUpRepository) Update(ctx context.Context, item *football.LineUp) error {
	audit, err := updateReturningAudit(ctx, r.db, "lineups", item.ID, lineUpRowFromEntity(*item))
	if err != nil {
		return err
	}

	item.CreatedAt = audit.CreatedAt
	item.UpdatedAt = audit.UpdatedAt
	return nil
}

func (r *LineUpRepository) Delete(ctx context.Context, item football.LineUp) error {
	return deleteByID(ctx, r.db, "lineups", item.ID)
}

func (r *LineUpRepository) GetPagedByGame(ctx context.Context, gameID int64, page, pageSize int) ([]football.LineUp, int, error) {
	b := qb.Select(qb.Columns(lineUpTableModel{})...).
		From("lineups").
		Where(qb.Eq("game_id", gameID)).
		OrderBy("id ASC")

	var rows []lineUpTableModel
	total, err := selectPage(ctx, r.db, b, page, pageSize, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list lineups by game: %w", err)
	}

	teamIDs := make([]int64, 0, len(rows))
	playerIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		teamIDs = append(teamIDs, row.TeamID)
		playerIDs = append(playerIDs, row.PlayerID)
	}
	teams, err := loadTeams(ctx, r.db, teamIDs)
	if err != nil {
		return nil, 0, err
	}
	players, err := loadPlayers(ctx, r.db, playerIDs)
	if err != nil {
		return nil, 0, err
	}

	out := make([]football.LineUp, 0, len(rows))
	for _, row := range rows {
		item := row.entity()
		item.Team = teamPtr(teams, row.TeamID)
		item.Player = playerPtr(players, row.PlayerID)
		out = append(out, item)
	}
	return out, total, nil
}
