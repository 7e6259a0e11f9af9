package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/football"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

// GetByID loads the game with both teams, every lineup with its player and
// the weather when present.
func (r *GameRepository) GetByID(ctx context.Context, id int64) (football.Game, bool, error) {
	query, args, err := qb.Select(qb.Columns(gameTableModel{})...).
		From("games").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return football.Game{}, false, fmt.Errorf("build get game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return football.Game{}, false, nil
		}
		return football.Game{}, false, fmt.Errorf("get game: %w", err)
	}

	teams, err := loadTeams(ctx, r.db, []int64{row.HomeTeamID, row.AwayTeamID})
	if err != nil {
		return football.Game{}, false, err
	}
	lineUps, err := r.loadLineUps(ctx, row.ID)
	if err != nil {
		return football.Game{}, false, err
	}
	weather, hasWeather, err := NewWeatherRepository(r.db).GetByGame(ctx, row.ID)
	if err != nil {
		return football.Game{}, false, err
	}

	item := row.entity()
	item.HomeTeam = teamPtr(teams, row.HomeTeamID)
	item.AwayTeam = teamPtr(teams, row.AwayTeamID)
	item.LineUps = lineUps
	if hasWeather {
		item.Weather = &weather
	}
	return item, true, nil
}

func (r *GameRepository) Add(ctx context.Context, item *football.Game) error {
	audit, err := insertReturningAudit(ctx, r.db, "games", gameRowFromEntity(*item))
	if err != nil {
		return err
	}

	item.ID = audit.ID
	item.CreatedAt = audit.CreatedAt
	item.UpdatedAt = audit.UpdatedAt
	return nil
}

func (r *GameRepository) Update(ctx context.Context, item *football.Game) error {
	audit, err := updateReturningAudit(ctx, r.db, "games", item.ID, gameRowFromEntity(*item))
	if err != nil {
		return err
	}

	item.CreatedAt = audit.CreatedAt
	item.UpdatedAt = audit.UpdatedAt
	return nil
}

func (r *GameRepository) Delete(ctx context.Context, item football.Game) error {
	return deleteByID(ctx, r.db, "games", item.ID)
}

func (r *GameRepository) GetPaged(ctx context.Context, page, pageSize int) ([]football.Game, int, error) {
	b := qb.Select(qb.Columns(gameTableModel{})...).From("games").OrderBy("id ASC")

	var rows []gameTableModel
	total, err := selectPage(ctx, r.db, b, page, pageSize, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list games: %w", err)
	}

	teamIDs := make([]int64, 0, len(rows)*2)
	for _, row := range rows {
		teamIDs = append(teamIDs, row.HomeTeamID, row.AwayTeamID)
	}
	teams, err := loadTeams(ctx, r.db, teamIDs)
	if err != nil {
		return nil, 0, err
	}

	out := make([]football.Game, 0, len(rows))
	for _, row := range rows {
		item := row.entity()
		item.HomeTeam = teamPtr(teams, row.HomeTeamID)
		item.AwayTeam = teamPtr(teams, row.AwayTeamID)
		out = append(out, item)
	}
	return out, total, nil
}

func (r *GameRepository) loadLineUps(ctx context.Context, gameID int64) ([]football.LineUp, error) {
	query, args, err := qb.Select(qb.Columns(lineUpTableModel{})...).
		From("lineups").
		Where(qb.Eq("game_id", gameID)).
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select game lineups query: %w", err)
	}

	var rows []lineUpTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select game lineups: %w", err)
	}

	playerIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		playerIDs = append(playerIDs, row.PlayerID)
	}
	players, err := loadPlayers(ctx, r.db, playerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]football.LineUp, 0, len(rows))
	for _, row := range rows {
		item := row.entity()
		item.Player = playerPtr(players, row.PlayerID)
		out = append(out, item)
	}
	return out, nil
}
