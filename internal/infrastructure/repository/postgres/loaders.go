package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/football"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

// Navigations are loaded with one IN query per related table instead of
// joins, so every row model maps to exactly one table.

func loadTeams(ctx context.Context, db *sqlx.DB, ids []int64) (map[int64]football.Team, error) {
	out := make(map[int64]football.Team, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := qb.Select(qb.Columns(teamTableModel{})...).
		From("teams").
		Where(qb.InInt64("id", uniqueIDs(ids...))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by ids query: %w", err)
	}

	var rows []teamTableModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by ids: %w", err)
	}
	for _, row := range rows {
		out[row.ID] = row.entity()
	}
	return out, nil
}

func loadPlayers(ctx context.Context, db *sqlx.DB, ids []int64) (map[int64]football.Player, error) {
	out := make(map[int64]football.Player, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := qb.Select(qb.Columns(playerTableModel{})...).
		From("players").
		Where(qb.InInt64("id", uniqueIDs(ids...))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}
	for _, row := range rows {
		out[row.ID] = row.entity()
	}
	return out, nil
}

// loadRosters returns the players of every team in teamIDs ordered by id.
// Teams without players map to an empty slice.
func loadRosters(ctx context.Context, db *sqlx.DB, teamIDs []int64) (map[int64][]football.Player, error) {
	out := make(map[int64][]football.Player, len(teamIDs))
	for _, id := range teamIDs {
		out[id] = []football.Player{}
	}
	if len(teamIDs) == 0 {
		return out, nil
	}

	query, args, err := qb.Select(qb.Columns(playerTableModel{})...).
		From("players").
		Where(qb.InInt64("team_id", uniqueIDs(teamIDs...))).
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rosters query: %w", err)
	}

	var rows []playerTableModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rosters: %w", err)
	}
	for _, row := range rows {
		out[row.TeamID] = append(out[row.TeamID], row.entity())
	}
	return out, nil
}

func teamPtr(teams map[int64]football.Team, id int64) *football.Team {
	item, ok := teams[id]
	if !ok {
		return nil
	}
	return &item
}

func playerPtr(players map[int64]football.Player, id int64) *football.Player {
	item, ok := players[id]
	if !ok {
		return nil
	}
	return &item
}
