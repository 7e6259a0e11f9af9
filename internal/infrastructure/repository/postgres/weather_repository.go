package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/football"
	qb "github.com/riskibarqy/matchday/internal/platform/querybuilder"
)

type WeatherRepository struct {
	db *sqlx.DB
}

func NewWeatherRepository(db *sqlx.DB) *WeatherRepository {
	return &WeatherRepository{db: db}
}

func (r *WeatherRepository) GetByGame(ctx context.Context, gameID int64) (football.Weather, bool, error) {
	query, args, err := qb.Select(qb.Columns(weatherTableModel{})...).
		From("weathers").
		Where(qb.Eq("game_id", gameID)).
		ToSQL()
	if err != nil {
		return football.Weather{}, false, fmt.Errorf("build get weather query: %w", err)
	}

	var row weatherTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return football.Weather{}, false, nil
		}
		return football.Weather{}, false, fmt.Errorf("get weather: %w", err)
	}

	return row.entity(), true, nil
}

// Add relies on the unique index on game_id; a second forecast for the same
// game fails with football.ErrUniqueViolation.
func (r *WeatherRepository) Add(ctx context.Context, item *football.Weather) error {
	audit, err := insertReturningAudit(ctx, r.db, "weathers", weatherRowFromEntity(*item))
	if err != nil {
		return err
	}

	item.ID = audit.ID
	item.CreatedAt = audit.CreatedAt
	item.UpdatedAt = audit.UpdatedAt
	return nil
}

func (r *WeatherRepository) Update(ctx context.Context, item *football.Weather) error {
	audit, err := updateReturningAudit(ctx, r.db, "weathers", item.ID, weatherRowFromEntity(*item))
	if err != nil {
		return err
	}

	item.CreatedAt = audit.CreatedAt
	item.UpdatedAt = audit.UpdatedAt
	return nil
}

func (r *WeatherRepository) Delete(ctx context.Context, item football.Weather) error {
	return deleteByID(ctx, r.db, "weathers", item.ID)
}
