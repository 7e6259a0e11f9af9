package memory

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday/internal/domain/football"
)

type WeatherRepository struct {
	store *Store
}

func NewWeatherRepository(store *Store) *WeatherRepository {
	return &WeatherRepository{store: store}
}

func (r *WeatherRepository) GetByGame(_ context.Context, gameID int64) (football.Weather, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.weatherForGame(gameID)
	return item, ok, nil
}

func (r *WeatherRepository) Add(_ context.Context, item *football.Weather) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.requireGame(item.GameID, "insert weather"); err != nil {
		return err
	}
	if existing, ok := r.store.weatherForGame(item.GameID); ok {
		return crerr.Wrapf(football.ErrUniqueViolation, "insert weather: game=%d already has weather=%d", item.GameID, existing.ID)
	}

	r.store.nextWeatherID++
	row := *item
	row.ID = r.store.nextWeatherID
	row.CreatedAt, row.UpdatedAt = r.store.insertAudit()
	r.store.weathers[row.ID] = row

	item.ID = row.ID
	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *WeatherRepository) Update(_ context.Context, item *football.Weather) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.weathers[item.ID]
	if !ok {
		return crerr.Wrapf(football.ErrRowNotFound, "update weather=%d", item.ID)
	}
	if err := r.store.requireGame(item.GameID, "update weather"); err != nil {
		return err
	}
	if other, ok := r.store.weatherForGame(item.GameID); ok && other.ID != item.ID {
		return crerr.Wrapf(football.ErrUniqueViolation, "update weather=%d: game=%d already has weather=%d", item.ID, item.GameID, other.ID)
	}

	row := *item
	row.CreatedAt = stored.CreatedAt
	row.UpdatedAt = r.store.now()
	r.store.weathers[row.ID] = row

	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *WeatherRepository) Delete(_ context.Context, item football.Weather) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.weathers[item.ID]; !ok {
		return crerr.Wrapf(football.ErrRowNotFound, "delete weather=%d", item.ID)
	}

	delete(r.store.weathers, item.ID)
	return nil
}
