package memory

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday/internal/domain/football"
)

type GameRepository struct {
	store *Store
}

func NewGameRepository(store *Store) *GameRepository {
	return &GameRepository{store: store}
}

func (r *GameRepository) GetByID(_ context.Context, id int64) (football.Game, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.gameGraph(id)
	return item, ok, nil
}

func (r *GameRepository) Add(_ context.Context, item *football.Game) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkTeams(*item, "insert game"); err != nil {
		return err
	}

	r.store.nextGameID++
	row := stripGame(*item)
	row.ID = r.store.nextGameID
	row.CreatedAt, row.UpdatedAt = r.store.insertAudit()
	r.store.games[row.ID] = row

	item.ID = row.ID
	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *GameRepository) Update(_ context.Context, item *football.Game) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.games[item.ID]
	if !ok {
		return crerr.Wrapf(football.ErrRowNotFound, "update game=%d", item.ID)
	}
	if err := r.checkTeams(*item, "update game"); err != nil {
		return err
	}

	row := stripGame(*item)
	row.CreatedAt = stored.CreatedAt
	row.UpdatedAt = r.store.now()
	r.store.games[row.ID] = row

	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *GameRepository) Delete(_ context.Context, item football.Game) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.games[item.ID]; !ok {
		return crerr.Wrapf(football.ErrRowNotFound, "delete game=%d", item.ID)
	}
	if err := r.store.gameReferences(item.ID); err != nil {
		return err
	}

	delete(r.store.games, item.ID)
	return nil
}

func (r *GameRepository) GetPaged(_ context.Context, page, pageSize int) ([]football.Game, int, error) {
	if err := football.CheckWindow(page, pageSize); err != nil {
		return nil, 0, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := sortedKeys(r.store.games)
	selected := window(ids, page, pageSize)
	out := make([]football.Game, 0, len(selected))
	for _, id := range selected {
		item, _ := r.store.gameRow(id)
		item.HomeTeam = r.store.teamRef(item.HomeTeamID)
		item.AwayTeam = r.store.teamRef(item.AwayTeamID)
		out = append(out, item)
	}

	return out, len(ids), nil
}

func (r *GameRepository) checkTeams(item football.Game, op string) error {
	if err := r.store.requireTeam(item.HomeTeamID, op); err != nil {
		return err
	}
	return r.store.requireTeam(item.AwayTeamID, op)
}

func stripGame(item football.Game) football.Game {
	item.HomeTeam, item.AwayTeam, item.LineUps, item.Weather = nil, nil, nil, nil
	return item
}
