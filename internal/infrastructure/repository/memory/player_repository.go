package memory

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday/internal/domain/football"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (football.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.playerRow(id)
	if !ok {
		return football.Player{}, false, nil
	}
	item.Team = r.store.teamRef(item.TeamID)
	return item, true, nil
}

func (r *PlayerRepository) Add(_ context.Context, item *football.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.requireTeam(item.TeamID, "insert player"); err != nil {
		return err
	}

	r.store.nextPlayerID++
	row := *item
	row.ID = r.store.nextPlayerID
	row.Team = nil
	row.CreatedAt, row.UpdatedAt = r.store.insertAudit()
	r.store.players[row.ID] = row

	item.ID = row.ID
	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, item *football.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.players[item.ID]
	if !ok {
		return crerr.Wrapf(football.ErrRowNotFound, "update player=%d", item.ID)
	}
	if err := r.store.requireTeam(item.TeamID, "update player"); err != nil {
		return err
	}

	row := *item
	row.Team = nil
	row.CreatedAt = stored.CreatedAt
	row.UpdatedAt = r.store.now()
	r.store.players[row.ID] = row

	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, item football.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[item.ID]; !ok {
		return crerr.Wrapf(football.ErrRowNotFound, "delete player=%d", item.ID)
	}
	if err := r.store.playerReferences(item.ID); err != nil {
		return err
	}

	delete(r.store.players, item.ID)
	return nil
}

func (r *PlayerRepository) GetPagedByTeam(_ context.Context, teamID int64, page, pageSize int) ([]football.Player, int, error) {
	if err := football.CheckWindow(page, pageSize); err != nil {
		return nil, 0, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]football.Player, 0)
	for _, id := range sortedKeys(r.store.players) {
		if r.store.players[id].TeamID != teamID {
			continue
		}
		item, _ := r.store.playerRow(id)
		matched = append(matched, item)
	}

	return window(matched, page, pageSize), len(matched), nil
}
