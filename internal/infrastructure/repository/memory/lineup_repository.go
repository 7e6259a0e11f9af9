package memory

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday/internal/domain/football"
)

type LineUpRepository struct {
	store *Store
}

func NewLineUpRepository(store *Store) *LineUpRepository {
	return &LineUpRepository{store: store}
}

func (r *LineUpRepository) GetByID(_ context.Context, id int64) (football.LineUp, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.lineUps[id]
	if !ok {
		return football.LineUp{}, false, nil
	}
	return r.store.lineUpWithRefs(row), true, nil
}

func (r *LineUpRepository) Add(_ context.Context, item *football.LineUp) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkReferences(*item, "insert lineup"); err != nil {
		return err
	}

	r.store.nextLineUpID++
	row := stripLineUp(*item)
	row.ID = r.store.nextLineUpID
	row.CreatedAt, row.UpdatedAt = r.store.insertAudit()
	r.store.lineUps[row.ID] = row

	item.ID = row.ID
	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *LineUpRepository) Update(_ context.Context, item *football.LineUp) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.lineUps[item.ID]
	if !ok {
		return crerr.Wrapf(football.ErrRowNotFound, "update lineup=%d", item.ID)
	}
	if err := r.checkReferences(*item, "update lineup"); err != nil {
		return err
	}

	row := stripLineUp(*item)
	row.CreatedAt = stored.CreatedAt
	row.UpdatedAt = r.store.now()
	r.store.lineUps[row.ID] = row

	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *LineUpRepository) Delete(_ context.Context, item football.LineUp) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.lineUps[item.ID]; !ok {
		return crerr.Wrapf(football.ErrRowNotFound, "delete lineup=%d", item.ID)
	}

	delete(r.store.lineUps, item.ID)
	return nil
}

func (r *LineUpRepository) GetPagedByGame(_ context.Context, gameID int64, page, pageSize int) ([]football.LineUp, int, error) {
	if err := football.CheckWindow(page, pageSize); err != nil {
		return nil, 0, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]football.LineUp, 0)
	for _, id := range sortedKeys(r.store.lineUps) {
		row := r.store.lineUps[id]
		if row.GameID != gameID {
			continue
		}
		row.Team = r.store.teamRef(row.TeamID)
		if player, ok := r.store.playerRow(row.PlayerID); ok {
			row.Player = &player
		}
		matched = append(matched, row)
	}

	return window(matched, page, pageSize), len(matched), nil
}

func (r *LineUpRepository) checkReferences(item football.LineUp, op string) error {
	if err := r.store.requireGame(item.GameID, op); err != nil {
		return err
	}
	if err := r.store.requireTeam(item.TeamID, op); err != nil {
		return err
	}
	return r.store.requirePlayer(item.PlayerID, op)
}

func stripLineUp(item football.LineUp) football.LineUp {
	item.Game, item.Team, item.Player = nil, nil, nil
	return item
}
