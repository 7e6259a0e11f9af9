package memory

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday/internal/domain/football"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (football.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teamWithPlayers(id)
	return item, ok, nil
}

func (r *TeamRepository) Add(_ context.Context, item *football.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTeamID++
	row := *item
	row.ID = r.store.nextTeamID
	row.Players = nil
	row.CreatedAt, row.UpdatedAt = r.store.insertAudit()
	r.store.teams[row.ID] = row

	item.ID = row.ID
	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *TeamRepository) Update(_ context.Context, item *football.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.teams[item.ID]
	if !ok {
		return crerr.Wrapf(football.ErrRowNotFound, "update team=%d", item.ID)
	}

	row := *item
	row.Players = nil
	row.CreatedAt = stored.CreatedAt
	row.UpdatedAt = r.store.now()
	r.store.teams[row.ID] = row

	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, item football.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[item.ID]; !ok {
		return crerr.Wrapf(football.ErrRowNotFound, "delete team=%d", item.ID)
	}
	if err := r.store.teamReferences(item.ID); err != nil {
		return err
	}

	delete(r.store.teams, item.ID)
	return nil
}

func (r *TeamRepository) GetPaged(_ context.Context, page, pageSize int, filter football.TeamFilter) ([]football.Team, int, error) {
	if err := football.CheckWindow(page, pageSize); err != nil {
		return nil, 0, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]football.Team, 0, len(r.store.teams))
	for _, id := range sortedKeys(r.store.teams) {
		if !filter.Matches(r.store.teams[id]) {
			continue
		}
		item, _ := r.store.teamWithPlayers(id)
		matched = append(matched, item)
	}

	return window(matched, page, pageSize), len(matched), nil
}
