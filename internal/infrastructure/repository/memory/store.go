package memory

import (
	"sort"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchday/internal/domain/football"
)

// Store is an in-process relational store for the football entities. Rows are
// kept without navigations and the graphs are assembled on read. Foreign keys
// are checked on every write and every reference blocks deletion of its parent.
type Store struct {
	mu    sync.RWMutex
	clock clockwork.Clock

	teams    map[int64]football.Team
	players  map[int64]football.Player
	games    map[int64]football.Game
	lineUps  map[int64]football.LineUp
	weathers map[int64]football.Weather

	nextTeamID    int64
	nextPlayerID  int64
	nextGameID    int64
	nextLineUpID  int64
	nextWeatherID int64
}

func NewStore(clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{
		clock:    clock,
		teams:    make(map[int64]football.Team),
		players:  make(map[int64]football.Player),
		games:    make(map[int64]football.Game),
		lineUps:  make(map[int64]football.LineUp),
		weathers: make(map[int64]football.Weather),
	}
}

func (s *Store) now() time.Time {
	return s.clock.Now().UTC()
}

// insertAudit returns the audit pair for a new row. UpdatedAt starts equal to
// CreatedAt, mirroring the updated_at column default, and only moves on Update.
func (s *Store) insertAudit() (createdAt, updatedAt time.Time) {
	now := s.now()
	return now, now
}

// The helpers below expect s.mu to be held by the caller.

func (s *Store) teamRow(id int64) (football.Team, bool) {
	row, ok := s.teams[id]
	if !ok {
		return football.Team{}, false
	}
	row.Players = nil
	return row, true
}

func (s *Store) playerRow(id int64) (football.Player, bool) {
	row, ok := s.players[id]
	if !ok {
		return football.Player{}, false
	}
	row.Team = nil
	return row, true
}

func (s *Store) gameRow(id int64) (football.Game, bool) {
	row, ok := s.games[id]
	if !ok {
		return football.Game{}, false
	}
	row.HomeTeam, row.AwayTeam, row.LineUps, row.Weather = nil, nil, nil, nil
	return row, true
}

func (s *Store) teamWithPlayers(id int64) (football.Team, bool) {
	team, ok := s.teamRow(id)
	if !ok {
		return football.Team{}, false
	}
	team.Players = []football.Player{}
	for _, playerID := range sortedKeys(s.players) {
		if s.players[playerID].TeamID == id {
			player, _ := s.playerRow(playerID)
			team.Players = append(team.Players, player)
		}
	}
	return team, true
}

func (s *Store) teamRef(id int64) *football.Team {
	team, ok := s.teamRow(id)
	if !ok {
		return nil
	}
	return &team
}

func (s *Store) lineUpWithRefs(row football.LineUp) football.LineUp {
	if game, ok := s.gameRow(row.GameID); ok {
		row.Game = &game
	}
	row.Team = s.teamRef(row.TeamID)
	if player, ok := s.playerRow(row.PlayerID); ok {
		row.Player = &player
	}
	return row
}

func (s *Store) weatherForGame(gameID int64) (football.Weather, bool) {
	for _, id := range sortedKeys(s.weathers) {
		if row := s.weathers[id]; row.GameID == gameID {
			return row, true
		}
	}
	return football.Weather{}, false
}

func (s *Store) gameGraph(id int64) (football.Game, bool) {
	game, ok := s.gameRow(id)
	if !ok {
		return football.Game{}, false
	}
	game.HomeTeam = s.teamRef(game.HomeTeamID)
	game.AwayTeam = s.teamRef(game.AwayTeamID)
	game.LineUps = []football.LineUp{}
	for _, lineUpID := range sortedKeys(s.lineUps) {
		row := s.lineUps[lineUpID]
		if row.GameID != id {
			continue
		}
		if player, ok := s.playerRow(row.PlayerID); ok {
			row.Player = &player
		}
		game.LineUps = append(game.LineUps, row)
	}
	if weather, ok := s.weatherForGame(id); ok {
		game.Weather = &weather
	}
	return game, true
}

func (s *Store) requireTeam(id int64, op string) error {
	if _, ok := s.teams[id]; !ok {
		return crerr.Wrapf(football.ErrForeignKeyViolation, "%s: team=%d does not exist", op, id)
	}
	return nil
}

func (s *Store) requirePlayer(id int64, op string) error {
	if _, ok := s.players[id]; !ok {
		return crerr.Wrapf(football.ErrForeignKeyViolation, "%s: player=%d does not exist", op, id)
	}
	return nil
}

func (s *Store) requireGame(id int64, op string) error {
	if _, ok := s.games[id]; !ok {
		return crerr.Wrapf(football.ErrForeignKeyViolation, "%s: game=%d does not exist", op, id)
	}
	return nil
}

func (s *Store) teamReferences(id int64) error {
	for _, gameID := range sortedKeys(s.games) {
		game := s.games[gameID]
		if game.HomeTeamID == id || game.AwayTeamID == id {
			return crerr.Wrapf(football.ErrForeignKeyViolation, "delete team=%d: referenced by game=%d", id, gameID)
		}
	}
	for _, playerID := range sortedKeys(s.players) {
		if s.players[playerID].TeamID == id {
			return crerr.Wrapf(football.ErrForeignKeyViolation, "delete team=%d: referenced by player=%d", id, playerID)
		}
	}
	for _, lineUpID := range sortedKeys(s.lineUps) {
		if s.lineUps[lineUpID].TeamID == id {
			return crerr.Wrapf(football.ErrForeignKeyViolation, "delete team=%d: referenced by lineup=%d", id, lineUpID)
		}
	}
	return nil
}

func (s *Store) playerReferences(id int64) error {
	for _, lineUpID := range sortedKeys(s.lineUps) {
		if s.lineUps[lineUpID].PlayerID == id {
			return crerr.Wrapf(football.ErrForeignKeyViolation, "delete player=%d: referenced by lineup=%d", id, lineUpID)
		}
	}
	return nil
}

func (s *Store) gameReferences(id int64) error {
	for _, lineUpID := range sortedKeys(s.lineUps) {
		if s.lineUps[lineUpID].GameID == id {
			return crerr.Wrapf(football.ErrForeignKeyViolation, "delete game=%d: referenced by lineup=%d", id, lineUpID)
		}
	}
	if weather, ok := s.weatherForGame(id); ok {
		return crerr.Wrapf(football.ErrForeignKeyViolation, "delete game=%d: referenced by weather=%d", id, weather.ID)
	}
	return nil
}

func sortedKeys[V any](rows map[int64]V) []int64 {
	keys := make([]int64, 0, len(rows))
	for id := range rows {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// window returns the page of items; items must already be ordered.
func window[T any](items []T, page, pageSize int) []T {
	start, ok := football.Offset(page, pageSize)
	if !ok || start >= len(items) {
		return []T{}
	}
	end := len(items)
	if pageSize < end-start {
		end = start + pageSize
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
