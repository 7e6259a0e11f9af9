package memory

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchday/internal/domain/football"
)

func newTestStore(t *testing.T) (*Store, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return NewStore(clock), clock
}

func addTeam(t *testing.T, repo *TeamRepository, tricode, name string) football.Team {
	t.Helper()

	item := football.Team{Tricode: tricode, Name: name, Coach: "Coach " + tricode}
	if err := repo.Add(t.Context(), &item); err != nil {
		t.Fatalf("add team %s: %v", tricode, err)
	}
	return item
}

func TestTeamRepository_AddSetsAuditAndID(t *testing.T) {
	store, clock := newTestStore(t)
	repo := NewTeamRepository(store)

	first := addTeam(t, repo, "ARS", "Arsenal")
	second := addTeam(t, repo, "LIV", "Liverpool")

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("unexpected ids: first=%d second=%d", first.ID, second.ID)
	}
	if !first.CreatedAt.Equal(clock.Now()) || !first.UpdatedAt.Equal(first.CreatedAt) {
		t.Fatalf("unexpected audit fields: created=%s updated=%s", first.CreatedAt, first.UpdatedAt)
	}
}

func TestTeamRepository_UpdateRefreshesUpdatedAt(t *testing.T) {
	store, clock := newTestStore(t)
	repo := NewTeamRepository(store)
	item := addTeam(t, repo, "ARS", "Arsenal")
	createdAt := item.CreatedAt

	clock.Advance(time.Hour)
	item.Name = "Arsenal FC"
	item.CreatedAt = time.Time{}
	if err := repo.Update(t.Context(), &item); err != nil {
		t.Fatalf("update team: %v", err)
	}

	got, ok, err := repo.GetByID(t.Context(), item.ID)
	if err != nil || !ok {
		t.Fatalf("get team: ok=%v err=%v", ok, err)
	}
	if got.Name != "Arsenal FC" {
		t.Fatalf("unexpected name: %s", got.Name)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("created at changed: got=%s want=%s", got.CreatedAt, createdAt)
	}
	if !got.UpdatedAt.Equal(createdAt.Add(time.Hour)) {
		t.Fatalf("updated at not refreshed: %s", got.UpdatedAt)
	}
}

func TestTeamRepository_UpdateMissingRow(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewTeamRepository(store)

	err := repo.Update(t.Context(), &football.Team{ID: 42, Tricode: "XX", Name: "x", Coach: "y"})
	if !errors.Is(err, football.ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
}

func TestTeamRepository_GetPagedOrdersAndFilters(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewTeamRepository(store)
	addTeam(t, repo, "ARS", "Arsenal")
	addTeam(t, repo, "LIV", "Liverpool")
	addTeam(t, repo, "AVL", "Aston Villa")

	items, total, err := repo.GetPaged(t.Context(), 1, 2, football.TeamFilter{})
	if err != nil {
		t.Fatalf("get paged: %v", err)
	}
	if total != 3 || len(items) != 2 {
		t.Fatalf("unexpected window: total=%d len=%d", total, len(items))
	}
	if items[0].ID != 1 || items[1].ID != 2 {
		t.Fatalf("unexpected order: %d, %d", items[0].ID, items[1].ID)
	}

	items, total, err = repo.GetPaged(t.Context(), 1, 10, football.TeamFilter{Name: "  a"})
	if err != nil {
		t.Fatalf("get paged filtered: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("unexpected filtered window: total=%d len=%d", total, len(items))
	}

	items, total, err = repo.GetPaged(t.Context(), 5, 10, football.TeamFilter{})
	if err != nil {
		t.Fatalf("get paged past end: %v", err)
	}
	if total != 3 || len(items) != 0 {
		t.Fatalf("unexpected page past end: total=%d len=%d", total, len(items))
	}
}

func TestTeamRepository_GetPagedRejectsUnnormalizedWindow(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewTeamRepository(store)

	if _, _, err := repo.GetPaged(t.Context(), 0, 10, football.TeamFilter{}); !errors.Is(err, football.ErrPageOutOfRange) {
		t.Fatalf("expected ErrPageOutOfRange for page 0, got %v", err)
	}
	if _, _, err := repo.GetPaged(t.Context(), 1, 0, football.TeamFilter{}); !errors.Is(err, football.ErrPageOutOfRange) {
		t.Fatalf("expected ErrPageOutOfRange for page size 0, got %v", err)
	}
}

func TestTeamRepository_GetPagedOverflowingOffsetIsPastEnd(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewTeamRepository(store)
	addTeam(t, repo, "ARS", "Arsenal")

	items, total, err := repo.GetPaged(t.Context(), math.MaxInt/10, 20, football.TeamFilter{})
	if err != nil {
		t.Fatalf("get paged huge page: %v", err)
	}
	if total != 1 || len(items) != 0 {
		t.Fatalf("unexpected window: total=%d len=%d", total, len(items))
	}

	items, total, err = repo.GetPaged(t.Context(), math.MaxInt, math.MaxInt, football.TeamFilter{})
	if err != nil {
		t.Fatalf("get paged max window: %v", err)
	}
	if total != 1 || len(items) != 0 {
		t.Fatalf("unexpected max window: total=%d len=%d", total, len(items))
	}

	items, _, err = repo.GetPaged(t.Context(), 1, math.MaxInt, football.TeamFilter{})
	if err != nil {
		t.Fatalf("get paged max page size: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected the only team on page 1, got %d", len(items))
	}
}

func TestGameRepository_GetPagedOverflowingOffsetIsPastEnd(t *testing.T) {
	store, _ := newTestStore(t)
	teams := NewTeamRepository(store)
	games := NewGameRepository(store)
	home := addTeam(t, teams, "ARS", "Arsenal")
	away := addTeam(t, teams, "LIV", "Liverpool")
	game := football.Game{Location: "Emirates", HomeTeamID: home.ID, AwayTeamID: away.ID}
	if err := games.Add(t.Context(), &game); err != nil {
		t.Fatalf("add game: %v", err)
	}

	items, total, err := games.GetPaged(t.Context(), math.MaxInt/10, 20)
	if err != nil {
		t.Fatalf("get paged huge page: %v", err)
	}
	if total != 1 || len(items) != 0 {
		t.Fatalf("unexpected window: total=%d len=%d", total, len(items))
	}
}

func TestAddStartsUpdatedAtAtCreatedAt(t *testing.T) {
	store, clock := newTestStore(t)
	teams := NewTeamRepository(store)
	players := NewPlayerRepository(store)
	team := addTeam(t, teams, "ARS", "Arsenal")

	clock.Advance(time.Minute)
	player := football.Player{TeamID: team.ID, Number: 7, FirstName: "Bukayo", LastName: "Saka", UpdatedAt: time.Unix(1, 0)}
	if err := players.Add(t.Context(), &player); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if !player.CreatedAt.Equal(clock.Now()) || !player.UpdatedAt.Equal(player.CreatedAt) {
		t.Fatalf("unexpected insert audit: created=%s updated=%s", player.CreatedAt, player.UpdatedAt)
	}

	clock.Advance(time.Minute)
	player.Number = 11
	if err := players.Update(t.Context(), &player); err != nil {
		t.Fatalf("update player: %v", err)
	}
	if !player.UpdatedAt.Equal(clock.Now()) || player.UpdatedAt.Equal(player.CreatedAt) {
		t.Fatalf("updated at not moved by update: created=%s updated=%s", player.CreatedAt, player.UpdatedAt)
	}
}

func TestTeamRepository_GetByIDLoadsPlayers(t *testing.T) {
	store, _ := newTestStore(t)
	teams := NewTeamRepository(store)
	players := NewPlayerRepository(store)
	team := addTeam(t, teams, "ARS", "Arsenal")

	for _, number := range []int{8, 7} {
		item := football.Player{TeamID: team.ID, Number: number, FirstName: "P", LastName: "L"}
		if err := players.Add(t.Context(), &item); err != nil {
			t.Fatalf("add player: %v", err)
		}
	}

	got, ok, err := teams.GetByID(t.Context(), team.ID)
	if err != nil || !ok {
		t.Fatalf("get team: ok=%v err=%v", ok, err)
	}
	if len(got.Players) != 2 || got.Players[0].Number != 8 {
		t.Fatalf("unexpected players: %+v", got.Players)
	}

	empty := addTeam(t, teams, "LIV", "Liverpool")
	got, _, _ = teams.GetByID(t.Context(), empty.ID)
	if got.Players == nil {
		t.Fatalf("expected empty players slice, got nil")
	}
}

func TestPlayerRepository_AddRequiresTeam(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewPlayerRepository(store)

	err := repo.Add(t.Context(), &football.Player{TeamID: 99, Number: 1, FirstName: "A", LastName: "B"})
	if !errors.Is(err, football.ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestTeamRepository_DeleteRestrictedByGame(t *testing.T) {
	store, _ := newTestStore(t)
	teams := NewTeamRepository(store)
	games := NewGameRepository(store)
	home := addTeam(t, teams, "ARS", "Arsenal")
	away := addTeam(t, teams, "LIV", "Liverpool")

	game := football.Game{Date: time.Now().UTC(), Location: "Emirates", HomeTeamID: home.ID, AwayTeamID: away.ID}
	if err := games.Add(t.Context(), &game); err != nil {
		t.Fatalf("add game: %v", err)
	}

	if err := teams.Delete(t.Context(), home); !errors.Is(err, football.ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
	}
	if _, ok, _ := games.GetByID(t.Context(), game.ID); !ok {
		t.Fatalf("game %d removed by rejected team delete", game.ID)
	}
}

func TestGameRepository_GetByIDLoadsGraph(t *testing.T) {
	store, _ := newTestStore(t)
	teams := NewTeamRepository(store)
	players := NewPlayerRepository(store)
	games := NewGameRepository(store)
	lineUps := NewLineUpRepository(store)
	weathers := NewWeatherRepository(store)

	home := addTeam(t, teams, "ARS", "Arsenal")
	away := addTeam(t, teams, "LIV", "Liverpool")
	player := football.Player{TeamID: home.ID, Number: 7, FirstName: "Bukayo", LastName: "Saka"}
	if err := players.Add(t.Context(), &player); err != nil {
		t.Fatalf("add player: %v", err)
	}
	game := football.Game{Location: "Emirates", HomeTeamID: home.ID, AwayTeamID: away.ID}
	if err := games.Add(t.Context(), &game); err != nil {
		t.Fatalf("add game: %v", err)
	}
	lineUp := football.LineUp{GameID: game.ID, TeamID: home.ID, PlayerID: player.ID, Position: "RW", Status: football.LineUpStatusStarter}
	if err := lineUps.Add(t.Context(), &lineUp); err != nil {
		t.Fatalf("add lineup: %v", err)
	}
	weather := football.Weather{GameID: game.ID, Temperature: 11.5, Status: football.WeatherStatusRain}
	if err := weathers.Add(t.Context(), &weather); err != nil {
		t.Fatalf("add weather: %v", err)
	}

	got, ok, err := games.GetByID(t.Context(), game.ID)
	if err != nil || !ok {
		t.Fatalf("get game: ok=%v err=%v", ok, err)
	}
	if got.HomeTeam == nil || got.HomeTeam.Tricode != "ARS" || got.AwayTeam == nil || got.AwayTeam.Tricode != "LIV" {
		t.Fatalf("unexpected teams: home=%+v away=%+v", got.HomeTeam, got.AwayTeam)
	}
	if len(got.LineUps) != 1 || got.LineUps[0].Player == nil || got.LineUps[0].Player.Number != 7 {
		t.Fatalf("unexpected lineups: %+v", got.LineUps)
	}
	if got.Weather == nil || got.Weather.Status != football.WeatherStatusRain {
		t.Fatalf("unexpected weather: %+v", got.Weather)
	}

	if err := games.Delete(t.Context(), got); !errors.Is(err, football.ErrForeignKeyViolation) {
		t.Fatalf("expected restricted game delete, got %v", err)
	}
	if err := players.Delete(t.Context(), player); !errors.Is(err, football.ErrForeignKeyViolation) {
		t.Fatalf("expected restricted player delete, got %v", err)
	}
}

func TestWeatherRepository_OnePerGame(t *testing.T) {
	store, _ := newTestStore(t)
	teams := NewTeamRepository(store)
	games := NewGameRepository(store)
	weathers := NewWeatherRepository(store)

	home := addTeam(t, teams, "ARS", "Arsenal")
	away := addTeam(t, teams, "LIV", "Liverpool")
	game := football.Game{Location: "Emirates", HomeTeamID: home.ID, AwayTeamID: away.ID}
	if err := games.Add(t.Context(), &game); err != nil {
		t.Fatalf("add game: %v", err)
	}

	first := football.Weather{GameID: game.ID, Status: football.WeatherStatusClear}
	if err := weathers.Add(t.Context(), &first); err != nil {
		t.Fatalf("add weather: %v", err)
	}
	second := football.Weather{GameID: game.ID, Status: football.WeatherStatusRain}
	if err := weathers.Add(t.Context(), &second); !errors.Is(err, football.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got %v", err)
	}

	if err := weathers.Delete(t.Context(), first); err != nil {
		t.Fatalf("delete weather: %v", err)
	}
	if _, ok, _ := weathers.GetByGame(t.Context(), game.ID); ok {
		t.Fatalf("weather still present after delete")
	}
}

func TestSeed(t *testing.T) {
	store, _ := newTestStore(t)
	if err := Seed(t.Context(), store); err != nil {
		t.Fatalf("seed: %v", err)
	}

	items, total, err := NewGameRepository(store).GetPaged(t.Context(), 1, 10)
	if err != nil {
		t.Fatalf("get paged games: %v", err)
	}
	if total != 2 || items[0].HomeTeam == nil {
		t.Fatalf("unexpected seeded games: total=%d items=%+v", total, items)
	}
}
