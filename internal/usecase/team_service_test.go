package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchday/internal/domain/football"
	"github.com/riskibarqy/matchday/internal/dto"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday/internal/platform/pagination"
)

func newMemoryStore() *memory.Store {
	return memory.NewStore(clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)))
}

func createTeam(t *testing.T, svc *TeamService, tricode, name, coach string) dto.Team {
	t.Helper()

	created, err := svc.Create(t.Context(), &dto.Team{Tricode: tricode, Name: name, Coach: coach})
	if err != nil {
		t.Fatalf("create team %s: %v", tricode, err)
	}
	return created
}

func TestTeamService_List_PagesFifteenTeams(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(newMemoryStore()), pagination.DefaultOptions())
	for i := 1; i <= 15; i++ {
		createTeam(t, svc, fmt.Sprintf("T%02d", i), fmt.Sprintf("Team %02d", i), "Coach")
	}

	first, err := svc.List(t.Context(), 1, 10, TeamListFilter{})
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if len(first.Items) != 10 || first.TotalCount != 15 || first.Page != 1 || first.PageSize != 10 {
		t.Fatalf("unexpected page 1: len=%d total=%d page=%d size=%d", len(first.Items), first.TotalCount, first.Page, first.PageSize)
	}

	second, err := svc.List(t.Context(), 2, 10, TeamListFilter{})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(second.Items) != 5 || second.TotalCount != 15 {
		t.Fatalf("unexpected page 2: len=%d total=%d", len(second.Items), second.TotalCount)
	}
	if second.Items[0].ID != 11 {
		t.Fatalf("unexpected first id on page 2: %d", second.Items[0].ID)
	}
}

func TestTeamService_List_NormalizesPaging(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(newMemoryStore()), pagination.DefaultOptions())
	createTeam(t, svc, "ARS", "Arsenal", "Mikel Arteta")

	got, err := svc.List(t.Context(), 0, 500, TeamListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got.Page != 1 || got.PageSize != 20 {
		t.Fatalf("unexpected normalized paging: page=%d size=%d", got.Page, got.PageSize)
	}

	got, err = svc.List(t.Context(), 3, 500, TeamListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got.Page != 3 || got.PageSize != 100 || len(got.Items) != 0 || got.TotalCount != 1 {
		t.Fatalf("unexpected clamped page: %+v", got)
	}
}

func TestTeamService_List_FiltersByNameAndCoach(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(newMemoryStore()), pagination.DefaultOptions())
	createTeam(t, svc, "ARS", "Arsenal", "Mikel Arteta")
	createTeam(t, svc, "LIV", "Liverpool", "Arne Slot")
	createTeam(t, svc, "AVL", "Aston Villa", "Unai Emery")

	got, err := svc.List(t.Context(), 1, 10, TeamListFilter{Name: "ARS"})
	if err != nil {
		t.Fatalf("list by name: %v", err)
	}
	if got.TotalCount != 1 || got.Items[0].Tricode != "ARS" {
		t.Fatalf("unexpected name filter result: %+v", got.Items)
	}

	got, err = svc.List(t.Context(), 1, 10, TeamListFilter{Name: "a", Coach: "slot"})
	if err != nil {
		t.Fatalf("list by name and coach: %v", err)
	}
	if got.TotalCount != 1 || got.Items[0].Tricode != "LIV" {
		t.Fatalf("unexpected combined filter result: %+v", got.Items)
	}
}

func TestTeamService_Create_RejectsInvalidPayload(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(newMemoryStore()), pagination.DefaultOptions())

	if _, err := svc.Create(t.Context(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil payload, got %v", err)
	}
	if _, err := svc.Create(t.Context(), &dto.Team{Tricode: "ARSN", Name: "Arsenal", Coach: "Arteta"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for long tricode, got %v", err)
	}
}

func TestTeamService_Create_ReturnsStoredGraph(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(newMemoryStore()), pagination.DefaultOptions())

	created := createTeam(t, svc, "ARS", "Arsenal", "Mikel Arteta")
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.Players == nil || len(created.Players) != 0 {
		t.Fatalf("expected empty players, got %+v", created.Players)
	}
}

func TestTeamService_Update_OverlaysFields(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(newMemoryStore()), pagination.DefaultOptions())
	created := createTeam(t, svc, "ARS", "Arsenal", "Mikel Arteta")

	created.Coach = "Arsene Wenger"
	if err := svc.Update(t.Context(), &created); err != nil {
		t.Fatalf("update team: %v", err)
	}

	got, ok, err := svc.GetByID(t.Context(), created.ID)
	if err != nil || !ok {
		t.Fatalf("get team: ok=%v err=%v", ok, err)
	}
	if got.Coach != "Arsene Wenger" || got.Name != "Arsenal" {
		t.Fatalf("unexpected team after update: %+v", got)
	}
}

func TestTeamService_Update_NotFound(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(newMemoryStore()), pagination.DefaultOptions())

	err := svc.Update(t.Context(), &dto.Team{ID: 404, Tricode: "NF", Name: "Missing", Coach: "Nobody"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_Delete_RestrictedByGame(t *testing.T) {
	store := newMemoryStore()
	teams := NewTeamService(memory.NewTeamRepository(store), pagination.DefaultOptions())
	games := NewGameService(memory.NewGameRepository(store), pagination.DefaultOptions())

	home := createTeam(t, teams, "ARS", "Arsenal", "Mikel Arteta")
	away := createTeam(t, teams, "LIV", "Liverpool", "Arne Slot")
	game, err := games.Create(t.Context(), &dto.Game{
		Date:     time.Date(2026, 4, 1, 19, 0, 0, 0, time.UTC),
		Location: "Emirates Stadium",
		HomeTeam: dto.Team{ID: home.ID},
		AwayTeam: dto.Team{ID: away.ID},
	})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}

	err = teams.Delete(t.Context(), home.ID)
	if !errors.Is(err, football.ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
	}
	if _, ok, _ := games.GetByID(t.Context(), game.ID); !ok {
		t.Fatalf("game %d missing after rejected team delete", game.ID)
	}
}

func TestTeamService_Delete_NotFound(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(newMemoryStore()), pagination.DefaultOptions())

	if err := svc.Delete(t.Context(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
