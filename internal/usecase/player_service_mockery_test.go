package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchday/internal/domain/football"
	"github.com/riskibarqy/matchday/internal/dto"
	footballmock "github.com/riskibarqy/matchday/internal/mocks/domain/football"
	"github.com/riskibarqy/matchday/internal/platform/pagination"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_Update_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := footballmock.NewPlayerRepository(t)
	service := NewPlayerService(playerRepo, pagination.DefaultOptions())

	playerRepo.
		On("GetByID", ctx, int64(77)).
		Return(football.Player{}, false, nil).
		Once()

	err := service.Update(ctx, &dto.Player{ID: 77, Number: 9, FirstName: "A", LastName: "B"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	playerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPlayerService_Delete_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := footballmock.NewPlayerRepository(t)
	service := NewPlayerService(playerRepo, pagination.DefaultOptions())

	playerRepo.
		On("GetByID", ctx, int64(77)).
		Return(football.Player{}, false, nil).
		Once()

	if err := service.Delete(ctx, 77); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	playerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPlayerService_Update_KeepsTeamUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := footballmock.NewPlayerRepository(t)
	service := NewPlayerService(playerRepo, pagination.DefaultOptions())

	stored := football.Player{ID: 5, TeamID: 3, Number: 10, FirstName: "Marc", LastName: "Klok"}
	playerRepo.
		On("GetByID", ctx, int64(5)).
		Return(stored, true, nil).
		Once()
	playerRepo.
		On("Update", ctx, mock.MatchedBy(func(v *football.Player) bool {
			return v.ID == 5 && v.TeamID == 3 && v.Number == 8
		})).
		Return(nil).
		Once()

	err := service.Update(ctx, &dto.Player{ID: 5, TeamID: 99, Number: 8, FirstName: "Marc", LastName: "Klok"})
	if err != nil {
		t.Fatalf("update player: %v", err)
	}
}

func TestPlayerService_Create_UsesRouteTeamUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := footballmock.NewPlayerRepository(t)
	service := NewPlayerService(playerRepo, pagination.DefaultOptions())

	playerRepo.
		On("Add", ctx, mock.MatchedBy(func(v *football.Player) bool { return v.TeamID == 4 })).
		Run(func(args mock.Arguments) {
			args.Get(1).(*football.Player).ID = 21
		}).
		Return(nil).
		Once()
	playerRepo.
		On("GetByID", ctx, int64(21)).
		Return(football.Player{ID: 21, TeamID: 4, Number: 11, FirstName: "Mohamed", LastName: "Salah"}, true, nil).
		Once()

	got, err := service.Create(ctx, 4, &dto.Player{TeamID: 1, Number: 11, FirstName: "Mohamed", LastName: "Salah"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if got.ID != 21 || got.TeamID != 4 || got.FullName != "Mohamed Salah" {
		t.Fatalf("unexpected created player: %+v", got)
	}
}

func TestPlayerService_Create_RejectsInvalidUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := footballmock.NewPlayerRepository(t)
	service := NewPlayerService(playerRepo, pagination.DefaultOptions())

	_, err := service.Create(ctx, 4, &dto.Player{Number: 0, FirstName: "No", LastName: "Number"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	playerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPlayerService_ListByTeam_NormalizesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := footballmock.NewPlayerRepository(t)
	service := NewPlayerService(playerRepo, pagination.DefaultOptions())

	playerRepo.
		On("GetPagedByTeam", ctx, int64(4), 1, 20).
		Return([]football.Player{{ID: 1, TeamID: 4, Number: 1, FirstName: "A", LastName: "B"}}, 1, nil).
		Once()

	got, err := service.ListByTeam(ctx, 4, -3, 50)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if got.Page != 1 || got.PageSize != 20 || got.TotalCount != 1 || len(got.Items) != 1 {
		t.Fatalf("unexpected page: %+v", got)
	}
}

func TestTeamService_List_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := footballmock.NewTeamRepository(t)
	service := NewTeamService(teamRepo, pagination.DefaultOptions())
	repoErr := errors.New("connection reset")

	teamRepo.
		On("GetPaged", ctx, 2, 100, football.TeamFilter{Name: "ars"}).
		Return(nil, 0, repoErr).
		Once()

	_, err := service.List(ctx, 2, 1000, TeamListFilter{Name: "ars"})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestLineUpService_Update_ValidatesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lineUpRepo := footballmock.NewLineUpRepository(t)
	service := NewLineUpService(lineUpRepo, pagination.DefaultOptions())

	lineUpRepo.
		On("GetByID", ctx, int64(8)).
		Return(football.LineUp{ID: 8, GameID: 1, TeamID: 2, PlayerID: 3, Status: football.LineUpStatusStarter}, true, nil).
		Once()

	err := service.Update(ctx, &dto.LineUp{ID: 8, TeamID: 0, Player: dto.Player{ID: 3}, Status: football.LineUpStatusBench})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	lineUpRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestWeatherService_GetByGame_ErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	weatherRepo := footballmock.NewWeatherRepository(t)
	service := NewWeatherService(weatherRepo)
	repoErr := errors.New("timeout")

	weatherRepo.
		On("GetByGame", ctx, int64(3)).
		Return(football.Weather{}, false, repoErr).
		Once()

	if _, _, err := service.GetByGame(ctx, 3); !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestGameService_Create_MapsNestedTeamIDsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gameRepo := footballmock.NewGameRepository(t)
	service := NewGameService(gameRepo, pagination.DefaultOptions())

	gameRepo.
		On("Add", ctx, mock.MatchedBy(func(v *football.Game) bool {
			return v.HomeTeamID == 1 && v.AwayTeamID == 2 && v.HomeTeam == nil && v.AwayTeam == nil
		})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*football.Game).ID = 9
		}).
		Return(nil).
		Once()
	gameRepo.
		On("GetByID", ctx, int64(9)).
		Return(football.Game{ID: 9, HomeTeamID: 1, AwayTeamID: 2}, true, nil).
		Once()

	got, err := service.Create(ctx, &dto.Game{
		HomeTeam: dto.Team{ID: 1, Name: "ignored"},
		AwayTeam: dto.Team{ID: 2},
	})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	if got.ID != 9 || got.HomeTeam.ID != 1 || got.AwayTeam.ID != 2 {
		t.Fatalf("unexpected game: %+v", got)
	}
}
