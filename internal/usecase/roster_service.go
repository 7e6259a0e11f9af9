package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/jonboulle/clockwork"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchday/internal/dto"
	"github.com/sourcegraph/conc/panics"
	"go.opentelemetry.io/otel/attribute"
)

const (
	RosterStatusSuccess = "success"
	RosterStatusFailed  = "failed"
)

// RosterTeam is one team together with the players to create under it.
type RosterTeam struct {
	Team    dto.Team
	Players []dto.Player
}

type RosterTeamResult struct {
	Tricode    string `json:"tricode"`
	TeamID     int64  `json:"teamId,omitempty"`
	Players    int    `json:"players"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type RosterResult struct {
	Teams        []RosterTeamResult `json:"teams"`
	SuccessCount int                `json:"successCount"`
	FailedCount  int                `json:"failedCount"`
}

// RosterService loads whole rosters through the team and player services.
// Teams are independent: a failure is recorded on that team's result and the
// remaining teams still load.
type RosterService struct {
	teams   *TeamService
	players *PlayerService
	workers int
	clock   clockwork.Clock
}

func NewRosterService(teams *TeamService, players *PlayerService, workers int, clock clockwork.Clock) *RosterService {
	if workers < 1 {
		workers = 1
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RosterService{
		teams:   teams,
		players: players,
		workers: workers,
		clock:   clock,
	}
}

func (s *RosterService) Load(ctx context.Context, roster []RosterTeam) (RosterResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Load",
		attribute.Int("teams", len(roster)),
		attribute.Int("workers", s.workers),
	)
	defer span.End()

	if len(roster) == 0 {
		return RosterResult{Teams: []RosterTeamResult{}}, nil
	}

	workerCount := min(s.workers, len(roster))
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RosterResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan RosterTeamResult, len(roster))
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, entry := range roster {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			row := s.loadTeamSafely(ctx, entry)
			if row.Status != RosterStatusSuccess {
				failedCount.Add(1)
			}
			results <- row
		}); err != nil {
			workers.Done()
			return RosterResult{}, fmt.Errorf("submit team to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := RosterResult{Teams: make([]RosterTeamResult, 0, len(roster))}
	for row := range results {
		out.Teams = append(out.Teams, row)
	}
	sort.SliceStable(out.Teams, func(i, j int) bool {
		return out.Teams[i].Tricode < out.Teams[j].Tricode
	})

	out.FailedCount = int(failedCount.Load())
	out.SuccessCount = len(out.Teams) - out.FailedCount
	return out, nil
}

// loadTeamSafely turns a panic while loading one team into a failed result
// for that team.
func (s *RosterService) loadTeamSafely(ctx context.Context, entry RosterTeam) RosterTeamResult {
	var row RosterTeamResult
	var catcher panics.Catcher
	catcher.Try(func() { row = s.loadTeam(ctx, entry) })
	if recovered := catcher.Recovered(); recovered != nil {
		return RosterTeamResult{
			Tricode: entry.Team.Tricode,
			Status:  RosterStatusFailed,
			Message: recovered.AsError().Error(),
		}
	}
	return row
}

func (s *RosterService) loadTeam(ctx context.Context, entry RosterTeam) RosterTeamResult {
	start := s.clock.Now()
	row := RosterTeamResult{Tricode: entry.Team.Tricode}
	finish := func(status, message string) RosterTeamResult {
		row.Status = status
		row.Message = message
		row.DurationMs = s.clock.Since(start).Milliseconds()
		return row
	}

	if err := ctx.Err(); err != nil {
		return finish(RosterStatusFailed, err.Error())
	}

	team, err := s.teams.Create(ctx, &entry.Team)
	if err != nil {
		return finish(RosterStatusFailed, fmt.Sprintf("create team: %v", err))
	}
	row.TeamID = team.ID

	for i := range entry.Players {
		if _, err := s.players.Create(ctx, team.ID, &entry.Players[i]); err != nil {
			return finish(RosterStatusFailed, fmt.Sprintf("create player #%d: %v", entry.Players[i].Number, err))
		}
		row.Players++
	}

	return finish(RosterStatusSuccess, "")
}
