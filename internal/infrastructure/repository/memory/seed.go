package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/football"
)

func SeedTeams() []football.Team {
	return []football.Team{
		{Tricode: "PSJ", Name: "Persija Jakarta", Coach: "Carlos Pena"},
		{Tricode: "PSB", Name: "Persib Bandung", Coach: "Bojan Hodak"},
		{Tricode: "ARS", Name: "Arsenal", Coach: "Mikel Arteta"},
		{Tricode: "LIV", Name: "Liverpool", Coach: "Arne Slot"},
	}
}

// SeedPlayers returns players keyed by the tricode of their team.
func SeedPlayers() map[string][]football.Player {
	return map[string][]football.Player{
		"PSJ": {
			{Number: 1, FirstName: "Andritany", LastName: "Ardhiyasa"},
			{Number: 19, FirstName: "Maciej", LastName: "Gajos"},
		},
		"PSB": {
			{Number: 10, FirstName: "Marc", LastName: "Klok"},
			{Number: 19, FirstName: "David", LastName: "da Silva"},
		},
		"ARS": {
			{Number: 7, FirstName: "Bukayo", LastName: "Saka"},
			{Number: 8, FirstName: "Martin", LastName: "Odegaard"},
		},
		"LIV": {
			{Number: 11, FirstName: "Mohamed", LastName: "Salah"},
			{Number: 4, FirstName: "Virgil", LastName: "van Dijk"},
		},
	}
}

// Seed loads the demo roster and one fixture per pair of teams into store.
func Seed(ctx context.Context, store *Store) error {
	teamRepo := NewTeamRepository(store)
	playerRepo := NewPlayerRepository(store)
	gameRepo := NewGameRepository(store)

	teamIDs := make(map[string]int64)
	for _, item := range SeedTeams() {
		if err := teamRepo.Add(ctx, &item); err != nil {
			return fmt.Errorf("seed team %s: %w", item.Tricode, err)
		}
		teamIDs[item.Tricode] = item.ID
	}

	roster := SeedPlayers()
	for _, team := range SeedTeams() {
		for _, item := range roster[team.Tricode] {
			item.TeamID = teamIDs[team.Tricode]
			if err := playerRepo.Add(ctx, &item); err != nil {
				return fmt.Errorf("seed player %s: %w", item.FullName(), err)
			}
		}
	}

	fixtures := []football.Game{
		{
			Date:       time.Date(2026, 2, 14, 19, 0, 0, 0, time.UTC),
			Location:   "Jakarta International Stadium",
			HomeTeamID: teamIDs["PSJ"],
			AwayTeamID: teamIDs["PSB"],
		},
		{
			Date:       time.Date(2026, 2, 15, 16, 30, 0, 0, time.UTC),
			Location:   "Emirates Stadium",
			HomeTeamID: teamIDs["ARS"],
			AwayTeamID: teamIDs["LIV"],
		},
	}
	for _, item := range fixtures {
		if err := gameRepo.Add(ctx, &item); err != nil {
			return fmt.Errorf("seed game at %s: %w", item.Location, err)
		}
	}

	return nil
}
