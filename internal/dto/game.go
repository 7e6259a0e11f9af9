package dto

import (
	"time"

	"github.com/riskibarqy/matchday/internal/domain/football"
)

type Game struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Location string    `json:"location" validate:"max=200"`
	HomeTeam Team      `json:"homeTeam" validate:"-"`
	AwayTeam Team      `json:"awayTeam" validate:"-"`
	LineUps  []LineUp  `json:"lineUps" validate:"-"`
	Weather  *Weather  `json:"weather,omitempty" validate:"-"`
}

// GameFromEntity falls back to id-only teams when the navigations were not loaded.
func GameFromEntity(item football.Game) Game {
	out := Game{
		ID:       item.ID,
		Date:     item.Date,
		Location: item.Location,
		HomeTeam: Team{ID: item.HomeTeamID, Players: []Player{}},
		AwayTeam: Team{ID: item.AwayTeamID, Players: []Player{}},
		LineUps:  LineUpsFromEntities(item.LineUps),
	}
	if item.HomeTeam != nil {
		out.HomeTeam = TeamFromEntity(*item.HomeTeam)
	}
	if item.AwayTeam != nil {
		out.AwayTeam = TeamFromEntity(*item.AwayTeam)
	}
	if item.Weather != nil {
		weather := WeatherFromEntity(*item.Weather)
		out.Weather = &weather
	}
	return out
}

func GamesFromEntities(items []football.Game) []Game {
	out := make([]Game, 0, len(items))
	for _, item := range items {
		out = append(out, GameFromEntity(item))
	}
	return out
}

// GameToEntity takes only the team ids from the nested payloads. Nested teams,
// lineups and weather are never written through a game.
func GameToEntity(in Game) football.Game {
	return football.Game{
		ID:         in.ID,
		Date:       in.Date,
		Location:   in.Location,
		HomeTeamID: in.HomeTeam.ID,
		AwayTeamID: in.AwayTeam.ID,
	}
}

func ApplyGame(dst *football.Game, in Game) {
	dst.Date = in.Date
	dst.Location = in.Location
	dst.HomeTeamID = in.HomeTeam.ID
	dst.AwayTeamID = in.AwayTeam.ID
}
