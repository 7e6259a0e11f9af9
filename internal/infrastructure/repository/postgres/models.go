package postgres

import (
	"time"

	"github.com/riskibarqy/matchday/internal/domain/football"
)

type teamTableModel struct {
	ID        int64     `db:"id,readonly"`
	Tricode   string    `db:"tricode"`
	Name      string    `db:"name"`
	Coach     string    `db:"coach"`
	CreatedAt time.Time `db:"created_at,readonly"`
	UpdatedAt time.Time `db:"updated_at,readonly"`
}

func teamRowFromEntity(item football.Team) teamTableModel {
	return teamTableModel{
		ID:      item.ID,
		Tricode: item.Tricode,
		Name:    item.Name,
		Coach:   item.Coach,
	}
}

func (row teamTableModel) entity() football.Team {
	return football.Team{
		ID:        row.ID,
		Tricode:   row.Tricode,
		Name:      row.Name,
		Coach:     row.Coach,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type playerTableModel struct {
	ID        int64     `db:"id,readonly"`
	TeamID    int64     `db:"team_id"`
	Number    int       `db:"number"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	CreatedAt time.Time `db:"created_at,readonly"`
	UpdatedAt time.Time `db:"updated_at,readonly"`
}

func playerRowFromEntity(item football.Player) playerTableModel {
	return playerTableModel{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Number:    item.Number,
		FirstName: item.FirstName,
		LastName:  item.LastName,
	}
}

func (row playerTableModel) entity() football.Player {
	return football.Player{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Number:    row.Number,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type gameTableModel struct {
	ID         int64     `db:"id,readonly"`
	Date       time.Time `db:"date"`
	Location   string    `db:"location"`
	HomeTeamID int64     `db:"home_team_id"`
	AwayTeamID int64     `db:"away_team_id"`
	CreatedAt  time.Time `db:"created_at,readonly"`
	UpdatedAt  time.Time `db:"updated_at,readonly"`
}

func gameRowFromEntity(item football.Game) gameTableModel {
	return gameTableModel{
		ID:         item.ID,
		Date:       item.Date,
		Location:   item.Location,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
	}
}

func (row gameTableModel) entity() football.Game {
	return football.Game{
		ID:         row.ID,
		Date:       row.Date,
		Location:   row.Location,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

type lineUpTableModel struct {
	ID        int64     `db:"id,readonly"`
	GameID    int64     `db:"game_id"`
	TeamID    int64     `db:"team_id"`
	PlayerID  int64     `db:"player_id"`
	Position  string    `db:"position"`
	Spot      string    `db:"spot"`
	Status    int       `db:"status"`
	CreatedAt time.Time `db:"created_at,readonly"`
	UpdatedAt time.Time `db:"updated_at,readonly"`
}

func lineUpRowFromEntity(item football.LineUp) lineUpTableModel {
	return lineUpTableModel{
		ID:       item.ID,
		GameID:   item.GameID,
		TeamID:   item.TeamID,
		PlayerID: item.PlayerID,
		Position: item.Position,
		Spot:     item.Spot,
		Status:   int(item.Status),
	}
}

func (row lineUpTableModel) entity() football.LineUp {
	return football.LineUp{
		ID:        row.ID,
		GameID:    row.GameID,
		TeamID:    row.TeamID,
		PlayerID:  row.PlayerID,
		Position:  row.Position,
		Spot:      row.Spot,
		Status:    football.LineUpStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type weatherTableModel struct {
	ID          int64     `db:"id,readonly"`
	GameID      int64     `db:"game_id"`
	Temperature float64   `db:"temperature"`
	RainChance  float64   `db:"rain_chance"`
	WindSpeed   float64   `db:"wind_speed"`
	Icon        string    `db:"icon"`
	Status      int       `db:"status"`
	CreatedAt   time.Time `db:"created_at,readonly"`
	UpdatedAt   time.Time `db:"updated_at,readonly"`
}

func weatherRowFromEntity(item football.Weather) weatherTableModel {
	return weatherTableModel{
		ID:          item.ID,
		GameID:      item.GameID,
		Temperature: item.Temperature,
		RainChance:  item.RainChance,
		WindSpeed:   item.WindSpeed,
		Icon:        item.Icon,
		Status:      int(item.Status),
	}
}

func (row weatherTableModel) entity() football.Weather {
	return football.Weather{
		ID:          row.ID,
		GameID:      row.GameID,
		Temperature: row.Temperature,
		RainChance:  row.RainChance,
		WindSpeed:   row.WindSpeed,
		Icon:        row.Icon,
		Status:      football.WeatherStatus(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
