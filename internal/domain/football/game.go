package football

import "time"

// Game is a fixture between a home and an away team.
type Game struct {
	ID         int64
	Date       time.Time
	Location   string
	HomeTeamID int64
	AwayTeamID int64
	HomeTeam   *Team
	AwayTeam   *Team
	LineUps    []LineUp
	Weather    *Weather
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
