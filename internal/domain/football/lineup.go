package football

import (
	"fmt"
	"time"
)

// LineUpStatus tags a player as starting or on the bench for a game.
type LineUpStatus int

const (
	LineUpStatusStarter LineUpStatus = 1
	LineUpStatusBench   LineUpStatus = 2
)

func (s LineUpStatus) String() string {
	switch s {
	case LineUpStatusStarter:
		return "Starter"
	case LineUpStatusBench:
		return "Bench"
	default:
		return fmt.Sprintf("LineUpStatus(%d)", int(s))
	}
}

// LineUp places one player of one team into a game.
type LineUp struct {
	ID        int64
	GameID    int64
	TeamID    int64
	PlayerID  int64
	Game      *Game
	Team      *Team
	Player    *Player
	Position  string
	Spot      string
	Status    LineUpStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the create-time invariant: all three references are set.
func (l LineUp) Validate() error {
	if l.PlayerID == 0 {
		return fmt.Errorf("lineup player id is required")
	}
	if l.TeamID == 0 {
		return fmt.Errorf("lineup team id is required")
	}
	if l.GameID == 0 {
		return fmt.Errorf("lineup game id is required")
	}
	return nil
}
