package football

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const maxPlayerNameLength = 50

// Player belongs to exactly one team.
type Player struct {
	ID        int64
	TeamID    int64
	Team      *Team
	Number    int
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Player) Validate() error {
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}
	if p.Number <= 0 {
		return fmt.Errorf("player number must be greater than zero")
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("player first name is required")
	}
	if utf8.RuneCountInString(p.FirstName) > maxPlayerNameLength {
		return fmt.Errorf("player first name must be at most %d characters", maxPlayerNameLength)
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player last name is required")
	}
	if utf8.RuneCountInString(p.LastName) > maxPlayerNameLength {
		return fmt.Errorf("player last name must be at most %d characters", maxPlayerNameLength)
	}

	return nil
}
