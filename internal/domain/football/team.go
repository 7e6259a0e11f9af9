package football

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxTeamNameLength  = 100
	maxCoachNameLength = 100
)

// Team is a club that owns a roster of players and takes part in games.
type Team struct {
	ID        int64
	Tricode   string
	Name      string
	Coach     string
	Players   []Player
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Team) Validate() error {
	tricodeLength := utf8.RuneCountInString(strings.TrimSpace(t.Tricode))
	if tricodeLength == 0 {
		return fmt.Errorf("team tricode is required")
	}
	if tricodeLength < 2 || tricodeLength > 3 {
		return fmt.Errorf("team tricode must be 2 to 3 characters, got %d", tricodeLength)
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if utf8.RuneCountInString(t.Name) > maxTeamNameLength {
		return fmt.Errorf("team name must be at most %d characters", maxTeamNameLength)
	}
	if strings.TrimSpace(t.Coach) == "" {
		return fmt.Errorf("team coach is required")
	}
	if utf8.RuneCountInString(t.Coach) > maxCoachNameLength {
		return fmt.Errorf("team coach must be at most %d characters", maxCoachNameLength)
	}

	return nil
}

// TeamFilter narrows a team listing. Empty fields are ignored.
type TeamFilter struct {
	Name  string
	Coach string
}

func (f TeamFilter) Normalized() TeamFilter {
	return TeamFilter{
		Name:  strings.TrimSpace(f.Name),
		Coach: strings.TrimSpace(f.Coach),
	}
}

// Matches applies the filter the way the stores do: case-insensitive substring
// on every non-empty field.
func (f TeamFilter) Matches(t Team) bool {
	f = f.Normalized()
	if f.Name != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Coach != "" && !strings.Contains(strings.ToLower(t.Coach), strings.ToLower(f.Coach)) {
		return false
	}
	return true
}
