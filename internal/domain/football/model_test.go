package football

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestTeamValidate(t *testing.T) {
	valid := Team{Tricode: "ARS", Name: "Arsenal", Coach: "Mikel Arteta"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid team, got %v", err)
	}

	cases := map[string]Team{
		"missing tricode":   {Name: "Arsenal", Coach: "Mikel Arteta"},
		"short tricode":     {Tricode: "A", Name: "Arsenal", Coach: "Mikel Arteta"},
		"long tricode":      {Tricode: "ARSE", Name: "Arsenal", Coach: "Mikel Arteta"},
		"missing name":      {Tricode: "ARS", Coach: "Mikel Arteta"},
		"name too long":     {Tricode: "ARS", Name: strings.Repeat("a", 101), Coach: "Mikel Arteta"},
		"missing coach":     {Tricode: "ARS", Name: "Arsenal"},
		"coach too long":    {Tricode: "ARS", Name: "Arsenal", Coach: strings.Repeat("c", 101)},
		"blank name spaces": {Tricode: "ARS", Name: "   ", Coach: "Mikel Arteta"},
	}
	for name, item := range cases {
		t.Run(name, func(t *testing.T) {
			if err := item.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestPlayerValidateAndFullName(t *testing.T) {
	p := Player{TeamID: 1, Number: 7, FirstName: "Bukayo", LastName: "Saka"}
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}
	if got := p.FullName(); got != "Bukayo Saka" {
		t.Fatalf("unexpected full name: %q", got)
	}

	p.Number = 0
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for zero number")
	}
	p.Number = 7
	p.LastName = strings.Repeat("x", 51)
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for long last name")
	}
}

func TestLineUpValidate_RequiresAllReferences(t *testing.T) {
	base := LineUp{GameID: 1, TeamID: 2, PlayerID: 3, Status: LineUpStatusStarter}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid lineup, got %v", err)
	}

	missingTeam := base
	missingTeam.TeamID = 0
	if err := missingTeam.Validate(); err == nil {
		t.Fatalf("expected error for zero team id")
	}

	missingPlayer := base
	missingPlayer.PlayerID = 0
	if err := missingPlayer.Validate(); err == nil {
		t.Fatalf("expected error for zero player id")
	}

	missingGame := base
	missingGame.GameID = 0
	if err := missingGame.Validate(); err == nil {
		t.Fatalf("expected error for zero game id")
	}
}

func TestTeamFilterMatches(t *testing.T) {
	team := Team{Name: "Manchester City", Coach: "Pep Guardiola"}

	if !(TeamFilter{}).Matches(team) {
		t.Fatalf("empty filter must match")
	}
	if !(TeamFilter{Name: "city"}).Matches(team) {
		t.Fatalf("expected case-insensitive name match")
	}
	if !(TeamFilter{Name: " Manchester ", Coach: "PEP"}).Matches(team) {
		t.Fatalf("expected combined match")
	}
	if (TeamFilter{Name: "city", Coach: "klopp"}).Matches(team) {
		t.Fatalf("filters must be combined with AND")
	}
}

func TestCheckWindow(t *testing.T) {
	if err := CheckWindow(1, 1); err != nil {
		t.Fatalf("expected valid window, got %v", err)
	}
	if err := CheckWindow(0, 10); !errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("expected ErrPageOutOfRange for page 0, got %v", err)
	}
	if err := CheckWindow(2, 0); !errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("expected ErrPageOutOfRange for page size 0, got %v", err)
	}
	if got, ok := Offset(3, 10); !ok || got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
	if _, ok := Offset(math.MaxInt/10, 20); ok {
		t.Fatalf("expected overflowing offset to be reported")
	}
	if got, ok := Offset(math.MaxInt/20+1, 20); !ok || got != math.MaxInt/20*20 {
		t.Fatalf("expected largest representable offset, got %d ok=%v", got, ok)
	}
}

func TestStatusStrings(t *testing.T) {
	if LineUpStatusBench.String() != "Bench" {
		t.Fatalf("unexpected lineup status string %q", LineUpStatusBench.String())
	}
	if WeatherStatusRain.String() != "Rain" {
		t.Fatalf("unexpected weather status string %q", WeatherStatusRain.String())
	}
	if WeatherStatus(42).String() != "WeatherStatus(42)" {
		t.Fatalf("unexpected fallback string %q", WeatherStatus(42).String())
	}
}
