package main

import (
	"fmt"
	"io"
	"os"

	"github.com/riskibarqy/matchday/internal/dto"
	"github.com/riskibarqy/matchday/internal/usecase"
	"gopkg.in/yaml.v3"
)

type rosterFile struct {
	Teams []rosterTeam `yaml:"teams"`
}

type rosterTeam struct {
	Tricode string         `yaml:"tricode"`
	Name    string         `yaml:"name"`
	Coach   string         `yaml:"coach"`
	Players []rosterPlayer `yaml:"players"`
}

type rosterPlayer struct {
	Number    int    `yaml:"number"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

func loadRosterFile(path string) ([]usecase.RosterTeam, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	return parseRoster(f)
}

func parseRoster(r io.Reader) ([]usecase.RosterTeam, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file rosterFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("roster is empty")
		}
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	out := make([]usecase.RosterTeam, 0, len(file.Teams))
	seen := make(map[string]struct{}, len(file.Teams))
	for _, team := range file.Teams {
		if _, dup := seen[team.Tricode]; dup {
			return nil, fmt.Errorf("roster lists team %q twice", team.Tricode)
		}
		seen[team.Tricode] = struct{}{}

		players := make([]dto.Player, 0, len(team.Players))
		for _, p := range team.Players {
			players = append(players, dto.Player{
				Number:    p.Number,
				FirstName: p.FirstName,
				LastName:  p.LastName,
			})
		}
		out = append(out, usecase.RosterTeam{
			Team: dto.Team{
				Tricode: team.Tricode,
				Name:    team.Name,
				Coach:   team.Coach,
			},
			Players: players,
		})
	}

	return out, nil
}
