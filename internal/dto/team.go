// Package dto holds the transfer shapes exchanged with callers and the
// explicit conversions between them and the football entities.
package dto

import "github.com/riskibarqy/matchday/internal/domain/football"

type Team struct {
	ID      int64    `json:"id"`
	Tricode string   `json:"tricode" validate:"required,min=2,max=3"`
	Name    string   `json:"name" validate:"required,max=100"`
	Coach   string   `json:"coach" validate:"required,max=100"`
	Players []Player `json:"players" validate:"-"`
}

func TeamFromEntity(item football.Team) Team {
	return Team{
		ID:      item.ID,
		Tricode: item.Tricode,
		Name:    item.Name,
		Coach:   item.Coach,
		Players: PlayersFromEntities(item.Players),
	}
}

func TeamsFromEntities(items []football.Team) []Team {
	out := make([]Team, 0, len(items))
	for _, item := range items {
		out = append(out, TeamFromEntity(item))
	}
	return out
}

// TeamToEntity builds a new team from scalar fields only. Nested players are
// created through their own endpoint.
func TeamToEntity(in Team) football.Team {
	return football.Team{
		ID:      in.ID,
		Tricode: in.Tricode,
		Name:    in.Name,
		Coach:   in.Coach,
	}
}

// ApplyTeam overlays caller fields on a loaded team. Identity, audit fields and
// the player collection are left as loaded.
func ApplyTeam(dst *football.Team, in Team) {
	dst.Tricode = in.Tricode
	dst.Name = in.Name
	dst.Coach = in.Coach
}
