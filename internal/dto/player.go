package dto

import "github.com/riskibarqy/matchday/internal/domain/football"

type Player struct {
	ID        int64  `json:"id"`
	TeamID    int64  `json:"teamId"`
	Number    int    `json:"number" validate:"gt=0"`
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	FullName  string `json:"fullName" validate:"-"`
}

func PlayerFromEntity(item football.Player) Player {
	return Player{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Number:    item.Number,
		FirstName: item.FirstName,
		LastName:  item.LastName,
		FullName:  item.FullName(),
	}
}

func PlayersFromEntities(items []football.Player) []Player {
	out := make([]Player, 0, len(items))
	for _, item := range items {
		out = append(out, PlayerFromEntity(item))
	}
	return out
}

// PlayerToEntity ignores FullName, which is always derived.
func PlayerToEntity(in Player) football.Player {
	return football.Player{
		ID:        in.ID,
		TeamID:    in.TeamID,
		Number:    in.Number,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
}

// ApplyPlayer leaves TeamID as loaded; the owning team comes from the route.
func ApplyPlayer(dst *football.Player, in Player) {
	dst.Number = in.Number
	dst.FirstName = in.FirstName
	dst.LastName = in.LastName
}
