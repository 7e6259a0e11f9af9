package dto

import "github.com/riskibarqy/matchday/internal/domain/football"

type LineUp struct {
	ID       int64                 `json:"id"`
	GameID   int64                 `json:"gameId"`
	TeamID   int64                 `json:"teamId"`
	Player   Player                `json:"player" validate:"-"`
	Position string                `json:"position" validate:"max=50"`
	Spot     string                `json:"spot" validate:"max=50"`
	Status   football.LineUpStatus `json:"status" validate:"oneof=1 2"`
}

func LineUpFromEntity(item football.LineUp) LineUp {
	out := LineUp{
		ID:       item.ID,
		GameID:   item.GameID,
		TeamID:   item.TeamID,
		Player:   Player{ID: item.PlayerID, TeamID: item.TeamID},
		Position: item.Position,
		Spot:     item.Spot,
		Status:   item.Status,
	}
	if item.Player != nil {
		out.Player = PlayerFromEntity(*item.Player)
	}
	return out
}

func LineUpsFromEntities(items []football.LineUp) []LineUp {
	out := make([]LineUp, 0, len(items))
	for _, item := range items {
		out = append(out, LineUpFromEntity(item))
	}
	return out
}

// LineUpToEntity reads the player id from the nested player. Game, Team and
// Player navigations are populated by the store on re-read.
func LineUpToEntity(in LineUp) football.LineUp {
	return football.LineUp{
		ID:       in.ID,
		GameID:   in.GameID,
		TeamID:   in.TeamID,
		PlayerID: in.Player.ID,
		Position: in.Position,
		Spot:     in.Spot,
		Status:   in.Status,
	}
}

// ApplyLineUp leaves GameID as loaded; a lineup never moves between games.
func ApplyLineUp(dst *football.LineUp, in LineUp) {
	dst.TeamID = in.TeamID
	dst.PlayerID = in.Player.ID
	dst.Position = in.Position
	dst.Spot = in.Spot
	dst.Status = in.Status
}
