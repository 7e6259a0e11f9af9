package football

import "context"

// TeamRepository describes team persistence needs from use cases.
type TeamRepository interface {
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	Add(ctx context.Context, item *Team) error
	Update(ctx context.Context, item *Team) error
	Delete(ctx context.Context, item Team) error
	GetPaged(ctx context.Context, page, pageSize int, filter TeamFilter) ([]Team, int, error)
}

// PlayerRepository describes player persistence needs from use cases.
type PlayerRepository interface {
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Add(ctx context.Context, item *Player) error
	Update(ctx context.Context, item *Player) error
	Delete(ctx context.Context, item Player) error
	GetPagedByTeam(ctx context.Context, teamID int64, page, pageSize int) ([]Player, int, error)
}

// GameRepository describes game persistence needs from use cases.
type GameRepository interface {
	GetByID(ctx context.Context, id int64) (Game, bool, error)
	Add(ctx context.Context, item *Game) error
	Update(ctx context.Context, item *Game) error
	Delete(ctx context.Context, item Game) error
	GetPaged(ctx context.Context, page, pageSize int) ([]Game, int, error)
}

// LineUpRepository describes lineup persistence needs from use cases.
type LineUpRepository interface {
	GetByID(ctx context.Context, id int64) (LineUp, bool, error)
	Add(ctx context.Context, item *LineUp) error
	Update(ctx context.Context, item *LineUp) error
	Delete(ctx context.Context, item LineUp) error
	GetPagedByGame(ctx context.Context, gameID int64, page, pageSize int) ([]LineUp, int, error)
}

// WeatherRepository describes weather persistence needs from use cases.
type WeatherRepository interface {
	GetByGame(ctx context.Context, gameID int64) (Weather, bool, error)
	Add(ctx context.Context, item *Weather) error
	Update(ctx context.Context, item *Weather) error
	Delete(ctx context.Context, item Weather) error
}
