package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TeamRepository --dir ../domain/football --output domain/football --outpkg footballmock --filename team_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayerRepository --dir ../domain/football --output domain/football --outpkg footballmock --filename player_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GameRepository --dir ../domain/football --output domain/football --outpkg footballmock --filename game_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LineUpRepository --dir ../domain/football --output domain/football --outpkg footballmock --filename lineup_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name WeatherRepository --dir ../domain/football --output domain/football --outpkg footballmock --filename weather_repository_mock.go
