package dto

import "github.com/riskibarqy/matchday/internal/domain/football"

type Weather struct {
	GameID      int64                  `json:"gameId"`
	Temperature float64                `json:"temperature"`
	RainChance  float64                `json:"rainChance"`
	WindSpeed   float64                `json:"windSpeed"`
	Icon        string                 `json:"icon" validate:"max=50"`
	Status      football.WeatherStatus `json:"status" validate:"min=0,max=6"`
}

func WeatherFromEntity(item football.Weather) Weather {
	return Weather{
		GameID:      item.GameID,
		Temperature: item.Temperature,
		RainChance:  item.RainChance,
		WindSpeed:   item.WindSpeed,
		Icon:        item.Icon,
		Status:      item.Status,
	}
}

func WeatherToEntity(in Weather) football.Weather {
	return football.Weather{
		GameID:      in.GameID,
		Temperature: in.Temperature,
		RainChance:  in.RainChance,
		WindSpeed:   in.WindSpeed,
		Icon:        in.Icon,
		Status:      in.Status,
	}
}

func ApplyWeather(dst *football.Weather, in Weather) {
	dst.Temperature = in.Temperature
	dst.RainChance = in.RainChance
	dst.WindSpeed = in.WindSpeed
	dst.Icon = in.Icon
	dst.Status = in.Status
}
