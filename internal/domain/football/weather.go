package football

import (
	"fmt"
	"time"
)

type WeatherStatus int

const (
	WeatherStatusUnknown WeatherStatus = iota
	WeatherStatusClear
	WeatherStatusCloudy
	WeatherStatusRain
	WeatherStatusStorm
	WeatherStatusSnow
	WeatherStatusFog
)

var weatherStatusNames = map[WeatherStatus]string{
	WeatherStatusUnknown: "Unknown",
	WeatherStatusClear:   "Clear",
	WeatherStatusCloudy:  "Cloudy",
	WeatherStatusRain:    "Rain",
	WeatherStatusStorm:   "Storm",
	WeatherStatusSnow:    "Snow",
	WeatherStatusFog:     "Fog",
}

func (s WeatherStatus) String() string {
	if name, ok := weatherStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("WeatherStatus(%d)", int(s))
}

// Weather is the forecast attached to a single game.
type Weather struct {
	ID          int64
	GameID      int64
	Temperature float64
	RainChance  float64
	WindSpeed   float64
	Icon        string
	Status      WeatherStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
