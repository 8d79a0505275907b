package domain

import (
	"context"
	"encoding/json"
)

// WeatherProvider fetches the current observation for a city.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (Observation, error)
}

// AnimationLoader fetches an animation document by URL.
type AnimationLoader interface {
	LoadAnimation(ctx context.Context, url string) (json.RawMessage, error)
}
