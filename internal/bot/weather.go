package bot

import (
	"context"
	"errors"

	"github.com/j0lvera/botcenter/internal/weather"
	"github.com/rs/zerolog"
)

// ErrWeatherUnavailable is the only error FetchLiveWeather returns.
var ErrWeatherUnavailable = errors.New("weather service currently unavailable")

// Forecaster fetches the current reading for a location.
type Forecaster interface {
	Current(ctx context.Context, loc weather.Location) (weather.Reading, error)
}

// WeatherFetcher reports the live temperature for one region.
// It keeps no state between fetches.
type WeatherFetcher struct {
	Identity
	Region string

	location   weather.Location
	forecaster Forecaster
	logger     *zerolog.Logger
}

// NewWeatherFetcher creates a WeatherFetcher for region at loc.
func NewWeatherFetcher(
	name, version, region string,
	loc weather.Location,
	forecaster Forecaster,
	logger *zerolog.Logger,
) *WeatherFetcher {
	return &WeatherFetcher{
		Identity:   NewIdentity(name, version),
		Region:     region,
		location:   loc,
		forecaster: forecaster,
		logger:     logger,
	}
}

// FetchLiveWeather performs one fetch. Every failure collapses to
// ErrWeatherUnavailable; the cause is only logged.
func (w *WeatherFetcher) FetchLiveWeather(ctx context.Context) (Report, error) {
	reading, err := w.forecaster.Current(ctx, w.location)
	if err != nil {
		event := w.logger.Warn().Err(err).Str("region", w.Region)
		var fetchErr *weather.FetchError
		if errors.As(err, &fetchErr) {
			event = event.Str("stage", string(fetchErr.Stage))
		}
		event.Msg("weather fetch failed")
		return Report{}, ErrWeatherUnavailable
	}

	w.logger.Debug().
		Str("region", w.Region).
		Float64("temperature_f", reading.TemperatureFahrenheit).
		Msg("weather fetched")

	return Report{
		Region:                w.Region,
		TemperatureFahrenheit: reading.TemperatureFahrenheit,
	}, nil
}
