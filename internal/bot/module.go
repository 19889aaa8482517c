package bot

import (
	"github.com/j0lvera/botcenter/internal/config"
	"github.com/j0lvera/botcenter/internal/weather"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Params for creating the bots
type Params struct {
	fx.In

	Config  *config.Config
	Weather *weather.Client
	Logger  zerolog.Logger
}

// Result of creating the bots
type Result struct {
	fx.Out

	Chat    *ChatResponder
	Weather *WeatherFetcher
	Travel  *TravelAdvisor
}

// New creates the three bots from configuration. They live for the whole process.
func New(p Params) Result {
	bots := p.Config.Bots
	log := p.Logger.With().Str("module", "bot").Logger()

	destinations := make([]Destination, 0, len(bots.Travel.Destinations))
	for _, d := range bots.Travel.Destinations {
		destinations = append(destinations, Destination{City: d.City, Tip: d.Tip})
	}

	return Result{
		Chat: NewChatResponder(bots.Chat.Name, bots.Chat.Version, bots.Chat.Language),
		Weather: NewWeatherFetcher(
			bots.Weather.Name,
			bots.Weather.Version,
			bots.Weather.Region,
			weather.Location{
				Latitude:  bots.Weather.Lat(),
				Longitude: bots.Weather.Lon(),
			},
			p.Weather,
			&log,
		),
		Travel: NewTravelAdvisor(bots.Travel.Name, bots.Travel.Version, destinations),
	}
}

func Module() fx.Option {
	return fx.Module(
		"bot",
		fx.Provide(
			New,
		),
	)
}
