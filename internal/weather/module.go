package weather

import (
	"context"
	"net/http"

	"github.com/j0lvera/botcenter/internal/config"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Params for creating the weather client
type Params struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
}

// Result of creating the weather client
type Result struct {
	fx.Out

	Client *Client
}

// New creates the process-wide HTTP client and the forecast client on top of it.
func New(lc fx.Lifecycle, p Params) Result {
	httpClient := &http.Client{Timeout: p.Config.WeatherTimeout}

	lc.Append(
		fx.Hook{
			OnStop: func(ctx context.Context) error {
				p.Logger.Debug().Msg("closing weather http client")
				httpClient.CloseIdleConnections()
				return nil
			},
		},
	)

	return Result{
		Client: NewClient(httpClient, p.Config.WeatherURL),
	}
}

func Module() fx.Option {
	return fx.Module(
		"weather",
		fx.Provide(
			New,
		),
	)
}
