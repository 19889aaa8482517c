package console

import (
	"context"
	"os"

	"github.com/j0lvera/botcenter/internal/bot"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Chat    *bot.ChatResponder
	Weather *bot.WeatherFetcher
	Travel  *bot.TravelAdvisor
	Logger  zerolog.Logger
}

type Result struct {
	fx.Out

	Dispatcher *Dispatcher
	Roster     []bot.Bot
}

// New creates the dispatcher on the process's stdin and stdout.
func New(p Params) Result {
	log := p.Logger.With().Str("module", "console").Logger()

	return Result{
		Dispatcher: NewDispatcher(
			NewLineReader(os.Stdin, os.Stdout),
			os.Stdout,
			p.Chat,
			p.Weather,
			p.Travel,
			&log,
		),
		Roster: []bot.Bot{p.Chat, p.Weather, p.Travel},
	}
}

// Register runs the dispatcher once the app has started and shuts the app
// down when the dispatcher reaches Exit.
func Register(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	d *Dispatcher,
	roster []bot.Bot,
	chat *bot.ChatResponder,
	log zerolog.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				for _, b := range roster {
					log.Info().
						Str("bot", b.Name()).
						Str("version", b.Version()).
						Msg("bot online")
				}
				log.Debug().Str("language", chat.Language).Msg("chat language")

				log.Info().Msg("starting command center...")
				go func() {
					if err := d.Run(ctx); err != nil {
						log.Error().Err(err).Msg("command center stopped with error")
					}
					if err := sd.Shutdown(); err != nil {
						log.Error().Err(err).Msg("unable to shut down")
					}
				}()
				return nil
			},
			OnStop: func(context.Context) error {
				log.Info().Msg("stopping command center...")
				cancel()
				return d.Close()
			},
		},
	)
}

func Module() fx.Option {
	return fx.Module(
		"console",
		fx.Provide(
			New,
		),
		fx.Invoke(
			Register,
		),
	)
}
