package main

import (
	"github.com/j0lvera/botcenter/internal/bot"
	"github.com/j0lvera/botcenter/internal/config"
	"github.com/j0lvera/botcenter/internal/console"
	"github.com/j0lvera/botcenter/internal/log"
	"github.com/j0lvera/botcenter/internal/weather"
	"go.uber.org/fx"
)

func modules() fx.Option {
	return fx.Options(
		config.Module(),
		log.Module(),
		weather.Module(),
		bot.Module(),
		console.Module(),
	)
}

func main() {

	fx.New(
		fx.WithLogger(log.EventLogger),
		modules(),
	).Run()
}
