// Command client is a console front end over the API: it hydrates the
// state store from the configured session file, fetches the aggregate
// counters and reports the resulting state.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/namsral/flag"

	"newshub/config"
	"newshub/internal/appstate"
	"newshub/internal/remote"
	"newshub/internal/ui"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	cfg      config.Config
	lg       *slog.Logger
)

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	store := appstate.NewStore(appstate.NewFileSession(cfg.Session.File))

	client := remote.NewClient(cfg.Client.BaseURL, nil)
	shell := ui.NewShell(
		store,
		remote.NewNewsService(client),
		remote.NewUsersService(client),
		remote.NewArtistsService(client),
		&consoleNavigator{log: lg},
		lg,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	shell.RecordNavigation(ui.RouteHome)
	shell.Bootstrap(ctx)

	state := store.Current()
	lg.Info("state",
		"logged", state.Logged,
		"user", state.User.Name,
		"news", state.NewsCount,
		"users", state.UserCount,
		"artists", state.ArtistCount,
	)
}

type consoleNavigator struct {
	log *slog.Logger
}

func (n *consoleNavigator) NavigateTo(url string) {
	n.log.Info("navigate", "url", url)
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("client init failed", "error", err)
		os.Exit(1)
	}
}
