package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/worldfile/internal/header"
	"github.com/udisondev/worldfile/internal/infodb"
	"github.com/udisondev/worldfile/internal/wconfig"
	"github.com/udisondev/worldfile/internal/worldfile"
)

const ConfigPath = "config/worldcat.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	worldPath := flag.String("world", "", "path to the world (.wld) file")
	playerPath := flag.String("player", "", "path to the player (.plr) file; enables the seen-tile overlay from its companion .map directory")
	flag.Parse()

	cfgPath := ConfigPath
	if p := os.Getenv("WORLDCAT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := wconfig.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("worldcat starting")

	if *worldPath == "" {
		return fmt.Errorf("missing required -world flag")
	}

	db := infodb.NewStatic(infodb.StaticConfig{TileTypeCount: cfg.InfoDB.TileTypeCount})
	decoder := worldfile.NewDecoder(db, header.DefaultSchema())

	slog.Info("decoding world", "path", *worldPath, "player_path", *playerPath)

	for ev := range decoder.Load(ctx, *worldPath, *playerPath) {
		switch ev.Kind {
		case worldfile.EventStatus:
			slog.Info(ev.Status)
		case worldfile.EventLoaded:
			w := ev.World
			slog.Info("loaded",
				"tiles_wide", w.TilesWide,
				"tiles_high", w.TilesHigh,
				"chests", len(w.Chests),
				"signs", len(w.Signs),
				"npcs", len(w.Npcs),
				"entities", len(w.Entities),
			)
		case worldfile.EventError:
			return fmt.Errorf("decoding world: %w", ev.Err)
		}
	}

	return nil
}
