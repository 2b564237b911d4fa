package tui

import (
	"log/slog"
	"time"

	"github.com/aalvaropc/petspeak/internal/ports"
)

type Deps struct {
	Assets ports.AssetResolver

	Logger     *slog.Logger
	Debug      bool
	LogPath    string
	LogStarted time.Time
}
