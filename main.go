package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/gmehub/gme-app/internal/api"
	"github.com/gmehub/gme-app/internal/config"
	"github.com/gmehub/gme-app/internal/dispatch"
	"github.com/gmehub/gme-app/internal/session"
	"github.com/gmehub/gme-app/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.gmehub.gme-app"
	AppName = "GME App"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	cfg, err := config.Load(version)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	logger.Info("configured services",
		zap.String("management_url", cfg.ManagementURL),
		zap.String("video_service_url", cfg.VideoServiceURL),
		zap.String("audio_service_url", cfg.AudioServiceURL),
	)

	client, err := api.NewClient(
		cfg.ManagementURL,
		cfg.Timeout(),
		cfg.SessionCookieName,
		version,
		logger.Named("api"),
	)
	if err != nil {
		logger.Fatal("failed to create management client", zap.Error(err))
	}

	audio := api.NewAudioClient(
		cfg.AudioServiceURL,
		cfg.AudioServiceAPIKey,
		cfg.Timeout(),
		client.Jar(),
		version,
		logger.Named("audio"),
	)

	store := session.NewStore(cfg.AppDataDir, logger.Named("session"))

	gmeApp := app.NewWithID(AppID)
	gmeApp.Settings().SetTheme(ui.NewCompactTheme())

	window := gmeApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	dispatcher := dispatch.New(cfg.Timeout(), fyne.Do, logger.Named("dispatch"))
	settings := config.NewSettings(gmeApp)

	shell := ui.NewShell(window, client, audio, store, dispatcher, settings, logger.Named("ui"))
	shell.Start()

	window.ShowAndRun()
}
