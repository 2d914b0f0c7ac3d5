package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	shortener "github.com/ytget/url-shortener/internal/app"
	"github.com/ytget/url-shortener/internal/config"
	"github.com/ytget/url-shortener/internal/logger"
	"github.com/ytget/url-shortener/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.url-shortener"
	AppName = "URL Shortener"

	WindowWidth  = 560
	WindowHeight = 420
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting", zap.String("app", AppName), zap.String("version", version))

	services, err := shortener.NewApp(cfg, log)
	if err != nil {
		log.Fatal("assemble shortener", zap.Error(err))
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewRootUI(myWindow, myApp, services.Controller, ui.BackendInfo{
		Endpoint: services.Endpoint(),
		Contract: services.Contract(),
	}, log)

	myWindow.ShowAndRun()
}
