package main

import (
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/circlerefresh/internal/config"
	"github.com/ytget/circlerefresh/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.circlerefresh"
	AppName = "Circle Refresh"

	// ConfigEnv names an optional config file
	ConfigEnv = "CIRCLEREFRESH_CONFIG"

	WindowWidth  = 420
	WindowHeight = 640
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	opts, err := config.Load(os.Getenv(ConfigEnv))
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		opts = config.DefaultOptions()
	}

	myApp := app.NewWithID(AppID)

	accent, err := config.ParseColor(opts.BackgroundColor)
	if err != nil {
		log.Printf("invalid accent color: %v", err)
	}
	myApp.Settings().SetTheme(ui.NewCompactTheme(opts))
	if icon := ui.IconResource(accent); icon != nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewRootUI(myWindow, myApp, opts)

	myWindow.ShowAndRun()
}
