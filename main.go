package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/homeboard/homeboard/internal/config"
	"github.com/homeboard/homeboard/internal/platform"
	"github.com/homeboard/homeboard/internal/store"
	"github.com/homeboard/homeboard/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.homeboard.app"

func main() {
	log.Printf("Home Board v%s starting...", version)

	env := config.LoadEnv()

	myApp := app.NewWithID(AppID)

	prefs := config.NewPrefs(myApp)
	st := store.New(prefs)
	st.Load()
	defer st.Close()

	myWindow := myApp.NewWindow("Home Board")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(myWindow, myApp, st, platform.NewNetConfigurator(), env)

	myWindow.ShowAndRun()
}
