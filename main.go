// Optics Bench: an interactive thin-lens ray diagram for exploring the
// HMD magnifier and projector regimes of a simple lens-and-display system.
package main

import (
	"log"

	"optics-bench/internal/app"
	"optics-bench/internal/config"
	"optics-bench/ui/mainwindow"
	"optics-bench/ui/prefs"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	fyneApp := fyneapp.NewWithID("net.optics-bench")
	fyneApp.Settings().SetTheme(&app.OpticsBenchTheme{})

	state := app.NewState(cfg)
	p := prefs.Load()

	win := mainwindow.New(fyneApp, state, p)

	// Development convenience: offer a restart when the binary on disk is
	// rebuilt underneath the running instance.
	if hr := app.NewHotReloader(cfg); hr != nil {
		hr.OnNewBinary(func() {
			fyne.Do(func() {
				dialog.ShowConfirm("New build detected",
					"A newer binary is available. Restart now?",
					func(restart bool) {
						if restart {
							if err := hr.Restart(); err != nil {
								log.Printf("restart failed: %v", err)
							}
							return
						}
						hr.ResetBaseline()
						hr.Start()
					}, win)
			})
		})
		hr.Start()
	}

	win.ShowAndRun()
}
