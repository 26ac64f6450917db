//go:build js && wasm

// Command sitewasm is the browser entry point for the site. It applies the
// saved theme, binds the theme controls and keeps anchor scrolling clear of
// the fixed header.
//
//	GOOS=js GOARCH=wasm go build -o assets/site.wasm ./cmd/sitewasm
package main

import (
	"go.uber.org/zap"

	"delizur.dev/internal/browser"
	"delizur.dev/internal/logging"
	"delizur.dev/internal/scroll"
	"delizur.dev/internal/theme"
)

func main() {
	logger, err := logging.New("")
	if err != nil {
		logger = zap.NewNop()
	}

	browser.OnReady(func() {
		themes := theme.NewController(browser.NewDocument(), browser.NewLocalStorage(), browser.NewColorScheme(), logger)
		if toggle, ok := browser.ToggleControl(); ok {
			themes.Start(toggle)
		} else {
			themes.Init()
		}
		for _, s := range browser.Setters() {
			themes.BindSetter(s.Control, s.Theme)
		}

		offsets := scroll.NewCoordinator(browser.NewPage(), browser.NewWindow(), scroll.ClockScheduler{}, logger)
		offsets.Start()
		offsets.InterceptAnchorClicks()
	})

	// Callbacks registered above need the Go runtime alive.
	select {}
}
