package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"herd/internal/game"
)

// frameInterval paces the simulation at roughly 60 ticks per second.
const frameInterval = 16 * time.Millisecond

// Run takes over the terminal and drives scene until the user quits.
func Run(scene *game.Scene, log logrus.FieldLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	loop(screen, scene, frameInterval)
	log.WithField("frames", scene.Frame()).Info("terminal closed")
	return nil
}

// loop polls input on its own goroutine and ticks the scene on a timer. It
// returns once a quit key arrives or the screen stops delivering events.
func loop(screen tcell.Screen, scene *game.Scene, interval time.Duration) {
	view := NewView(screen)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, quit := commandFor(ev)
				if quit {
					return
				}
				if cmd != game.CmdNone {
					scene.Apply(cmd)
				}
			case *tcell.EventResize:
				view.Resize()
				screen.Sync()
			}

		case <-ticker.C:
			view.Clear()
			scene.Tick(view)
			view.DrawHUD(scene)
			screen.Show()
		}
	}
}
