// cmd/tdterm/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"bean-defense/internal/app"
	"bean-defense/internal/config"
	"bean-defense/internal/defs"
	"bean-defense/internal/launch"
	"bean-defense/internal/logger"
	"bean-defense/internal/termview"
	"bean-defense/pkg/geom"
)

const frameTime = time.Second / 60

type terminal struct {
	session *launch.Session
	game    *app.Game
	screen  tcell.Screen
	view    *termview.View

	cursorX, cursorY int
	paused           bool
	speed            int
	status           string
}

func main() {
	cfg := launch.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "tdterm.log", "log file, the screen is busy")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	session, err := launch.Start(cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()

	t := &terminal{
		session: session,
		game:    session.Game,
		screen:  screen,
		view:    termview.New(screen, session.Game.Map),
		speed:   1,
	}
	w, h := screen.Size()
	t.cursorX, t.cursorY = (w-termview.PanelCols)/2, h/2

	t.run()
	screen.Fini()

	if err := session.Close(); err != nil {
		log.Fatal(err)
	}
	s := session.Game.Snapshot()
	fmt.Printf("round %d, beans %d, lives %d\n", s.Round, s.Beans, s.Lives)
}

func (t *terminal) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !t.handle(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			if !t.paused {
				for i := 0; i < t.speed; i++ {
					t.game.Update(dt)
				}
			}
			t.draw()
		}
	}
}

func (t *terminal) cursor() geom.Point {
	return t.view.ToWorld(t.cursorX, t.cursorY)
}

func (t *terminal) draw() {
	status := t.status
	if t.paused {
		status = "PAUSED [p]"
	} else if t.speed > 1 {
		status = fmt.Sprintf("x%d  %s", t.speed, status)
	}
	t.view.Draw(t.game.Snapshot(), t.cursor(), status)
}

// handle maps a terminal event to intents; false quits.
func (t *terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		if !t.view.InField(x, y) {
			return true
		}
		t.cursorX, t.cursorY = x, y
		t.game.Enqueue(app.MovePreview(t.cursor()))
		if ev.Buttons()&tcell.Button1 != 0 {
			t.activate()
		}
	case *tcell.EventKey:
		return t.handleKey(ev)
	}
	return true
}

func (t *terminal) moveCursor(dx, dy int) {
	x, y := t.cursorX+dx, t.cursorY+dy
	if !t.view.InField(x, y) {
		return
	}
	t.cursorX, t.cursorY = x, y
	t.game.Enqueue(app.MovePreview(t.cursor()))
}

// activate places the tower in hand or opens the menu of the tower under the cursor.
func (t *terminal) activate() {
	if t.game.Snapshot().Preview != nil {
		p := t.cursor()
		t.status = "place: " + t.game.CheckPlacement(p).String()
		t.game.Enqueue(app.AttemptPlacement(p))
		return
	}
	t.status = ""
	t.game.Enqueue(app.OpenTowerMenu(t.cursor()))
}

func (t *terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		t.moveCursor(0, -1)
	case tcell.KeyDown:
		t.moveCursor(0, 1)
	case tcell.KeyLeft:
		t.moveCursor(-1, 0)
	case tcell.KeyRight:
		t.moveCursor(1, 0)
	case tcell.KeyEnter:
		t.activate()
	case tcell.KeyEscape:
		t.game.Enqueue(app.SelectTowerType(defs.TowerNone))
		t.game.Enqueue(app.CloseTowerMenu())
		t.status = ""
	case tcell.KeyRune:
		return t.handleRune(ev.Rune())
	}
	return true
}

func (t *terminal) handleRune(r rune) bool {
	switch {
	case r >= '1' && r <= '9':
		idx := int(r - '1')
		if idx < len(defs.PlaceableTowers) {
			tt := defs.PlaceableTowers[idx]
			if !t.game.IsUnlocked(tt) {
				t.status = fmt.Sprintf("%s: %s", tt, app.ReasonLocked)
				return true
			}
			t.status = ""
			t.game.Enqueue(app.SelectTowerType(tt))
			t.game.Enqueue(app.MovePreview(t.cursor()))
		}
		return true
	}
	switch r {
	case 'q':
		return false
	case ' ':
		t.activate()
	case 'd':
		t.upgrade(defs.UpgradeDamage)
	case 's':
		t.upgrade(defs.UpgradeAttackSpeed)
	case 'r':
		if s := t.game.Snapshot(); s.GameOver || s.GameWon {
			t.reset()
			return true
		}
		t.upgrade(defs.UpgradeRange)
	case 'R':
		t.reset()
	case 'x':
		t.game.Enqueue(app.SellSelectedTower())
	case 'p':
		t.paused = !t.paused
	case '+', '=':
		if t.speed < 4 {
			t.speed *= 2
		}
	case '-':
		if t.speed > 1 {
			t.speed /= 2
		}
	case 'm':
		if t.session.Audio.ToggleMute() {
			t.status = "sound off"
		} else {
			t.status = "sound on"
		}
	}
	return true
}

func (t *terminal) reset() {
	t.game.Enqueue(app.ResetIntent())
	t.status = "reset"
}

func (t *terminal) upgrade(kind defs.UpgradeKind) {
	if t.game.Snapshot().Selected == nil {
		return
	}
	t.game.Enqueue(app.PurchaseUpgrade(kind))
}
