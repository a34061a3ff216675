// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"bean-defense/internal/config"
	"bean-defense/internal/launch"
	"bean-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	cfg := launch.RegisterFlags(flag.CommandLine)
	menu := flag.Bool("menu", true, "start from the map menu instead of the game")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	sm := state.NewStateMachine()
	if *menu {
		sm.SetState(state.NewMenuState(sm, *cfg))
	} else {
		session, err := launch.Start(cfg)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(state.NewGameState(sm, session, *cfg))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Bean Defense")
	err := ebiten.RunGame(app)
	sm.SetState(nil) // закрывает сессию и пишет реплей
	if err != nil {
		log.Fatal(err)
	}
}
