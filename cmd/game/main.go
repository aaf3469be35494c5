// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"go-galaga/internal/app"
	"go-galaga/internal/assets"
	"go-galaga/internal/config"
	"go-galaga/internal/input"
	"go-galaga/internal/ui"
	"go-galaga/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppGame связывает симуляцию с циклом ebiten: Update вызывается с
// частотой TPS, равной FPS из конфига, поэтому один тик — один кадр.
type AppGame struct {
	game     *app.Game
	renderer *render.Renderer
	hud      *ui.HUD
	view     app.View
	width    int
	height   int
}

func (a *AppGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.game.Update(pollInput())
	a.view = a.game.View()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, &a.view)
	a.hud.Draw(screen, &a.view)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// pollInput читает клавиатуру: стрелки или A/D — движение, пробел, W или
// стрелка вверх — огонь, Enter — подтверждение в меню.
func pollInput() input.State {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return input.State{
		Left:    pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:   pressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Fire:    pressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW),
		Confirm: pressed(ebiten.KeyEnter),
	}
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	pprofAddr := flag.String("pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatal(err)
	}
	if flags.Dump {
		if err := cfg.WriteTOML(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	fonts, err := assets.NewFontManager()
	if err != nil {
		log.Fatal(err)
	}
	defer fonts.Cleanup()

	game := app.NewGame(cfg)
	a := &AppGame{
		game:     game,
		renderer: render.NewRenderer(),
		hud:      ui.NewHUD(fonts, cfg.Screen.Width, cfg.Screen.Height),
		view:     game.View(),
		width:    cfg.Screen.Width,
		height:   cfg.Screen.Height,
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("Galaga")
	ebiten.SetTPS(cfg.Screen.FPS)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
