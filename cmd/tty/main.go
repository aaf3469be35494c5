// cmd/tty/main.go
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"go-galaga/internal/app"
	"go-galaga/internal/component"
	"go-galaga/internal/config"
	"go-galaga/internal/event"
	"go-galaga/internal/input"
	"go-galaga/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

// Терминал не сообщает об отпускании клавиш, поэтому клавиша считается
// зажатой, пока от неё приходят повторы не реже holdWindow.
const holdWindow = 150 * time.Millisecond

type key int

const (
	keyLeft key = iota
	keyRight
	keyFire
)

// TTYGame — терминальный хост: та же симуляция, отрисовка символами.
type TTYGame struct {
	screen        tcell.Screen
	width, height int

	game     *app.Game
	sounds   *Sounds
	lastSeen map[key]time.Time
	confirm  bool
}

func NewTTYGame(cfg config.Config, logger *log.Logger) (*TTYGame, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	t := &TTYGame{
		screen:   screen,
		lastSeen: make(map[key]time.Time),
	}
	t.width, t.height = screen.Size()

	dispatcher := event.NewDispatcher()
	t.sounds = NewSounds(logger)
	t.sounds.Attach(dispatcher)

	t.game = app.NewGame(cfg, app.WithLogger(logger), app.WithDispatcher(dispatcher))
	return t, nil
}

// handleInput returns false when the player asked to quit.
func (t *TTYGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		now := time.Now()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			t.lastSeen[keyLeft] = now
		case tcell.KeyRight:
			t.lastSeen[keyRight] = now
		case tcell.KeyUp:
			t.lastSeen[keyFire] = now
		case tcell.KeyEnter:
			t.confirm = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'a', 'A':
				t.lastSeen[keyLeft] = now
			case 'd', 'D':
				t.lastSeen[keyRight] = now
			case ' ', 'w', 'W':
				t.lastSeen[keyFire] = now
			case 'q', 'Q':
				return false
			}
		}
	case *tcell.EventResize:
		t.width, t.height = t.screen.Size()
		t.screen.Sync()
	}
	return true
}

func (t *TTYGame) pollInput(now time.Time) input.State {
	held := func(k key) bool {
		seen, ok := t.lastSeen[k]
		return ok && now.Sub(seen) <= holdWindow
	}
	in := input.State{
		Left:    held(keyLeft),
		Right:   held(keyRight),
		Fire:    held(keyFire),
		Confirm: t.confirm,
	}
	t.confirm = false
	return in
}

// cell переводит координаты поля в клетку терминала.
func (t *TTYGame) cell(v *app.View, x, y float64) (int, int) {
	return int(x * float64(t.width) / float64(v.Width)), int(y * float64(t.height) / float64(v.Height))
}

func (t *TTYGame) fillBox(v *app.View, box geom.Rect, r rune, style tcell.Style) {
	x0, y0 := t.cell(v, box.X, box.Y)
	x1, y1 := t.cell(v, box.X+box.W, box.Y+box.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if x >= 0 && x < t.width && y >= 0 && y < t.height {
				t.screen.SetContent(x, y, r, nil, style)
			}
		}
	}
}

func (t *TTYGame) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *TTYGame) drawCentered(y int, s string, style tcell.Style) {
	t.drawText((t.width-len(s))/2, y, s, style)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *TTYGame) draw(v *app.View) {
	t.screen.Clear()
	bg := tcell.StyleDefault.Background(rgb(config.BackgroundColor))

	for _, s := range v.Stars {
		x, y := t.cell(v, s.Pos.X(), s.Pos.Y())
		t.screen.SetContent(x, y, '.', nil, bg.Foreground(rgb(config.StarColor)))
	}
	for _, e := range v.Enemies {
		r, clr := 'v', config.NormalBody
		if e.Kind == component.Boss {
			r, clr = 'W', config.BossBody
		}
		t.fillBox(v, e.Box, r, bg.Foreground(rgb(clr)))
	}
	if v.HasPlayer && v.Player.Visible {
		t.fillBox(v, v.Player.Box, 'A', bg.Foreground(rgb(config.PlayerColor)))
	}
	for _, b := range v.Bullets {
		clr := config.PlayerBullet
		if b.Owner == component.EnemyOwned {
			clr = config.EnemyBullet
		}
		t.fillBox(v, b.Box, '|', bg.Foreground(rgb(clr)))
	}

	text := bg.Foreground(rgb(config.TextLightColor))
	mid := t.height / 2
	switch v.Phase {
	case component.MenuPhase:
		t.drawCentered(mid-2, "G A L A G A", bg.Foreground(rgb(config.TitleColor)).Bold(true))
		t.drawCentered(mid, "Press SPACE or ENTER to start", text)
		t.drawCentered(mid+1, "Arrows/A/D to move, SPACE to fire, Q to quit", text)
		if v.HighScore > 0 {
			t.drawCentered(mid+3, fmt.Sprintf("High score: %d", v.HighScore), text)
		}
	case component.PlayingPhase:
		t.drawText(0, 0, fmt.Sprintf("Score: %d  Wave: %d", v.Score, v.Wave), text)
		if v.HasPlayer {
			lives := fmt.Sprintf("Lives: %d", v.Player.Lives)
			t.drawText(t.width-len(lives), 0, lives, text)
		}
	case component.GameOverPhase:
		t.drawCentered(mid-2, "GAME OVER", bg.Foreground(rgb(config.GameOverColor)).Bold(true))
		t.drawCentered(mid, fmt.Sprintf("Score: %d", v.Score), text)
		t.drawCentered(mid+1, "Press SPACE or ENTER to continue", text)
	}
	t.screen.Show()
}

func (t *TTYGame) run(fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !t.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			t.game.Update(t.pollInput(now))
			v := t.game.View()
			t.draw(&v)
		}
	}
}

func (t *TTYGame) cleanup() {
	t.sounds.Close()
	t.screen.Fini()
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "Write logs to this file (the terminal is taken by the game)")
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

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "galaga ", log.LstdFlags)
	}

	game, err := NewTTYGame(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run(cfg.Screen.FPS)
}
