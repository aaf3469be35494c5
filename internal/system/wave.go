// internal/system/wave.go
package system

import (
	"go-galaga/internal/entity"
	"go-galaga/internal/event"
	"log"
)

// WaveSystem replaces a cleared formation with a fresh one and grants the
// player a grace window.
type WaveSystem struct {
	formations      *FormationSystem
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
	graceFrames     int
	Number          int // номер текущей волны, с 1
	Kills           int // врагов уничтожено в текущей волне
}

func NewWaveSystem(formations *FormationSystem, graceFrames int, eventDispatcher *event.Dispatcher, logger *log.Logger) *WaveSystem {
	ws := &WaveSystem{
		formations:      formations,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		graceFrames:     graceFrames,
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, ws)
	return ws
}

// Start spawns the first wave of a new game.
func (s *WaveSystem) Start(w *entity.World) {
	s.Number = 1
	s.Kills = 0
	w.Formation = s.formations.Spawn(w.NewEntity)
}

// Update replaces the formation if it is empty. Returns true when a new
// wave was spawned this frame.
func (s *WaveSystem) Update(w *entity.World) bool {
	if w.Formation == nil || !w.Formation.IsEmpty() {
		return false
	}
	s.Number++
	s.logger.Printf("wave cleared (%d kills), starting wave %d", s.Kills, s.Number)
	s.Kills = 0
	w.Formation = s.formations.Spawn(w.NewEntity)
	if w.Player != nil {
		w.Player.Invulnerable = s.graceFrames
	}
	s.eventDispatcher.Emit(event.WaveCleared, event.WaveData{Wave: s.Number})
	return true
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyDestroyed {
		s.Kills++
	}
}
