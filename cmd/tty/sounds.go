package main

import (
	"log"
	"time"

	"go-galaga/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone — короткий синусоидальный сигнал на событие.
type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[event.EventType]tone{
	event.PlayerFired:    {freq: 880, duration: 30 * time.Millisecond},
	event.EnemyDestroyed: {freq: 440, duration: 80 * time.Millisecond},
	event.PlayerHit:      {freq: 140, duration: 250 * time.Millisecond},
	event.WaveCleared:    {freq: 660, duration: 200 * time.Millisecond},
}

// Sounds озвучивает игровые события. Без звуковой карты молчит.
type Sounds struct {
	enabled bool
	logger  *log.Logger
}

func NewSounds(logger *log.Logger) *Sounds {
	s := &Sounds{logger: logger}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// не критично, играем без звука
		logger.Printf("Audio initialization failed: %v", err)
		return s
	}
	s.enabled = true
	return s
}

// Attach подписывает звуки на события диспетчера.
func (s *Sounds) Attach(d *event.Dispatcher) {
	for t := range tones {
		d.Subscribe(t, s)
	}
}

func (s *Sounds) OnEvent(e event.Event) {
	if !s.enabled {
		return
	}
	t, ok := tones[e.Type]
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		s.logger.Printf("tone %.0fHz: %v", t.freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
}

func (s *Sounds) Close() {
	if s.enabled {
		speaker.Close()
	}
}
