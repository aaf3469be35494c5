package event

import "testing"

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Subscribe(WaveCleared, ListenerFunc(func(e Event) { got = append(got, "first") }))
	d.Subscribe(WaveCleared, ListenerFunc(func(e Event) { got = append(got, "second") }))
	d.Subscribe(GameOver, ListenerFunc(func(e Event) { got = append(got, "game-over") }))

	d.Emit(WaveCleared, WaveData{Wave: 2})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("listeners called as %v, want [first second]", got)
	}
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	count := 0
	d.SubscribeAll(ListenerFunc(func(Event) { count++ }), PlayerFired, EnemyFired)

	d.Emit(PlayerFired, nil)
	d.Emit(EnemyFired, nil)
	d.Emit(GameStarted, nil)

	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestDispatchWithoutListeners(t *testing.T) {
	NewDispatcher().Emit(EnemyDestroyed, EnemyDestroyedData{Score: 100})
}
