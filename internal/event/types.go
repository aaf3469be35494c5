// internal/event/types.go
package event

import "go-galaga/internal/component"

const (
	GameStarted    EventType = "GameStarted"
	GameOver       EventType = "GameOver"       // Data: GameOverData
	WaveCleared    EventType = "WaveCleared"    // Data: WaveData
	EnemyDestroyed EventType = "EnemyDestroyed" // Data: EnemyDestroyedData
	PlayerHit      EventType = "PlayerHit"      // Data: PlayerHitData
	PlayerFired    EventType = "PlayerFired"
	EnemyFired     EventType = "EnemyFired"
	AttackStarted  EventType = "AttackStarted" // Data: types.EntityID
)

type EnemyDestroyedData struct {
	Kind  component.EnemyKind
	Score int
}

type PlayerHitData struct {
	LivesLeft int
}

type WaveData struct {
	Wave int // номер новой волны
}

type GameOverData struct {
	Score int
	Wave  int
}
