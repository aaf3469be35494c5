package component

// Phase — режим верхнеуровневого контроллера.
type Phase int

const (
	MenuPhase Phase = iota
	PlayingPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case MenuPhase:
		return "Menu"
	case PlayingPhase:
		return "Playing"
	case GameOverPhase:
		return "GameOver"
	}
	return "Unknown"
}
