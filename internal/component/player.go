// internal/component/player.go
package component

// Player хранит состояние корабля игрока. Bullets содержит только
// активные снаряды после каждого обновления.
type Player struct {
	Body
	Speed         float64
	Lives         int
	Invulnerable  int // кадров неуязвимости осталось
	ShootCooldown int // кадров до следующего выстрела
	Bullets       []Projectile
}

// Visible implements the flicker: while invulnerable the ship is drawn for
// the first half of every 10-frame window.
func (p *Player) Visible() bool {
	return p.Invulnerable == 0 || p.Invulnerable%10 >= 5
}
