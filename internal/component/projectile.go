// internal/component/projectile.go
package component

// Owner marks which side fired a projectile.
type Owner int

const (
	PlayerOwned Owner = iota
	EnemyOwned
)

// Projectile представляет летящий снаряд. Velocity знаковая: отрицательная
// скорость — вверх (пули игрока), положительная — вниз (пули врагов).
type Projectile struct {
	Body
	Velocity float64
	Owner    Owner
	Active   bool
}
