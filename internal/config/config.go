// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned (wrapped) when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Range is an inclusive integer interval, used for random frame timers.
type Range struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

// KindSpec — параметры одного типа врага.
type KindSpec struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Score  int     `yaml:"score" toml:"score"`
}

type Screen struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	FPS    int `yaml:"fps" toml:"fps"`
}

type Player struct {
	Width              float64 `yaml:"width" toml:"width"`
	Height             float64 `yaml:"height" toml:"height"`
	BottomMargin       float64 `yaml:"bottom_margin" toml:"bottom_margin"`
	Speed              float64 `yaml:"speed" toml:"speed"`
	Lives              int     `yaml:"lives" toml:"lives"`
	BulletSpeed        float64 `yaml:"bullet_speed" toml:"bullet_speed"`
	BulletWidth        float64 `yaml:"bullet_width" toml:"bullet_width"`
	BulletHeight       float64 `yaml:"bullet_height" toml:"bullet_height"`
	FireCooldown       int     `yaml:"fire_cooldown" toml:"fire_cooldown"`
	InvulnerableFrames int     `yaml:"invulnerable_frames" toml:"invulnerable_frames"`
}

type Enemy struct {
	FormationSpeed    float64  `yaml:"formation_speed" toml:"formation_speed"`
	SnapDistance      float64  `yaml:"snap_distance" toml:"snap_distance"`
	InitialShootTimer Range    `yaml:"initial_shoot_timer" toml:"initial_shoot_timer"`
	ShootTimer        Range    `yaml:"shoot_timer" toml:"shoot_timer"`
	ShootChance       float64  `yaml:"shoot_chance" toml:"shoot_chance"`
	AttackSpeed       float64  `yaml:"attack_speed" toml:"attack_speed"`
	OffscreenMargin   float64  `yaml:"offscreen_margin" toml:"offscreen_margin"`
	BulletSpeed       float64  `yaml:"bullet_speed" toml:"bullet_speed"`
	BulletWidth       float64  `yaml:"bullet_width" toml:"bullet_width"`
	BulletHeight      float64  `yaml:"bullet_height" toml:"bullet_height"`
	Normal            KindSpec `yaml:"normal" toml:"normal"`
	Boss              KindSpec `yaml:"boss" toml:"boss"`
}

type Formation struct {
	Rows           int     `yaml:"rows" toml:"rows"`
	Cols           int     `yaml:"cols" toml:"cols"`
	BossRows       int     `yaml:"boss_rows" toml:"boss_rows"`
	StartX         float64 `yaml:"start_x" toml:"start_x"`
	StartY         float64 `yaml:"start_y" toml:"start_y"`
	SpacingX       float64 `yaml:"spacing_x" toml:"spacing_x"`
	SpacingY       float64 `yaml:"spacing_y" toml:"spacing_y"`
	SwayLimit      float64 `yaml:"sway_limit" toml:"sway_limit"`
	SwayStep       float64 `yaml:"sway_step" toml:"sway_step"`
	DescendStep    float64 `yaml:"descend_step" toml:"descend_step"`
	AttackInterval int     `yaml:"attack_interval" toml:"attack_interval"`
	AttackChance   float64 `yaml:"attack_chance" toml:"attack_chance"`
}

type Stars struct {
	Count    int     `yaml:"count" toml:"count"`
	MinSpeed float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"`
}

type Wave struct {
	GraceFrames int `yaml:"grace_frames" toml:"grace_frames"`
}

// Config holds every tunable of the simulation. It is passed by value and
// never mutated after construction.
type Config struct {
	Screen    Screen    `yaml:"screen" toml:"screen"`
	Player    Player    `yaml:"player" toml:"player"`
	Enemy     Enemy     `yaml:"enemy" toml:"enemy"`
	Formation Formation `yaml:"formation" toml:"formation"`
	Stars     Stars     `yaml:"stars" toml:"stars"`
	Wave      Wave      `yaml:"wave" toml:"wave"`
	Seed      int64     `yaml:"seed" toml:"seed"` // 0 — сид от текущего времени
}

// Default returns the tuning for the 800x600 reference frame.
func Default() Config {
	return Config{
		Screen: Screen{Width: 800, Height: 600, FPS: 60},
		Player: Player{
			Width:              40,
			Height:             30,
			BottomMargin:       20,
			Speed:              5,
			Lives:              3,
			BulletSpeed:        10,
			BulletWidth:        3,
			BulletHeight:       10,
			FireCooldown:       10,
			InvulnerableFrames: 120,
		},
		Enemy: Enemy{
			FormationSpeed:    1,
			SnapDistance:      2,
			InitialShootTimer: Range{Min: 60, Max: 180},
			ShootTimer:        Range{Min: 120, Max: 300},
			ShootChance:       0.3,
			AttackSpeed:       3,
			OffscreenMargin:   50,
			BulletSpeed:       4,
			BulletWidth:       4,
			BulletHeight:      8,
			Normal:            KindSpec{Width: 30, Height: 30, Score: 100},
			Boss:              KindSpec{Width: 40, Height: 35, Score: 200},
		},
		Formation: Formation{
			Rows:           5,
			Cols:           10,
			BossRows:       1,
			StartX:         100,
			StartY:         50,
			SpacingX:       60,
			SpacingY:       50,
			SwayLimit:      200,
			SwayStep:       1,
			DescendStep:    20,
			AttackInterval: 180,
			AttackChance:   0.3,
		},
		Stars: Stars{Count: 100, MinSpeed: 0.5, MaxSpeed: 2},
		Wave:  Wave{GraceFrames: 120},
	}
}

// Load reads a YAML (.yaml/.yml) or TOML (.toml) file on top of Default().
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config YAML %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config TOML %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteTOML encodes the effective configuration, e.g. for -dump-config.
func (c Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks the constraints the simulation relies on.
func (c Config) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive")
	check(c.Screen.FPS > 0, "fps must be positive")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(float64(c.Screen.Width) >= c.Player.Width, "player wider than screen")
	check(c.Player.Lives > 0, "player lives must be positive")
	check(c.Player.FireCooldown >= 0, "fire cooldown must not be negative")
	check(c.Player.InvulnerableFrames >= 0, "invulnerable frames must not be negative")
	check(c.Enemy.InitialShootTimer.Min > 0 && c.Enemy.InitialShootTimer.Min <= c.Enemy.InitialShootTimer.Max, "initial shoot timer range is invalid")
	check(c.Enemy.ShootTimer.Min > 0 && c.Enemy.ShootTimer.Min <= c.Enemy.ShootTimer.Max, "shoot timer range is invalid")
	check(inUnit(c.Enemy.ShootChance), "enemy shoot chance must be in [0,1]")
	check(c.Enemy.Normal.Width > 0 && c.Enemy.Normal.Height > 0, "normal enemy size must be positive")
	check(c.Enemy.Boss.Width > 0 && c.Enemy.Boss.Height > 0, "boss enemy size must be positive")
	check(c.Formation.Rows > 0 && c.Formation.Cols > 0, "formation grid must be non-empty")
	check(c.Formation.BossRows >= 0 && c.Formation.BossRows <= c.Formation.Rows, "boss rows out of range")
	check(c.Formation.SwayLimit > 0 && c.Formation.SwayStep > 0, "formation sway must be positive")
	check(inUnit(c.Formation.AttackChance), "attack chance must be in [0,1]")
	check(c.Stars.Count >= 0 && c.Stars.MinSpeed <= c.Stars.MaxSpeed, "star settings are invalid")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func inUnit(p float64) bool {
	return p >= 0 && p <= 1
}

// Палитра. Используется только рендерерами.
var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	StarColor       = color.RGBA{255, 255, 255, 255}
	PlayerColor     = color.RGBA{0, 255, 255, 255}
	PlayerStroke    = color.RGBA{255, 255, 255, 255}
	PlayerBullet    = color.RGBA{255, 255, 0, 255}
	EnemyBullet     = color.RGBA{255, 0, 0, 255}
	NormalBody      = color.RGBA{255, 255, 0, 255}
	NormalStroke    = color.RGBA{255, 0, 0, 255}
	BossBody        = color.RGBA{255, 0, 0, 255}
	BossStroke      = color.RGBA{255, 255, 0, 255}
	TitleColor      = color.RGBA{255, 255, 0, 255}
	GameOverColor   = color.RGBA{255, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	WaveColor       = color.RGBA{0, 100, 255, 255}
)
