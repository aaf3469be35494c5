package config

import (
	"flag"
	"fmt"
)

// Flags — общие флаги командной строки для всех хостов.
type Flags struct {
	Path string
	Seed int64
	Dump bool
}

// RegisterFlags добавляет -config, -seed и -dump-config в набор флагов.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Path, "config", "", "Path to a YAML or TOML config file")
	fs.Int64Var(&f.Seed, "seed", 0, "PRNG seed (0 = from config or current time)")
	fs.BoolVar(&f.Dump, "dump-config", false, "Print the effective config as TOML and exit")
	return f
}

// Resolve собирает итоговую конфигурацию: значения по умолчанию, затем файл,
// затем -seed поверх.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.Path != "" {
		var err error
		if cfg, err = Load(f.Path); err != nil {
			return cfg, err
		}
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
