package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Store drivers accepted by Settings.StoreDriver.
const (
	StoreDriverFile   = "file"
	StoreDriverSQLite = "sqlite"
	StoreDriverNone   = "none"
)

// Settings are process-level options read from the environment.
type Settings struct {
	StoreDriver string `env:"ASSETSIM_STORE_DRIVER" envDefault:"file"`
	StorePath   string `env:"ASSETSIM_STORE_PATH" envDefault:"data"`
	Locale      string `env:"ASSETSIM_LOCALE" envDefault:"ja-JP"`
	ListenAddr  string `env:"ASSETSIM_LISTEN_ADDR" envDefault:":8080"`
	Debug       bool   `env:"ASSETSIM_DEBUG"`
	RulesFile   string `env:"ASSETSIM_RULES_FILE"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("failed to parse environment: %w", err)
	}
	switch s.StoreDriver {
	case StoreDriverFile, StoreDriverSQLite, StoreDriverNone:
	default:
		return s, fmt.Errorf("unsupported store driver %q (want %s, %s or %s)", s.StoreDriver, StoreDriverFile, StoreDriverSQLite, StoreDriverNone)
	}
	return s, nil
}
