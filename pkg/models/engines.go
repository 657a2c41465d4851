package models

type EngineCatalog map[Engine]EngineConfig

type EngineConfig struct {
	Enabled bool     `yaml:"enabled"`
	Args    []string `yaml:"args"`
	Channel string   `yaml:"channel"`
}
