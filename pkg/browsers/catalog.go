package browsers

import (
	_ "embed"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/browserd/browserd/pkg/models"
)

//go:embed default.yaml
var defaultCatalog []byte

var validEngines = []models.Engine{models.EngineChromium, models.EngineFirefox, models.EngineWebkit}

// DefaultCatalog returns the built-in engines config used when no external
// catalog file is configured.
func DefaultCatalog() []byte {
	return defaultCatalog
}

type EnginesCatalog interface {
	Lookup(engine models.Engine) (models.EngineConfig, bool)
	Engines() []models.Engine
}

type YamlEnginesCatalog struct {
	cat models.EngineCatalog
}

func NewYamlEnginesCatalog(data []byte) (*YamlEnginesCatalog, error) {
	cat := make(models.EngineCatalog)
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	for e := range cat {
		if !slices.Contains(validEngines, e) {
			return nil, errors.Errorf("unknown engine in catalog: %s", e)
		}
	}
	return &YamlEnginesCatalog{cat: cat}, nil
}

func (c *YamlEnginesCatalog) Lookup(engine models.Engine) (models.EngineConfig, bool) {
	cfg, ok := c.cat[engine]
	if !ok || !cfg.Enabled {
		return models.EngineConfig{}, false
	}
	return cfg, true
}

// Engines lists enabled engines in stable order
func (c *YamlEnginesCatalog) Engines() []models.Engine {
	result := make([]models.Engine, 0, len(c.cat))
	for e, cfg := range c.cat {
		if cfg.Enabled {
			result = append(result, e)
		}
	}
	slices.Sort(result)
	return result
}
