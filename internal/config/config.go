package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/world2/internal/world"
)

// Scenario is one complete run setup: the constants fed to the model
// and the figure whose series are drawn from the result.
type Scenario struct {
	Figure    string          `yaml:"figure"`
	Constants world.Constants `yaml:"constants"`
}

// Default returns the standard run plotted as Figure 4-1.
func Default() *Scenario {
	return &Scenario{
		Figure:    "4-1",
		Constants: world.DefaultConstants(),
	}
}

// Load reads a scenario file. Keys absent from the file keep their
// defaults, so a scenario only needs to name the values it changes.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := Default()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// Save writes the scenario as YAML.
func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
