package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig represents a batch configuration loaded from an HCL file
type FileConfig struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Arbiter    *ArbiterSettings   `hcl:"arbiter,block"`
}

// SimulationSettings contains batch-level configuration
type SimulationSettings struct {
	Games    int   `hcl:"games,optional"`
	Players  int   `hcl:"players,optional"`
	Seed     int64 `hcl:"seed,optional"`
	Workers  int   `hcl:"workers,optional"`
	MaxTurns int   `hcl:"max_turns,optional"`
}

// ArbiterSettings selects and tunes the slap-arbiter strategy
type ArbiterSettings struct {
	Strategy string `hcl:"strategy,label"`
}

// DefaultFileConfig returns the default batch configuration
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Simulation: SimulationSettings{
			Games:   10000,
			Players: 2,
			Seed:    1,
		},
		Arbiter: &ArbiterSettings{Strategy: "uniform"},
	}
}

// LoadFileConfig loads batch configuration from an HCL file. A missing
// file yields the defaults.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Simulation.Games == 0 {
		config.Simulation.Games = 10000
	}
	if config.Simulation.Players == 0 {
		config.Simulation.Players = 2
	}
	if config.Simulation.Seed == 0 {
		config.Simulation.Seed = 1
	}
	if config.Arbiter == nil {
		config.Arbiter = &ArbiterSettings{Strategy: "uniform"}
	}

	return &config, nil
}

// Validate validates the batch configuration
func (c *FileConfig) Validate() error {
	if c.Simulation.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Simulation.Games)
	}
	if c.Simulation.Players < 1 {
		return fmt.Errorf("players must be at least 1, got %d", c.Simulation.Players)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Simulation.Workers)
	}
	if c.Simulation.MaxTurns < 0 {
		return fmt.Errorf("max_turns must not be negative, got %d", c.Simulation.MaxTurns)
	}

	validStrategies := map[string]bool{
		"uniform":  true,
		"weighted": true,
	}
	if !validStrategies[c.Arbiter.Strategy] {
		return fmt.Errorf("invalid arbiter strategy %q", c.Arbiter.Strategy)
	}
	return nil
}

// SimulatorConfig converts the file configuration into a simulator Config.
func (c *FileConfig) SimulatorConfig() Config {
	return Config{
		Games:    c.Simulation.Games,
		Players:  c.Simulation.Players,
		Arbiter:  c.Arbiter.Strategy,
		Seed:     c.Simulation.Seed,
		Workers:  c.Simulation.Workers,
		MaxTurns: c.Simulation.MaxTurns,
	}
}
