package meta

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Difficulty string           `yaml:"difficulty"`
	HumanColor string           `yaml:"human_color"`
	Goroutines int              `yaml:"goroutines"`
	Tiers      map[string]int   `yaml:"tiers"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

type ExperimentConfig struct {
	Name      string    `yaml:"name"`
	Games     int       `yaml:"games"` // per match up, colors alternate
	OutputDir string    `yaml:"output_dir"`
	MatchUps  []MatchUp `yaml:"match_ups"`
}

// MatchUp pairs two difficulties (tier names or plain depths).
type MatchUp struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

func Default() Config {
	return Config{
		LogLevel:   "info",
		Difficulty: "easy",
		HumanColor: "dark",
		Goroutines: GO_ROUTINES,
		Tiers: map[string]int{
			"easy":    EasyDepth,
			"medium":  MediumDepth,
			"hard":    HardDepth,
			"inhuman": InhumanDepth,
		},
		Experiment: ExperimentConfig{
			Name:      "depth",
			Games:     4,
			OutputDir: "experiments",
			MatchUps: []MatchUp{
				{First: "easy", Second: "easy"},
				{First: "easy", Second: "medium"},
			},
		},
	}
}

// Load reads a YAML config on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for name, depth := range c.Tiers {
		if depth <= 0 {
			return fmt.Errorf("invalid config: tier %q has depth %d", name, depth)
		}
	}
	if c.Goroutines < 0 {
		return fmt.Errorf("invalid config: goroutines must not be negative")
	}
	if _, err := c.Depth(c.Difficulty); err != nil {
		return err
	}
	for _, m := range c.Experiment.MatchUps {
		if _, err := c.Depth(m.First); err != nil {
			return err
		}
		if _, err := c.Depth(m.Second); err != nil {
			return err
		}
	}
	return nil
}

// Depth resolves a tier name or a plain positive integer to a search depth.
func (c Config) Depth(difficulty string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(difficulty))
	if depth, ok := c.Tiers[key]; ok {
		return depth, nil
	}
	depth, err := strconv.Atoi(key)
	if err != nil || depth <= 0 {
		return 0, fmt.Errorf("unknown difficulty %q", difficulty)
	}
	return depth, nil
}
