package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/hallplan/hallplan/internal/store"
	"github.com/hallplan/hallplan/pkg/model"
)

// Config describes the building and the schedule grid. It is read
// once at startup; the engine itself never touches files or the
// environment.
type Config struct {
	Mode          string   `mapstructure:"mode"`
	Port          int      `mapstructure:"port"`
	Floors        int      `mapstructure:"floors"`
	RoomsPerFloor int      `mapstructure:"rooms_per_floor"`
	CapacityMin   int      `mapstructure:"capacity_min"`
	CapacityMax   int      `mapstructure:"capacity_max"`
	CapacitySeed  int64    `mapstructure:"capacity_seed"`
	Slots         []string `mapstructure:"slots"`
	Divisions     int      `mapstructure:"divisions"`
}

// Load reads the config file at path, falling back to defaults that
// match the reference building: 5 floors of 4 rooms, capacities in
// [20, 50), five lecture slots, two divisions.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("hallplan")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("mode", "release")
	v.SetDefault("port", 3001)
	v.SetDefault("floors", 5)
	v.SetDefault("rooms_per_floor", 4)
	v.SetDefault("capacity_min", 20)
	v.SetDefault("capacity_max", 50)
	v.SetDefault("capacity_seed", 1)
	v.SetDefault("slots", []string{"Lecture 1", "Lecture 2", "Lecture 3", "Lecture 4", "Lecture 5"})
	v.SetDefault("divisions", 2)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("config file not found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) check() error {
	if c.Floors < 1 || c.RoomsPerFloor < 1 {
		return fmt.Errorf("building needs at least one floor and one room, got %dx%d", c.Floors, c.RoomsPerFloor)
	}
	if c.CapacityMin < 1 || c.CapacityMax <= c.CapacityMin {
		return fmt.Errorf("bad capacity range [%d, %d)", c.CapacityMin, c.CapacityMax)
	}
	if len(c.Slots) == 0 {
		return fmt.Errorf("at least one slot is required")
	}
	if c.Divisions < 1 {
		return fmt.Errorf("at least one division is required")
	}
	return nil
}

// SlotSet returns the configured slots as a model slot set.
func (c *Config) SlotSet() model.Slots {
	return model.SlotsFromLabels(c.Slots)
}

// Groups returns the division names "D1".."Dn".
func (c *Config) Groups() []string {
	groups := make([]string, 0, c.Divisions)
	for i := 1; i <= c.Divisions; i++ {
		groups = append(groups, fmt.Sprintf("D%d", i))
	}
	return groups
}

// BuildStore wires a registry and an empty session store from the
// configuration.
func (c *Config) BuildStore() *store.Store {
	reg := store.NewRegistry(c.Floors, c.RoomsPerFloor,
		store.RandomCapacity(c.CapacityMin, c.CapacityMax, c.CapacitySeed))
	return store.New(reg, c.SlotSet(), c.Groups())
}
