package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	NumFloors       = 5
	Capacity        = 10
	PassengerWeight = 70 // kg
	TickInterval    = 30 * time.Millisecond
	MinDwell        = 500 * time.Millisecond
	FloorSpacing    = 20 // motion steps between two floors
	Speed           = 1  // motion steps per tick
	WalkTicks       = 10 // ticks for a rider to reach the door
)

var ErrInvalid = errors.New("invalid config")

// Config holds the runtime parameters of one simulation.
type Config struct {
	Name            string        `yaml:"name"`
	Floors          int           `yaml:"floors"`
	Capacity        int           `yaml:"capacity"`
	PassengerWeight int           `yaml:"passengerWeight"`
	StartFloor      int           `yaml:"startFloor"`
	TickInterval    time.Duration `yaml:"tickInterval"`
	MinDwell        time.Duration `yaml:"minDwell"`
	FloorSpacing    int           `yaml:"floorSpacing"`
	Speed           int           `yaml:"speed"`
	WalkTicks       int           `yaml:"walkTicks"`
	LogLevel        string        `yaml:"logLevel"`
	LogFile         string        `yaml:"logFile"`
}

func Default() Config {
	return Config{
		Floors:          NumFloors,
		Capacity:        Capacity,
		PassengerWeight: PassengerWeight,
		TickInterval:    TickInterval,
		MinDwell:        MinDwell,
		FloorSpacing:    FloorSpacing,
		Speed:           Speed,
		WalkTicks:       WalkTicks,
		LogLevel:        "info",
	}
}

// Load reads the YAML file at path on top of the defaults and then applies
// overrides from the env file. Empty paths and missing files are skipped.
func Load(path, envPath string) (Config, error) {
	c := Default()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return c, fmt.Errorf("open config %s: %w", path, err)
		default:
			defer file.Close()
			if err := yaml.NewDecoder(file).Decode(&c); err != nil {
				return c, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}

	if envPath != "" {
		env, err := godotenv.Read(envPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return c, fmt.Errorf("read env %s: %w", envPath, err)
		default:
			if err := c.applyEnv(env); err != nil {
				return c, err
			}
		}
	}

	return c, c.Validate()
}

func (c *Config) applyEnv(env map[string]string) error {
	ints := map[string]*int{
		"WINDASIM_FLOORS":      &c.Floors,
		"WINDASIM_CAPACITY":    &c.Capacity,
		"WINDASIM_START_FLOOR": &c.StartFloor,
	}
	for key, field := range ints {
		raw, ok := env[key]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("env %s: %w", key, err)
		}
		*field = v
	}

	durations := map[string]*time.Duration{
		"WINDASIM_TICK":  &c.TickInterval,
		"WINDASIM_DWELL": &c.MinDwell,
	}
	for key, field := range durations {
		raw, ok := env[key]
		if !ok {
			continue
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("env %s: %w", key, err)
		}
		*field = v
	}

	if name, ok := env["WINDASIM_NAME"]; ok {
		c.Name = name
	}
	if level, ok := env["WINDASIM_LOG_LEVEL"]; ok {
		c.LogLevel = level
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Floors < 2:
		return fmt.Errorf("%w: floors must be at least 2, got %d", ErrInvalid, c.Floors)
	case c.Capacity < 1:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalid, c.Capacity)
	case c.FloorSpacing < 1 || c.Speed < 1 || c.WalkTicks < 1:
		return fmt.Errorf("%w: floorSpacing, speed and walkTicks must be positive", ErrInvalid)
	case c.Speed > c.FloorSpacing:
		return fmt.Errorf("%w: speed %d exceeds floorSpacing %d", ErrInvalid, c.Speed, c.FloorSpacing)
	case c.MinDwell < 0:
		return fmt.Errorf("%w: minDwell must not be negative", ErrInvalid)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tickInterval must be positive", ErrInvalid)
	case c.StartFloor < 0 || c.StartFloor >= c.Floors:
		return fmt.Errorf("%w: startFloor %d outside [0, %d)", ErrInvalid, c.StartFloor, c.Floors)
	}
	return nil
}
