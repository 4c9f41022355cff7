package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

var ErrMazeTooSmall = errors.New("maze too small")

type GameConfig struct {
	// Size of the maze, in cells
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// 0 picks a seed from the current time
	Seed int64 `yaml:"seed"`

	Maze        MazeConfig `yaml:"maze"`
	PlayerColor uint32     `yaml:"player_color"`
	FinishColor uint32     `yaml:"finish_color"`

	// On-screen size of a maze cell, in pixels (window) or columns (terminal)
	Scale int `yaml:"scale"`

	Director Director `yaml:"-"`
	// Time between director steps
	DirectorInterval time.Duration `yaml:"director_interval"`

	// Whether to chime when the maze is finished
	Sound bool `yaml:"sound"`

	OnFinish func(session *Session) `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:            41,
		Height:           31,
		Maze:             DefaultMazeConfig(),
		PlayerColor:      DefaultPlayerColor,
		FinishColor:      DefaultFinishColor,
		Scale:            16,
		Director:         nil,
		DirectorInterval: 100 * time.Millisecond,
		Sound:            true,
	}
}

func (config GameConfig) Validate() error {
	if config.Width < MinMazeDimension || config.Height < MinMazeDimension {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrMazeTooSmall, config.Width, config.Height, MinMazeDimension, MinMazeDimension)
	}
	if config.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", config.Scale)
	}
	return config.validateColors()
}

// Every cell must read back as exactly one of path, wall, player or finish.
func (config GameConfig) validateColors() error {
	colors := []struct {
		name  string
		color uint32
	}{
		{"path", config.Maze.PathColor},
		{"wall", config.Maze.WallColor},
		{"player", config.PlayerColor},
		{"finish", config.FinishColor},
	}

	for i, first := range colors {
		for _, second := range colors[i+1:] {
			if first.color == second.color {
				return fmt.Errorf("%s and %s colors must differ, both are %#x", first.name, second.name, first.color)
			}
		}
	}
	return nil
}

// LoadConfigFile reads yaml settings over the given config. Fields missing
// from the file keep their current values.
func LoadConfigFile(path string, config *GameConfig) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(in, config); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
