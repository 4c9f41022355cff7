package game

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Snapshot is a printable record of a generated maze, along with what is
// needed to generate it again.
type Snapshot struct {
	Seed      int64  `yaml:"seed"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	PathColor uint32 `yaml:"path_color"`
	WallColor uint32 `yaml:"wall_color"`

	PlayerColor uint32 `yaml:"player_color"`
	FinishColor uint32 `yaml:"finish_color"`

	Start *Point `yaml:"start,omitempty,flow"`
	End   *Point `yaml:"end,omitempty,flow"`

	SerializedBoard string `yaml:"board"`
}

// TakeSnapshot records the buffer. The navigator may be nil, when no
// entrance and exit have been placed yet; start is ignored in that case.
func TakeSnapshot(seed int64, buffer Buffer, config MazeConfig, navigator *Navigator, start Point) *Snapshot {
	snapshot := &Snapshot{
		Seed:        seed,
		Width:       buffer.Width(),
		Height:      buffer.Height(),
		PathColor:   config.PathColor,
		WallColor:   config.WallColor,
		PlayerColor: DefaultPlayerColor,
		FinishColor: DefaultFinishColor,
	}

	if navigator != nil {
		snapshot.PlayerColor = navigator.PlayerColor
		snapshot.FinishColor = navigator.FinishColor
		end := navigator.EndPoint()
		snapshot.Start, snapshot.End = &start, &end
	}

	snapshot.SerializedBoard = Sketch(buffer, snapshot.legend()) + "\n"
	return snapshot
}

func (snapshot *Snapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (snapshot *Snapshot) Config() MazeConfig {
	return MazeConfig{
		PathColor: snapshot.PathColor,
		WallColor: snapshot.WallColor,
	}
}

func (snapshot *Snapshot) legend() Legend {
	navigator := NewNavigator(Point{}, Point{}, snapshot.Config())
	navigator.PlayerColor = snapshot.PlayerColor
	navigator.FinishColor = snapshot.FinishColor
	return navigator.Legend()
}

// Buffer rebuilds the recorded board, markers included.
func (snapshot *Snapshot) Buffer() (*PixelBuffer, error) {
	buffer, err := ParseSketch(snapshot.SerializedBoard, snapshot.legend())
	if err != nil {
		return nil, fmt.Errorf("parsing board: %w", err)
	}
	if buffer.Width() != snapshot.Width || buffer.Height() != snapshot.Height {
		return nil, fmt.Errorf("board is %dx%d, expected %dx%d",
			buffer.Width(), buffer.Height(), snapshot.Width, snapshot.Height)
	}
	return buffer, nil
}

// LoadSnapshot parses a serialized snapshot. Marker colors missing from the
// document keep their defaults.
func LoadSnapshot(in string) (*Snapshot, error) {
	snapshot := Snapshot{
		PlayerColor: DefaultPlayerColor,
		FinishColor: DefaultFinishColor,
	}
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
