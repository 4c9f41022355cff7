package cmd

import (
	"fmt"
	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomaze/director/random"
	"github.com/they4kman/gomaze/director/solver"
	"github.com/they4kman/gomaze/game"
	"github.com/they4kman/gomaze/terminal"
	"github.com/they4kman/gomaze/window"
	"io"
	"os"
	"sort"
	"strings"
)

const terminalScale = 2

var gameConfig = game.NewGameConfig()

var (
	configPath   string
	directorName string
	useTerminal  bool
	mute         bool
	verbose      bool
	logFile      string
)

var rootCmd = &cobra.Command{
	Use:   "gomaze",
	Short: "Generate and play randomized mazes",
	Long: `gomaze carves a perfect maze and lets you walk it from the entrance
on the left edge to the exit on the right edge.

Run with no arguments to play in a window
	gomaze

Play in the terminal instead
	gomaze -t

Watch the computer solve it
	gomaze --director solver
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		if useTerminal {
			// Log lines would scribble over the screen
			if logFile == "" {
				logrus.SetOutput(io.Discard)
			}
			return terminal.Run(config)
		}

		var runErr error
		pixelgl.Run(func() {
			runErr = window.Run(config)
		})
		return runErr
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging() error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logrus.SetOutput(file)
	}
	return nil
}

// resolveConfig layers the config file, if any, under the flags the user
// actually passed.
func resolveConfig(cmd *cobra.Command) (game.GameConfig, error) {
	config := gameConfig
	flags := cmd.Flags()

	if useTerminal && !flags.Changed("scale") {
		config.Scale = terminalScale
	}

	if configPath != "" {
		base := game.NewGameConfig()
		base.Scale = config.Scale
		if err := game.LoadConfigFile(configPath, &base); err != nil {
			return config, err
		}
		overrides := map[string]func(){
			"width":             func() { base.Width = config.Width },
			"height":            func() { base.Height = config.Height },
			"seed":              func() { base.Seed = config.Seed },
			"scale":             func() { base.Scale = config.Scale },
			"path-color":        func() { base.Maze.PathColor = config.Maze.PathColor },
			"wall-color":        func() { base.Maze.WallColor = config.Maze.WallColor },
			"player-color":      func() { base.PlayerColor = config.PlayerColor },
			"finish-color":      func() { base.FinishColor = config.FinishColor },
			"director-interval": func() { base.DirectorInterval = config.DirectorInterval },
		}
		for name, override := range overrides {
			if flags.Changed(name) {
				override()
			}
		}
		config = base
	}

	if mute {
		config.Sound = false
	}
	config.Director = newDirector(directorName)

	return config, config.Validate()
}

var directors = map[string]func() game.Director{
	"random": func() game.Director { return &random.Director{} },
	"solver": func() game.Director { return &solver.Director{} },
}

func newDirector(name string) game.Director {
	if create, ok := directors[name]; ok {
		return create()
	}
	return nil
}

type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (dirVal *directorValue) String() string {
	return string(*dirVal)
}

func (dirVal *directorValue) Set(value string) error {
	if _, isValid := directors[value]; isValid || value == "" {
		*dirVal = directorValue(value)
		return nil
	}
	return fmt.Errorf("invalid director, expected one of: %s", strings.Join(directorNames(), ", "))
}

func (dirVal *directorValue) Type() string {
	return "director"
}

func directorNames() []string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func addMazeFlags(cmd *cobra.Command, config *game.GameConfig) {
	// Define our own -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	cmd.Flags().Bool("help", false, "Help for this command")

	cmd.Flags().IntVarP(&config.Width, "width", "w", config.Width, "Width of the maze, in cells")
	cmd.Flags().IntVarP(&config.Height, "height", "h", config.Height, "Height of the maze, in cells")
	cmd.Flags().Int64VarP(&config.Seed, "seed", "s", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().Uint32Var(&config.Maze.PathColor, "path-color", config.Maze.PathColor, "Color of maze paths, as 0xRRGGBB")
	cmd.Flags().Uint32Var(&config.Maze.WallColor, "wall-color", config.Maze.WallColor, "Color of maze walls, as 0xRRGGBB")
}

func init() {
	addMazeFlags(rootCmd, &gameConfig)

	rootCmd.Flags().Uint32Var(&gameConfig.PlayerColor, "player-color", gameConfig.PlayerColor, "Color of the player, as 0xRRGGBB")
	rootCmd.Flags().Uint32Var(&gameConfig.FinishColor, "finish-color", gameConfig.FinishColor, "Color of the exit, as 0xRRGGBB")
	rootCmd.Flags().IntVar(&gameConfig.Scale, "scale", gameConfig.Scale, "Size of a maze cell on screen (pixels in a window, columns in a terminal)")
	rootCmd.Flags().Var(newDirectorValue("", &directorName), "director", `Make the computer play.
random: wander in random open directions
solver: walk straight to the exit`)
	rootCmd.Flags().DurationVar(&gameConfig.DirectorInterval, "director-interval", gameConfig.DirectorInterval, "Time between director steps")
	rootCmd.Flags().BoolVarP(&useTerminal, "terminal", "t", false, "Play in the terminal instead of a window")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "Don't chime when the maze is finished")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with game settings; flags override it")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
}
