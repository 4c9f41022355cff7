package cmd

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomaze/game"
	"io"
	"math/rand"
	"time"
)

var generateConfig = game.NewGameConfig()

var (
	outputFormat string
	placeMarkers bool
	showTopology bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a maze without playing it",
	Long: `Carve a maze and print it, either as a sketch (# walls, . paths)
or as a YAML snapshot which can be checked later with "gomaze verify".

	gomaze generate -w 21 -h 11 --seed 38 --place
	gomaze generate --format yaml > maze.yaml
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd.OutOrStdout(), generateConfig)
	},
}

func generate(out io.Writer, config game.GameConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	buffer := game.NewPixelBuffer(config.Width, config.Height)
	config.Maze.Generate(buffer, rng)
	topology := game.Analyze(buffer, config.Maze)

	var navigator *game.Navigator
	var start game.Point
	if placeMarkers {
		navigator = game.NewNavigator(game.Point{}, game.Point{}, config.Maze)
		start = game.PlaceStartEnd(buffer, rng, navigator)
	}

	logrus.WithFields(logrus.Fields{
		"seed":   seed,
		"width":  config.Width,
		"height": config.Height,
	}).Debug("Generated maze")

	snapshot := game.TakeSnapshot(seed, buffer, config.Maze, navigator, start)
	switch outputFormat {
	case "yaml":
		fmt.Fprint(out, snapshot.Serialize())
	case "ascii":
		fmt.Fprint(out, snapshot.SerializedBoard)
	default:
		return fmt.Errorf("unknown format %q, expected ascii or yaml", outputFormat)
	}

	if showTopology {
		fmt.Fprintf(out, "seed: %d, open cells: %d, passages: %d, perfect: %v\n",
			seed, topology.Cells, topology.Edges, topology.Perfect())
	}
	return nil
}

func init() {
	addMazeFlags(generateCmd, &generateConfig)

	generateCmd.Flags().StringVarP(&outputFormat, "format", "f", "ascii", "Output format: ascii or yaml")
	generateCmd.Flags().BoolVar(&placeMarkers, "place", false, "Mark the entrance (@) and exit (E)")
	generateCmd.Flags().BoolVar(&showTopology, "topology", false, "Print the maze's cell and passage counts")

	rootCmd.AddCommand(generateCmd)
}
