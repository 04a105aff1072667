package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep/director/constraint"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
)

const logLevelEnv = "GOSWEEP_LOG_LEVEL"

type options struct {
	size, numMines int
	seed           int64
	configPath     string
	layoutPath     string
	director       string
	logLevel       string
}

func newRootCmd() *cobra.Command {
	opts := options{}
	defaults := game.NewGameConfig()

	rootCmd := &cobra.Command{
		Use:   "gosweep",
		Short: "Play Minesweeper in the terminal",
		Long: `gosweep is a Minesweeper game played by typing the row and
column of the cell to dig.

Run with no arguments to play a 10x10 board with 10 mines
	gosweep

Use the director flag to make the computer play for you
	gosweep --director
	gosweep --director=random
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.gameConfig(cmd)
			if err != nil {
				return err
			}

			_, err = game.Run(config, cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&opts.size, "size", "s", defaults.Size, "Side length of the square board, in cells")
	flags.IntVarP(&opts.numMines, "mines", "m", defaults.NumMines, "Number of mines to place on the board")
	flags.Int64Var(&opts.seed, "seed", 0, "Seed for mine placement (default: current time)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file with size, mines and seed")
	flags.StringVar(&opts.layoutPath, "layout", "", "YAML board snapshot to play instead of a random board")
	flags.StringVarP(&opts.director, "director", "d", "", `Make the computer play:
constraint: dig cells deduced to be safe, guessing only when stuck
random: dig random cells`)
	flags.Lookup("director").NoOptDefVal = "constraint"
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (default: $"+logLevelEnv+" or warning)")

	return rootCmd
}

// gameConfig merges the config file, then explicitly set flags, into the
// defaults
func (opts *options) gameConfig(cmd *cobra.Command) (game.GameConfig, error) {
	if err := setupLogging(opts.logLevel); err != nil {
		return game.GameConfig{}, err
	}

	config := game.NewGameConfig()
	if opts.configPath != "" {
		var err error
		if config, err = game.LoadGameConfig(opts.configPath); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		config.Size = opts.size
	}
	if flags.Changed("mines") {
		config.NumMines = opts.numMines
	}
	if flags.Changed("seed") {
		config.Seed = opts.seed
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	if opts.layoutPath != "" {
		in, err := os.ReadFile(opts.layoutPath)
		if err != nil {
			return config, errors.Wrapf(err, "reading layout %s", opts.layoutPath)
		}
		if config.Snapshot, err = game.LoadSnapshot(string(in)); err != nil {
			return config, errors.Wrapf(err, "loading layout %s", opts.layoutPath)
		}
	}

	switch opts.director {
	case "":
	case "constraint":
		config.Director = constraint.New(config.Seed)
	case "random":
		config.Director = random.New(config.Seed)
	default:
		return config, errors.Errorf("invalid director %q", opts.director)
	}

	game.Log.WithFields(logrus.Fields{
		"size":     config.Size,
		"mines":    config.NumMines,
		"seed":     config.Seed,
		"layout":   opts.layoutPath,
		"director": opts.director,
	}).Info("starting game")

	return config, nil
}

func setupLogging(level string) error {
	if level == "" {
		level = os.Getenv(logLevelEnv)
	}
	if level == "" {
		level = logrus.WarnLevel.String()
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}

	game.Log.SetLevel(logLevel)
	game.Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	game.Log.SetOutput(os.Stderr)
	return nil
}

func execute(args []string, in io.Reader, out io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	return rootCmd.Execute()
}

func Execute() {
	// Not fatal; the variables may be set directly
	_ = godotenv.Load()

	if err := execute(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
