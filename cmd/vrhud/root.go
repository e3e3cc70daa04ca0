package main

import (
	"fmt"
	"os"

	"github.com/riordanpawley/vrhud/internal/cli"
	"github.com/riordanpawley/vrhud/internal/config"
	"github.com/riordanpawley/vrhud/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configDir string
	deps      *cli.Dependencies
	logFile   *os.File
)

// rootCmd runs the interactive overlay when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "vrhud",
	Short: "Head-up overlay with an animated settings menu and expiring notifications",
	Long: `vrhud hosts a head-up overlay in the terminal. Press the toggle key to ` +
		`scale the settings menu in and out, and post notifications that fade ` +
		`away on their own.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunCommand(deps)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory holding "+config.FileName+" (default: current directory)")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and opens the log file
func setup(cmd *cobra.Command, args []string) error {
	dir := configDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = cwd
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	f, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	logFile = f

	logger := logging.New(
		logging.WithLevel(logging.ParseLevel(cfg.Log.Level)),
		logging.WithFormat(logging.Format(cfg.Log.Format)),
		logging.WithOutput(f),
	)
	logger.Debug("config loaded", "dir", dir, "command", cmd.Name())

	deps = cli.NewDependencies(cfg, logger)
	deps.Out = cmd.OutOrStdout()
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if logFile != nil {
		logFile.Close()
	}
}
