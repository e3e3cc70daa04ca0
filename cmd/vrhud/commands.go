package main

import (
	"os"

	"github.com/riordanpawley/vrhud/internal/cli"
	"github.com/riordanpawley/vrhud/internal/config"
	"github.com/riordanpawley/vrhud/internal/logging"
	"github.com/riordanpawley/vrhud/internal/notify"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive overlay",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunCommand(deps)
	},
}

var notifyCmd = &cobra.Command{
	Use:   "notify MESSAGE...",
	Short: "Simulate notifications headlessly and print the display text",
	Long: `Posts each MESSAGE to a headless overlay, steps it at the configured ` +
		`frame rate and prints the display text whenever it changes, until ` +
		`every notification has expired and the panel has faded out.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("level")
		level, err := notify.ParseLevel(levelName)
		if err != nil {
			return err
		}
		frames, _ := cmd.Flags().GetInt("frames")
		raw, _ := cmd.Flags().GetBool("raw")

		return cli.NotifyCommand(deps, args, cli.NotifyOptions{
			Level:     level,
			MaxFrames: frames,
			Raw:       raw,
		})
	},
}

var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "List the settings tabs and check them against the scene",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.TabsCommand(deps)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.FileName,
	Args:  cobra.NoArgs,
	// init must work even when the existing file does not load
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		deps = cli.NewDependencies(config.DefaultConfig(), logging.New())
		deps.Out = cmd.OutOrStdout()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := configDir
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			dir = cwd
		}
		force, _ := cmd.Flags().GetBool("force")
		return cli.InitCommand(deps, dir, force)
	},
}

func init() {
	notifyCmd.Flags().StringP("level", "l", "info", "notification level: info, success, warning or error")
	notifyCmd.Flags().Int("frames", cli.DefaultMaxFrames, "stop after this many frames")
	notifyCmd.Flags().Bool("raw", false, "print the rich-text markup instead of parsed lines")
	initCmd.Flags().BoolP("force", "f", false, "overwrite an existing file")

	rootCmd.AddCommand(runCmd, notifyCmd, tabsCmd, initCmd)
}
