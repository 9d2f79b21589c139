package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mkarren/pulsetile/internal/app"
	"github.com/mkarren/pulsetile/internal/config"
	"github.com/mkarren/pulsetile/internal/tui"
)

var (
	configPath     string
	curveThreshold float64
)

// main registers commands, translates Windows screensaver switches to
// subcommands, and runs the windowed debug mode when no command is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pulsetile",
		Short: "pulsing shape-tiling screensaver",
		Run: func(cmd *cobra.Command, args []string) {
			app.RunDebug(loadSettings())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "settings file path")

	saverCmd := &cobra.Command{
		Use:   "saver",
		Short: "run fullscreen until user activity",
		Run: func(cmd *cobra.Command, args []string) {
			app.RunSaver(loadSettings())
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "edit settings in a window",
		Run: func(cmd *cobra.Command, args []string) {
			app.RunConfig(loadSettings(), configPath)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "edit settings in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(loadSettings(), configPath)
		},
	}

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "screensaver preview handshake (no rendering)",
		Run: func(cmd *cobra.Command, args []string) {
			// The preview handle protocol is not supported; exiting
			// immediately keeps the host's settings dialog responsive.
		},
	}

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot the pulse visibility curve",
		Run: func(cmd *cobra.Command, args []string) {
			threshold := curveThreshold
			if !cmd.Flags().Changed("threshold") {
				threshold = loadSettings().Threshold
			}
			if threshold < 0 {
				threshold = 0
			}
			if threshold > 1 {
				threshold = 1
			}
			fmt.Println(tui.CurvePlot(threshold, 80, 12))
		},
	}
	curveCmd.Flags().Float64Var(&curveThreshold, "threshold", config.DefaultThreshold, "threshold to plot")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the resolved settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(loadSettings())
			if err != nil {
				return err
			}
			fmt.Printf("# %s\n%s", configPath, data)
			return nil
		},
	}

	rootCmd.AddCommand(saverCmd, configCmd, tuiCmd, previewCmd, curveCmd, showCmd)

	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSettings() *config.Settings {
	return config.LoadOrDefault(configPath)
}

var commands = map[string]bool{
	"saver":      true,
	"config":     true,
	"tui":        true,
	"preview":    true,
	"curve":      true,
	"show":       true,
	"help":       true,
	"completion": true,
}

// normalizeArgs maps the switches a screensaver host passes (`/s`, `/c`,
// `/p`, also `-c:HWND` style) onto subcommands. Any other unknown leading
// argument, such as a bare window handle, selects the default windowed
// mode.
func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	a := strings.ToLower(args[0])
	switch {
	case a == "-s" || strings.HasPrefix(a, "/s"):
		return []string{"saver"}
	case a == "-c" || strings.HasPrefix(a, "-c:") || strings.HasPrefix(a, "/c"):
		return []string{"config"}
	case a == "-p" || strings.HasPrefix(a, "-p:") || strings.HasPrefix(a, "/p"):
		return []string{"preview"}
	}

	if strings.HasPrefix(a, "-") || commands[a] {
		return args
	}
	// Cobra treats nil args as "use os.Args", so return an empty slice.
	return []string{}
}
