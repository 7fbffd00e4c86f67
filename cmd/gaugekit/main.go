package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/gaugekit/internal/config"
	"github.com/san-kum/gaugekit/internal/logger"
)

var (
	// Global
	settingsFile string
	logLevel     string
	settings     *config.Settings

	// Widget source
	configFile string
	preset     string

	// Output
	valueRaw  string
	format    string
	outFile   string
	width     int
	gaugeOnly bool

	// sweep
	plotWidth int

	// frames
	fromValue  float64
	toValue    float64
	frameCount int

	// init
	force bool
)

// main registers the gaugekit commands and runs the one selected on the
// command line, exiting 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:               "gaugekit",
		Short:             "speedometer gauge renderer",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (default ./gaugekit.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a gauge to svg or png",
		RunE:  runRender,
	}
	addSourceFlags(renderCmd)
	renderCmd.Flags().StringVar(&valueRaw, "value", "0", "value shown by the needle")
	renderCmd.Flags().StringVar(&format, "format", "", "svg or png (default from --out extension or settings)")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().IntVar(&width, "width", 0, "png width in pixels (default from settings)")
	renderCmd.Flags().BoolVar(&gaugeOnly, "gauge-only", false, "omit the widget text block")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "plot the needle angle across the range",
		RunE:  runSweep,
	}
	addSourceFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width in columns")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal gauge",
		RunE:  runLive,
	}
	addSourceFlags(liveCmd)
	liveCmd.Flags().StringVar(&valueRaw, "value", "0", "starting value")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "re-render whenever the widget file changes",
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVarP(&configFile, "config", "c", "", "widget file (yaml)")
	watchCmd.Flags().StringVar(&valueRaw, "value", "0", "value shown by the needle")
	watchCmd.Flags().StringVar(&format, "format", "", "svg or png (default from --out extension or settings)")
	watchCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file")
	watchCmd.Flags().IntVar(&width, "width", 0, "png width in pixels (default from settings)")
	_ = watchCmd.MarkFlagRequired("config")
	_ = watchCmd.MarkFlagRequired("out")

	framesCmd := &cobra.Command{
		Use:   "frames",
		Short: "render a sequence of values to numbered files",
		RunE:  runFrames,
	}
	addSourceFlags(framesCmd)
	framesCmd.Flags().Float64Var(&fromValue, "from", 0, "first value")
	framesCmd.Flags().Float64Var(&toValue, "to", 40, "last value")
	framesCmd.Flags().IntVar(&frameCount, "count", 10, "number of frames")
	framesCmd.Flags().StringVar(&format, "format", "", "svg or png (default from settings)")
	framesCmd.Flags().IntVar(&width, "width", 0, "png width in pixels (default from settings)")
	framesCmd.Flags().BoolVar(&gaugeOnly, "gauge-only", false, "omit the widget text block")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in widget presets",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a widget file with default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	setCmd := &cobra.Command{
		Use:   "set key=value...",
		Short: "edit fields of a widget file",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSet,
	}
	setCmd.Flags().StringVarP(&configFile, "config", "c", "", "widget file (yaml)")
	_ = setCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(renderCmd, sweepCmd, liveCmd, watchCmd, framesCmd, presetsCmd, initCmd, setCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "widget file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in preset")
}

// setup loads settings and configures logging before any command runs.
// --log-level wins over the settings file.
func setup(cmd *cobra.Command, args []string) error {
	s, err := config.LoadSettings(settingsFile)
	if err != nil {
		return err
	}
	settings = s

	level := settings.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if err := logger.Init(level, os.Stderr); err != nil {
		return err
	}
	logger.Debug().Str("command", cmd.Name()).Str("format", settings.Format).Str("theme", settings.Theme).Msg("settings loaded")
	return nil
}
