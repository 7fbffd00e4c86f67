package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/gaugekit/internal/config"
	"github.com/san-kum/gaugekit/internal/export"
	"github.com/san-kum/gaugekit/internal/logger"
	"github.com/san-kum/gaugekit/internal/render"
	"github.com/san-kum/gaugekit/internal/scene"
	"github.com/san-kum/gaugekit/internal/viz"
)

func newRenderer() *render.Renderer {
	var opts []render.Option
	if settings.Memo {
		opts = append(opts, render.WithMemo(0))
	}
	return render.New(opts...)
}

// outputFormat resolves --format, then the --out extension, then settings.
func outputFormat(out string) (export.Format, error) {
	if format != "" {
		return export.ParseFormat(format)
	}
	fallback, err := export.ParseFormat(settings.Format)
	if err != nil {
		return "", fmt.Errorf("settings: %w", err)
	}
	if out == "" {
		return fallback, nil
	}
	return export.FormatFromPath(out, fallback)
}

func outputPath(out string) string {
	if out == "" || filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(settings.OutDir, out)
}

func pngWidth() int {
	if width > 0 {
		return width
	}
	return settings.PNGWidth
}

func buildScene(r *render.Renderer, w *config.Widget, value float64) *scene.Scene {
	if gaugeOnly {
		return r.Gauge(render.GaugeInput(w, value))
	}
	return r.Widget(w, value)
}

// writeScene writes to path, or stdout when path is empty. Files are
// replaced atomically so watchers never see a half-written image.
func writeScene(path string, f export.Format, s *scene.Scene) error {
	if path == "" {
		return export.Write(os.Stdout, f, s, pngWidth())
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".gaugekit-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := export.Write(tmp, f, s, pngWidth()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func runRender(cmd *cobra.Command, args []string) error {
	value, err := config.ParseNumericInput(valueRaw)
	if err != nil {
		return fmt.Errorf("--value: %w", err)
	}
	w, err := config.Resolve(preset, configFile)
	if err != nil {
		return err
	}
	path := outputPath(outFile)
	f, err := outputFormat(path)
	if err != nil {
		return err
	}

	if err := writeScene(path, f, buildScene(newRenderer(), w, value)); err != nil {
		return err
	}
	if path != "" {
		logger.Info().Str("path", path).Str("format", string(f)).Float64("value", value).Msg("rendered")
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	w, err := config.Resolve(preset, configFile)
	if err != nil {
		return err
	}
	sp := w.Speedometer
	fmt.Fprintln(cmd.OutOrStdout(), viz.RenderSweep(sp.Range(), sp.Thresholds, sp.GaugeColor, plotWidth))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	value, err := config.ParseNumericInput(valueRaw)
	if err != nil {
		return fmt.Errorf("--value: %w", err)
	}
	w, err := config.Resolve(preset, configFile)
	if err != nil {
		return err
	}

	surface := config.NewSurface(w)
	p := tea.NewProgram(viz.NewModel(surface, value, settings.Theme), tea.WithAltScreen())
	unsubscribe := surface.Subscribe(func(config.Patch) { p.Send(viz.ConfigChangedMsg{}) })
	defer unsubscribe()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if configFile != "" && preset == "" {
		go func() {
			err := config.Watch(ctx, configFile, func(nw *config.Widget, err error) {
				if err != nil {
					logger.Warn().Err(err).Msg("reload failed, keeping previous widget")
					return
				}
				surface.Replace(nw)
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn().Err(err).Msg("watch stopped")
			}
		}()
	}

	_, err = p.Run()
	return err
}

func runWatch(cmd *cobra.Command, args []string) error {
	value, err := config.ParseNumericInput(valueRaw)
	if err != nil {
		return fmt.Errorf("--value: %w", err)
	}
	path := outputPath(outFile)
	f, err := outputFormat(path)
	if err != nil {
		return err
	}
	w, err := config.Load(configFile)
	if err != nil {
		return err
	}

	r := newRenderer()
	surface := config.NewSurface(w)
	write := func() {
		if err := writeScene(path, f, buildScene(r, surface.Snapshot(), value)); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("render failed")
			return
		}
		logger.Info().Str("path", path).Msg("rendered")
	}
	defer surface.Subscribe(func(config.Patch) { write() })()
	write()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s, writing %s (ctrl+c to stop)\n", configFile, path)

	err = config.Watch(ctx, configFile, func(nw *config.Widget, err error) {
		if err != nil {
			logger.Warn().Err(err).Msg("reload failed, keeping previous widget")
			return
		}
		surface.Replace(nw)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runFrames(cmd *cobra.Command, args []string) error {
	w, err := config.Resolve(preset, configFile)
	if err != nil {
		return err
	}
	f, err := outputFormat("")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(settings.OutDir, 0755); err != nil {
		return err
	}

	prefix := "gauge"
	if preset != "" {
		prefix = preset
	}
	frames := export.Frames(fromValue, toValue, frameCount, settings.OutDir, prefix, f)
	r := newRenderer()
	build := func(v float64) *scene.Scene { return buildScene(r, w, v) }

	if err := export.Batch(cmd.Context(), frames, build, f, pngWidth()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", len(frames), settings.OutDir)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTEXT\tRANGE\tBANDS")
	for _, name := range config.ListPresets() {
		w := config.GetPreset(name)
		sp := w.Speedometer
		fmt.Fprintf(tw, "%s\t%s\t%g..%g\t%d\n", name, w.Text, sp.Min, sp.Max, len(sp.Thresholds))
	}
	return tw.Flush()
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "gauge.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists, use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	w, err := config.Resolve(preset, "")
	if err != nil {
		return err
	}
	if err := config.Save(path, w); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

// runSet parses every key=value pair before touching the file, so one bad
// field leaves the file unchanged.
func runSet(cmd *cobra.Command, args []string) error {
	var patch config.Patch
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%q: expected key=value", arg)
		}
		p, err := config.SetField(key, raw)
		if err != nil {
			return err
		}
		patch = patch.Merge(p)
	}

	w, err := config.Load(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		w, err = config.DefaultWidget(), nil
	}
	if err != nil {
		return err
	}

	surface := config.NewSurface(w)
	defer surface.Subscribe(func(p config.Patch) {
		logger.Debug().Int("fields", len(args)).Str("path", configFile).Msg("widget patched")
	})()
	surface.Apply(patch)

	if err := config.Save(configFile, surface.Snapshot()); err != nil {
		return err
	}
	return printSummary(cmd.OutOrStdout(), surface.Snapshot())
}

func printSummary(out io.Writer, w *config.Widget) error {
	sp := w.Speedometer
	_, err := fmt.Fprintf(out, "%s: range %g..%g, %d bands, gauge %s, needle %s\n",
		configFile, sp.Min, sp.Max, len(sp.Thresholds), sp.GaugeColor, sp.NeedleColor)
	return err
}
