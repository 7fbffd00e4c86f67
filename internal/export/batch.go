package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/gaugekit/internal/scene"
)

// Frame is one image of a batch.
type Frame struct {
	Value float64
	Path  string
}

// Frames spaces count values evenly over [from, to] and names them
// <dir>/<prefix>-NNNN.<format>.
func Frames(from, to float64, count int, dir, prefix string, f Format) []Frame {
	if count < 1 {
		count = 1
	}
	frames := make([]Frame, count)
	for i := range frames {
		v := from
		if count > 1 {
			v = from + (to-from)*float64(i)/float64(count-1)
		}
		frames[i] = Frame{
			Value: v,
			Path:  filepath.Join(dir, fmt.Sprintf("%s-%04d.%s", prefix, i, f)),
		}
	}
	return frames
}

// Batch renders every frame, at most one goroutine per CPU. build must be
// safe for concurrent use. The first failure cancels frames not yet
// started.
func Batch(ctx context.Context, frames []Frame, build func(value float64) *scene.Scene, f Format, widthPx int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, fr := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			if err := writeFrame(fr, build, f, widthPx); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func writeFrame(fr Frame, build func(float64) *scene.Scene, f Format, widthPx int) error {
	file, err := os.Create(fr.Path)
	if err != nil {
		return err
	}
	if err := Write(file, f, build(fr.Value), widthPx); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
