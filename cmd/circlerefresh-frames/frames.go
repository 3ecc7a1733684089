package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/circlerefresh/internal/config"
	"github.com/ytget/circlerefresh/internal/encode"
	"github.com/ytget/circlerefresh/internal/platform"
	"github.com/ytget/circlerefresh/internal/raster"
	"github.com/ytget/circlerefresh/internal/refresh"
)

// DefaultLabel is used when neither flags nor config set a label
const DefaultLabel = "Refreshing"

// FramePrefix starts every frame file name
const FramePrefix = "frame_"

// settleLimit bounds the release phase so a stuck animation cannot loop forever
const settleLimit = 5 * time.Second

var flags struct {
	configPath string
	outDir     string
	width      float64
	height     float64
	scale      float64
	fps        int
	pullFrames int
	spinFrames int
	text       string
	video      string
	reveal     bool
}

// script describes one recorded refresh cycle
type script struct {
	interval   time.Duration
	pullFrames int
	spinFrames int
}

func runFrames(cmd *cobra.Command, args []string) error {
	opts, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if flags.text != "" {
		opts.Text = flags.text
	}
	if flags.fps <= 0 || flags.scale <= 0 || flags.width <= 0 {
		return fmt.Errorf("fps, scale and width must be positive")
	}

	d := refresh.New(opts.Metrics(), opts.Style(DefaultLabel), raster.BasicMeasurer{})
	ctrl := d.Controller()
	height := flags.height
	if height <= 0 {
		m := ctrl.Metrics()
		height = m.BaseHeight + m.TopOffset + m.BottomOffset
	}
	ctrl.Layout(flags.width, ctrl.PreferredHeight(height))

	if err := platform.CreateDirectoryIfNotExists(flags.outDir); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if removed, err := platform.ClearFrames(flags.outDir, FramePrefix); err != nil {
		return err
	} else if removed > 0 {
		log.Printf("frames: removed %d stale frames", removed)
	}

	s := script{
		interval:   time.Second / time.Duration(flags.fps),
		pullFrames: flags.pullFrames,
		spinFrames: flags.spinFrames,
	}
	icon := &iconCache{}
	n, err := record(d, s, time.Unix(0, 0), func(i int, f refresh.Frame) error {
		return writeFrame(filepath.Join(flags.outDir, fmt.Sprintf("%s%04d%s", FramePrefix, i, platform.FrameExtension)), f, icon)
	})
	if err != nil {
		return err
	}

	log.Printf("frames: wrote %d frames to %s", n, flags.outDir)
	if flags.video != "" {
		if err := encodeVideo(cmd.Context(), n); err != nil {
			return err
		}
	}
	if flags.reveal {
		if err := platform.RevealDirectory(flags.outDir); err != nil {
			log.Printf("frames: could not open %s: %v", flags.outDir, err)
		}
	}
	return nil
}

// record plays the script on a manual clock starting at start and emits every
// frame. It returns the number of frames emitted.
func record(d *refresh.Driver, s script, start time.Time, emit func(int, refresh.Frame) error) (int, error) {
	ctrl := d.Controller()
	now := start
	n := 0
	step := func() error {
		f, _ := d.Step(now)
		if err := emit(n, f); err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}
		n++
		now = now.Add(s.interval)
		return nil
	}

	// Rest
	if err := step(); err != nil {
		return n, err
	}

	// Pull to twice the total offset so the bend saturates
	g := ctrl.Geometry()
	full := 2 * g.TotalOffset()
	for i := 1; i <= s.pullFrames; i++ {
		ctrl.StartDrag(full * float64(i) / float64(s.pullFrames))
		if err := step(); err != nil {
			return n, err
		}
	}

	for i := 0; i < s.spinFrames; i++ {
		if err := step(); err != nil {
			return n, err
		}
	}

	ctrl.FinishRefreshing()
	deadline := now.Add(settleLimit)
	for d.Active() && now.Before(deadline) {
		if err := step(); err != nil {
			return n, err
		}
	}
	if d.Active() {
		log.Printf("frames: animation still active after %s", settleLimit)
	}
	return n, nil
}

// iconCache keeps the spinner icon between frames
type iconCache struct {
	px  int
	img image.Image
}

func writeFrame(path string, f refresh.Frame, icon *iconCache) error {
	var src image.Image
	if f.Spinner != nil {
		px := raster.IconPixels(f.Spinner, flags.scale)
		if icon.img == nil || icon.px != px {
			icon.img = raster.SpinnerIcon(px, f.Spinner.Color, f.Spinner.Stroke*flags.scale)
			icon.px = px
		}
		src = icon.img
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating frame file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, raster.Frame(f, flags.scale, src)); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return nil
}

func encodeVideo(ctx context.Context, frameCount int) error {
	svc := encode.NewService()
	if !svc.Available() {
		return fmt.Errorf("ffmpeg not found in PATH")
	}

	job, err := encode.NewJob(flags.outDir, FramePrefix, frameCount, flags.fps, flags.video)
	if err != nil {
		return fmt.Errorf("failed to create encode job: %w", err)
	}

	lastPercent := -10
	svc.SetUpdateCallback(func(j encode.Job) {
		if j.Percent/10 != lastPercent/10 {
			lastPercent = j.Percent
			log.Printf("frames: encoding %s %d%%", j.Status, j.Percent)
		}
	})

	if err := svc.Encode(ctx, job); err != nil {
		return fmt.Errorf("failed to encode %s: %w", flags.video, err)
	}
	return nil
}
