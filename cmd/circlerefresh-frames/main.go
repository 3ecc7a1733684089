package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Printf("command failed: %v", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "circlerefresh-frames",
	Short:   "Render a pull-to-refresh cycle to PNG frames",
	Version: version,
	Long: `Render a pull-to-refresh cycle to PNG frames.

The header is pulled down to full bend, spins while refreshing, then is
released and bounces back to rest. Every frame is written as a PNG and
can optionally be encoded to a video with ffmpeg.

Configuration is loaded from multiple sources with the following precedence:
  Environment variables (CIRCLEREFRESH_*) > Config file > Defaults`,
	RunE: runFrames,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "config file (yaml, toml or json)")
	f.StringVarP(&flags.outDir, "out", "o", "frames", "output directory")
	f.Float64Var(&flags.width, "width", 360, "header width in layout units")
	f.Float64Var(&flags.height, "height", 0, "header height in layout units (0 uses the preferred height)")
	f.Float64Var(&flags.scale, "scale", 2, "pixels per layout unit")
	f.IntVar(&flags.fps, "fps", 60, "frames per second")
	f.IntVar(&flags.pullFrames, "pull-frames", 20, "frames spent pulling down")
	f.IntVar(&flags.spinFrames, "spin-frames", 60, "frames spent refreshing before finish")
	f.StringVar(&flags.text, "text", "", "label text (overrides config)")
	f.StringVar(&flags.video, "video", "", "also encode the frames to this .mp4 or .gif file with ffmpeg")
	f.BoolVar(&flags.reveal, "reveal", false, "open the output directory when done")

	rootCmd.AddCommand(initConfigCmd)
}
