package encode

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// FFmpeg constants for encoding settings
const (
	// Video codec settings
	VideoCodec  = "libx264"
	VideoPreset = "medium"
	VideoCRF    = "23"
	PixelFormat = "yuv420p"

	// GIF palette filter
	GIFFilter = "split[a][b];[a]palettegen[p];[b][p]paletteuse"

	// Container flags
	FastStartFlag = "+faststart"

	// Executable and I/O constants
	FFmpegCommand       = "ffmpeg"
	ProgressPipeTarget  = "pipe:2"
	ProgressFramePrefix = "frame="
	JobIDPrefix         = "encode-"
	FrameExtension      = ".png"
	OutputExtensionMP4  = ".mp4"
	OutputExtensionGIF  = ".gif"
)

var _ Encoder = (*Service)(nil)

// Service encodes frame sequences with the ffmpeg CLI
type Service struct {
	command  string
	mu       sync.Mutex
	onUpdate func(Job) // callback for progress updates
}

// NewService creates a new encode service
func NewService() *Service {
	return &Service{command: FFmpegCommand}
}

// SetUpdateCallback sets the callback function for job updates. It receives
// copies and may be called from a background goroutine.
func (s *Service) SetUpdateCallback(callback func(Job)) {
	s.onUpdate = callback
}

// Available reports whether the ffmpeg executable can be found
func (s *Service) Available() bool {
	_, err := exec.LookPath(s.command)
	return err == nil
}

// Encode runs ffmpeg for job and blocks until it finishes. Cancelling ctx
// stops ffmpeg and removes the partial output.
func (s *Service) Encode(ctx context.Context, job *Job) error {
	s.setStatus(job, JobRunning)

	args := BuildFFmpegArgs(job)
	cmd := exec.CommandContext(ctx, s.command, args...)

	// Setup progress monitoring
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return s.fail(job, fmt.Errorf("failed to create stderr pipe: %w", err))
	}

	if err := cmd.Start(); err != nil {
		return s.fail(job, fmt.Errorf("failed to start ffmpeg: %w", err))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.monitorProgress(stderr, job)
	}()
	<-done
	err = cmd.Wait()

	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		os.Remove(job.OutputPath)
		s.finish(job, JobStopped, "")
		return ctx.Err()
	case err != nil:
		os.Remove(job.OutputPath)
		return s.fail(job, fmt.Errorf("ffmpeg failed: %w", err))
	}

	s.mu.Lock()
	job.Progress = 1
	job.Percent = 100
	s.mu.Unlock()
	s.finish(job, JobCompleted, "")
	log.Printf("encode: %s written", job.OutputPath)
	return nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments for job
func BuildFFmpegArgs(job *Job) []string {
	args := []string{
		"-y", // Overwrite output file
		"-framerate", strconv.Itoa(job.FPS),
		"-i", job.InputPattern(),
	}

	if strings.ToLower(filepath.Ext(job.OutputPath)) == OutputExtensionGIF {
		args = append(args, "-filter_complex", GIFFilter)
	} else {
		args = append(args,
			"-c:v", VideoCodec,
			"-preset", VideoPreset,
			"-crf", VideoCRF,
			"-pix_fmt", PixelFormat,
			"-movflags", FastStartFlag,
		)
	}

	return append(args,
		"-progress", ProgressPipeTarget, // Progress to stderr
		"-nostats",
		job.OutputPath,
	)
}

// monitorProgress parses ffmpeg progress output: frame=123
func (s *Service) monitorProgress(r io.Reader, job *Job) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, ProgressFramePrefix) {
			continue
		}

		frame, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, ProgressFramePrefix)))
		if err != nil {
			continue
		}

		progress := float64(frame) / float64(job.FrameCount)
		if progress > 1.0 {
			progress = 1.0
		}

		s.mu.Lock()
		job.Progress = progress
		job.Percent = int(progress * 100)
		s.mu.Unlock()

		s.notifyUpdate(job)
	}
}

func (s *Service) setStatus(job *Job, status JobStatus) {
	s.mu.Lock()
	job.Status = status
	if status == JobRunning {
		job.StartedAt = time.Now()
	}
	s.mu.Unlock()
	s.notifyUpdate(job)
}

func (s *Service) finish(job *Job, status JobStatus, lastError string) {
	s.mu.Lock()
	job.Status = status
	job.LastError = lastError
	job.FinishedAt = time.Now()
	s.mu.Unlock()
	s.notifyUpdate(job)
}

// fail sets an error state for a job and returns err
func (s *Service) fail(job *Job, err error) error {
	s.finish(job, JobError, err.Error())
	return err
}

// notifyUpdate calls the update callback with a snapshot of job
func (s *Service) notifyUpdate(job *Job) {
	if s.onUpdate == nil {
		return
	}
	s.mu.Lock()
	snapshot := *job
	s.mu.Unlock()
	s.onUpdate(snapshot)
}
