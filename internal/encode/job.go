package encode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle of an encode job
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobStopped   JobStatus = "stopped"
	JobError     JobStatus = "error"
)

// IsFinished reports whether the job reached a terminal status
func (s JobStatus) IsFinished() bool {
	switch s {
	case JobCompleted, JobStopped, JobError:
		return true
	}
	return false
}

// Job describes one frame sequence to encode
type Job struct {
	ID         string
	Dir        string
	Prefix     string
	FrameCount int
	FPS        int
	OutputPath string

	Status     JobStatus
	Progress   float64
	Percent    int
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewJob validates the inputs and creates a pending job. The frames are
// expected to be named <prefix>%04d.png inside dir.
func NewJob(dir, prefix string, frameCount, fps int, outputPath string) (*Job, error) {
	if frameCount <= 0 {
		return nil, fmt.Errorf("no frames to encode")
	}
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("frame directory does not exist: %s", dir)
	}
	if !IsSupportedOutput(outputPath) {
		return nil, fmt.Errorf("unsupported output format: %s", filepath.Ext(outputPath))
	}

	return &Job{
		ID:         generateJobID(),
		Dir:        dir,
		Prefix:     prefix,
		FrameCount: frameCount,
		FPS:        fps,
		OutputPath: outputPath,
		Status:     JobPending,
	}, nil
}

// InputPattern is the ffmpeg image2 pattern for the frames
func (j *Job) InputPattern() string {
	return filepath.Join(j.Dir, j.Prefix+"%04d"+FrameExtension)
}

// IsSupportedOutput reports whether the output extension can be encoded
func IsSupportedOutput(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case OutputExtensionMP4, OutputExtensionGIF:
		return true
	}
	return false
}

// generateJobID generates a unique job ID using UUID v7 for time ordering
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
