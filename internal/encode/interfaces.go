package encode

import "context"

// Encoder turns a rendered frame sequence into a video file.
type Encoder interface {
	SetUpdateCallback(func(Job))
	Encode(ctx context.Context, job *Job) error
}
