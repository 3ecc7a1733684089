package encode

// Package encode turns exported frame sequences into MP4 or GIF files by
// driving the ffmpeg CLI and reporting progress from its -progress output.
