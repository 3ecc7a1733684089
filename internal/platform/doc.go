package platform

// Package platform contains OS integration for the frame exporter: output
// directory helpers and revealing a directory in the system file manager.
