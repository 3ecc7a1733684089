package config

// Package config loads header options from defaults, a config file and the
// environment, and persists user overrides in the Fyne preferences.
