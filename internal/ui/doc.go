package ui

// Package ui contains the Fyne widgets for the pull-to-refresh header and the
// demo window around it. LoadingHeader paints frames from the refresh driver,
// RefreshLayout turns drags and touches into pulls, and all strings are
// localized via Localization.
