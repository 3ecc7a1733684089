package geom

// Package geom holds the small amount of 2D math the refresh header needs:
// points, the quadratic boundary curve with arc-length queries, and an affine
// matrix for placing the spinner icon.
