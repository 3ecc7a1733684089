package model

// Package model defines the data shared by the refresh controller and the
// renderer: the visual status enum, the mutable drag state, the per-layout
// view geometry and the immutable style descriptor.
