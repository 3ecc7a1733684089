package model

// Status is the visual state of the refresh header.
type Status int

const (
	// StatusNormal is the resting header, no drag in progress
	StatusNormal Status = iota

	// StatusPullDown means the user is pulling but has not reached the threshold
	StatusPullDown

	// StatusDrawRefresh means the pull crossed the threshold and the label and spinner are drawn
	StatusDrawRefresh

	// StatusRefreshing means the header is fully extended and spinning on its own
	StatusRefreshing

	// StatusStopped draws nothing
	StatusStopped

	// StatusCount is the number of statuses. Tables indexed by Status use it as length.
	StatusCount
)

// An "invalid array index" compiler error here means the Status constants
// changed: update this guard, Status.String and the renderer dispatch table.
func _() {
	var x [1]struct{}
	_ = x[StatusNormal-0]
	_ = x[StatusPullDown-1]
	_ = x[StatusDrawRefresh-2]
	_ = x[StatusRefreshing-3]
	_ = x[StatusStopped-4]
	_ = x[StatusCount-5]
}

var statusNames = [StatusCount]string{
	StatusNormal:      "Normal",
	StatusPullDown:    "PullDown",
	StatusDrawRefresh: "DrawRefresh",
	StatusRefreshing:  "Refreshing",
	StatusStopped:     "Stopped",
}

// String returns the string representation of Status
func (s Status) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return statusNames[s]
}

// IsValid reports whether s is one of the defined statuses
func (s Status) IsValid() bool {
	return s >= StatusNormal && s < StatusCount
}

// ShowsIndicator returns true if the label and spinner are drawn in this status
func (s Status) ShowsIndicator() bool {
	return s == StatusDrawRefresh || s == StatusRefreshing
}

// IsDragging returns true if the boundary follows the drag value
func (s Status) IsDragging() bool {
	return s == StatusPullDown || s == StatusDrawRefresh
}
