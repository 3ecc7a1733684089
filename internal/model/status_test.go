package model

import "testing"

func TestStatus_ShowsIndicator(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusNormal, false},
		{StatusPullDown, false},
		{StatusDrawRefresh, true},
		{StatusRefreshing, true},
		{StatusStopped, false},
	}

	for _, test := range tests {
		result := test.status.ShowsIndicator()
		if result != test.expected {
			t.Errorf("Status(%s).ShowsIndicator() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_IsDragging(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusNormal, false},
		{StatusPullDown, true},
		{StatusDrawRefresh, true},
		{StatusRefreshing, false},
		{StatusStopped, false},
	}

	for _, test := range tests {
		result := test.status.IsDragging()
		if result != test.expected {
			t.Errorf("Status(%s).IsDragging() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusNormal, "Normal"},
		{StatusPullDown, "PullDown"},
		{StatusDrawRefresh, "DrawRefresh"},
		{StatusRefreshing, "Refreshing"},
		{StatusStopped, "Stopped"},
		{StatusCount, "Unknown"},
		{Status(-1), "Unknown"},
	}

	for _, test := range tests {
		if result := test.status.String(); result != test.expected {
			t.Errorf("Status(%d).String() = %s, expected %s", int(test.status), result, test.expected)
		}
	}
}

func TestStatus_EveryStatusNamed(t *testing.T) {
	for s := StatusNormal; s < StatusCount; s++ {
		if statusNames[s] == "" {
			t.Errorf("status %d has no name", int(s))
		}
		if !s.IsValid() {
			t.Errorf("status %s should be valid", s)
		}
	}
}
