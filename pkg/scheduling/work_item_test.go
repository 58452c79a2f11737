package scheduling

import "testing"

func TestParseStatus(t *testing.T) {
	var statusTests = []struct {
		in      string
		out     Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"", StatusPending, false},
		{"scheduled", StatusScheduled, false},
		{"in_progress", StatusInProgress, false},
		{"inProgress", StatusInProgress, false},
		{"completed", StatusCompleted, false},
		{"done", StatusCompleted, false},
		{"cancelled", StatusCancelled, false},
		{"canceled", StatusCancelled, false},
		{"paused", "", true},
	}

	for _, tt := range statusTests {
		got, err := ParseStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: got err=%v, wantErr=%v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.out {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled} {
		if !status.IsValid() {
			t.Errorf("%q should be valid", status)
		}
	}

	if Status("paused").IsValid() {
		t.Error("an unknown status should not be valid")
	}
}
