package date

import (
	"testing"
)

func TestParseClock(t *testing.T) {
	var clockTests = []struct {
		in      string
		out     Clock
		wantErr bool
	}{
		{"09:00", Clock{Hour: 9, Minute: 0}, false},
		{"17:30", Clock{Hour: 17, Minute: 30}, false},
		{"00:00", Clock{Hour: 0, Minute: 0}, false},
		{"23:59", Clock{Hour: 23, Minute: 59}, false},
		{"24:00", Clock{}, true},
		{"12:60", Clock{}, true},
		{"9", Clock{}, true},
		{"nine:thirty", Clock{}, true},
	}

	for _, tt := range clockTests {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: got err=%v, wantErr=%v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.out {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.out)
		}
	}
}

func TestClock_On(t *testing.T) {
	day := timeDate(2021, 3, 1, 15, 42, 7)

	got := NewClock(9, 30).On(day)
	want := timeDate(2021, 3, 1, 9, 30, 0)

	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}

	if got.Location() != day.Location() {
		t.Errorf("got location %v, want %v", got.Location(), day.Location())
	}
}

func TestClock_Before(t *testing.T) {
	if !NewClock(9, 0).Before(NewClock(17, 0)) {
		t.Error("09:00 should be before 17:00")
	}

	if NewClock(17, 0).Before(NewClock(9, 0)) {
		t.Error("17:00 should not be before 09:00")
	}

	if NewClock(9, 0).Before(NewClock(9, 0)) {
		t.Error("a clock should not be before itself")
	}
}
