package validators

import "testing"

func TestIsDayName(t *testing.T) {
	for _, d := range []string{"mon", "Tue", "WEDNESDAY", "Sun"} {
		if !IsDayName(d) {
			t.Fatalf("expected %q to be a day name", d)
		}
	}
	for _, d := range []string{"", "mo", "funday", "1", " sun ", "mon\n"} {
		if IsDayName(d) {
			t.Fatalf("expected %q to be rejected", d)
		}
	}
}

func TestIsClock(t *testing.T) {
	for _, s := range []string{"00:00", "09:30", "23:59"} {
		if !IsClock(s) {
			t.Fatalf("expected %q to be a clock time", s)
		}
	}
	for _, s := range []string{"9:30", "24:00", "12:60", "noon", "09:30:00"} {
		if IsClock(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}
