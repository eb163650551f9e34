package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{"9:00", 0, true},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12-30", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ParseClock(%q): expected error, got %d", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClock(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	// minutesToTime(timeToMinutes(t)) == t para todo HH:MM válido
	for m := 0; m < MinutesPerDay; m++ {
		s := FormatClock(m)
		got, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(FormatClock(%d)) failed: %v", m, err)
		}
		if got != m {
			t.Fatalf("round trip of %d via %q gave %d", m, s, got)
		}
	}
}

func TestFormatClockZeroPads(t *testing.T) {
	if got := FormatClock(65); got != "01:05" {
		t.Fatalf("FormatClock(65) = %q, want 01:05", got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Fatalf("FormatClock(0) = %q, want 00:00", got)
	}
}

func TestComputeEndTime(t *testing.T) {
	end, err := ComputeEndTime("09:00", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != "09:30" {
		t.Fatalf("end = %q, want 09:30", end)
	}

	if _, err := ComputeEndTime("23:50", 30); !errors.Is(err, ErrCrossesMidnight) {
		t.Fatalf("23:50 + 30min: expected ErrCrossesMidnight, got %v", err)
	}

	if _, err := ComputeEndTime("09:00", 0); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("zero duration: expected ErrInvalidDuration, got %v", err)
	}
	if _, err := ComputeEndTime("09:00", -15); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("negative duration: expected ErrInvalidDuration, got %v", err)
	}
	if _, err := ComputeEndTime("9h00", 30); err == nil {
		t.Fatal("malformed start: expected error")
	}

	// fechar exatamente na meia-noite ainda é mesmo dia
	end, err = ComputeEndTime("23:30", 30)
	if err != nil {
		t.Fatalf("23:30 + 30min: unexpected error: %v", err)
	}
	if end != "24:00" {
		t.Fatalf("23:30 + 30min = %q, want 24:00", end)
	}
}

func TestNormalizeDate(t *testing.T) {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	late := time.Date(2026, 3, 10, 23, 45, 0, 0, loc)

	got := NormalizeDate(late)
	want := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("NormalizeDate = %s, want %s", got, want)
	}
}

func TestSameCalendarDayOrLater(t *testing.T) {
	loc, _ := time.LoadLocation("America/Sao_Paulo")

	today := time.Date(2026, 3, 10, 23, 50, 0, 0, loc)
	sameDayEarlier := time.Date(2026, 3, 10, 0, 5, 0, 0, loc)
	yesterday := time.Date(2026, 3, 9, 23, 59, 0, 0, loc)

	if !SameCalendarDayOrLater(sameDayEarlier, today) {
		t.Fatal("same calendar day must not count as past")
	}
	if SameCalendarDayOrLater(yesterday, today) {
		t.Fatal("previous day must count as past")
	}
}
