package schedule

import (
	"errors"
	"testing"
	"time"
)

var (
	testMonday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	testSunday = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	testToday  = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
)

func TestValidateBookingSuccess(t *testing.T) {
	res, err := ValidateBooking(BookingInput{
		Days:        fullWeek(),
		Date:        testMonday,
		StartTime:   "10:00",
		DurationMin: 30,
		Today:       testToday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.EndTime != "10:30" {
		t.Fatalf("end time = %q, want 10:30", res.EndTime)
	}
}

func TestValidateBookingPastDate(t *testing.T) {
	// a hora do dia de nenhum dos lados importa, só a data
	today := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	requested := time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)

	_, err := ValidateBooking(BookingInput{
		Days:        fullWeek(),
		Date:        requested,
		StartTime:   "10:00",
		DurationMin: 30,
		Today:       today,
	})

	rej, ok := IsRejection(err)
	if !ok || rej.Reason != ReasonPastDate {
		t.Fatalf("expected past_date rejection, got %v", err)
	}
}

func TestValidateBookingNotWorkingDay(t *testing.T) {
	_, err := ValidateBooking(BookingInput{
		Days:        fullWeek(),
		Date:        testSunday,
		StartTime:   "10:00",
		DurationMin: 30,
		Today:       testToday,
	})

	rej, ok := IsRejection(err)
	if !ok || rej.Reason != ReasonNotWorkingDay {
		t.Fatalf("expected not_working_day rejection, got %v", err)
	}
}

func TestValidateBookingOutsideHours(t *testing.T) {
	for _, start := range []string{"08:30", "17:45", "18:00"} {
		_, err := ValidateBooking(BookingInput{
			Days:        fullWeek(),
			Date:        testMonday,
			StartTime:   start,
			DurationMin: 30,
			Today:       testToday,
		})
		rej, ok := IsRejection(err)
		if !ok || rej.Reason != ReasonOutsideHours {
			t.Fatalf("start %s: expected outside_working_hours, got %v", start, err)
		}
	}

	// limite do dia: 17:30 + 30min fecha exatamente às 18:00
	if _, err := ValidateBooking(BookingInput{
		Days:        fullWeek(),
		Date:        testMonday,
		StartTime:   "17:30",
		DurationMin: 30,
		Today:       testToday,
	}); err != nil {
		t.Fatalf("17:30 should be bookable: %v", err)
	}
}

func TestValidateBookingConflict(t *testing.T) {
	existing := []BookedInterval{
		{ID: 7, StartTime: "10:00", EndTime: "10:30", Status: "confirmed"},
	}

	_, err := ValidateBooking(BookingInput{
		Days:        fullWeek(),
		Date:        testMonday,
		StartTime:   "10:00",
		DurationMin: 30,
		Existing:    existing,
		Today:       testToday,
	})

	rej, ok := IsRejection(err)
	if !ok || rej.Reason != ReasonSlotTaken {
		t.Fatalf("expected slot_taken rejection, got %v", err)
	}
	if rej.ConflictID != 7 {
		t.Fatalf("conflict id = %d, want 7", rej.ConflictID)
	}

	// encostado não conflita
	if _, err := ValidateBooking(BookingInput{
		Days:        fullWeek(),
		Date:        testMonday,
		StartTime:   "10:30",
		DurationMin: 30,
		Existing:    existing,
		Today:       testToday,
	}); err != nil {
		t.Fatalf("back-to-back booking rejected: %v", err)
	}
}

func TestValidateBookingIgnoresReleasedStatuses(t *testing.T) {
	existing := []BookedInterval{
		{ID: 1, StartTime: "10:00", EndTime: "10:30", Status: "cancelled"},
		// completed com data futura: estado impossível na prática,
		// mas não pode travar o slot nem quebrar o motor
		{ID: 2, StartTime: "10:00", EndTime: "10:30", Status: "completed"},
	}

	if _, err := ValidateBooking(BookingInput{
		Days:        fullWeek(),
		Date:        testMonday,
		StartTime:   "10:00",
		DurationMin: 30,
		Existing:    existing,
		Today:       testToday,
	}); err != nil {
		t.Fatalf("released statuses must not block: %v", err)
	}
}

func TestValidateBookingCrossesMidnight(t *testing.T) {
	days := []WorkingDay{{Day: Monday, Active: true, StartTime: "09:00", EndTime: "23:59"}}

	_, err := ValidateBooking(BookingInput{
		Days:        days,
		Date:        testMonday,
		StartTime:   "23:50",
		DurationMin: 30,
		Today:       testToday,
	})
	if !errors.Is(err, ErrCrossesMidnight) {
		t.Fatalf("expected ErrCrossesMidnight, got %v", err)
	}
}

func TestValidateBookingMalformedInput(t *testing.T) {
	if _, err := ValidateBooking(BookingInput{
		Days:        fullWeek(),
		Date:        testMonday,
		StartTime:   "10h00",
		DurationMin: 30,
		Today:       testToday,
	}); err == nil {
		t.Fatal("malformed start time should error")
	}

	if _, err := ValidateBooking(BookingInput{
		Days:        fullWeek(),
		Date:        testMonday,
		StartTime:   "10:00",
		DurationMin: -30,
		Today:       testToday,
	}); !errors.Is(err, ErrInvalidDuration) {
		t.Fatal("negative duration should error")
	}
}

// Propriedade: validações sequenciais bem-sucedidas, cada uma
// comprometendo o resultado antes da próxima, nunca produzem dois
// intervalos sobrepostos para o mesmo barbeiro/data.
func TestSequentialBookingsNeverOverlap(t *testing.T) {
	var committed []BookedInterval
	attempts := []struct {
		start string
		dur   int
	}{
		{"09:00", 30},
		{"09:15", 30}, // conflita com 09:00-09:30
		{"09:30", 45},
		{"10:00", 30}, // conflita com 09:30-10:15
		{"10:15", 60},
		{"17:30", 30},
	}

	for _, a := range attempts {
		res, err := ValidateBooking(BookingInput{
			Days:        fullWeek(),
			Date:        testMonday,
			StartTime:   a.start,
			DurationMin: a.dur,
			Existing:    committed,
			Today:       testToday,
		})
		if err != nil {
			continue
		}
		committed = append(committed, BookedInterval{
			ID:        uint(len(committed) + 1),
			StartTime: a.start,
			EndTime:   res.EndTime,
			Status:    "pending",
		})
	}

	if len(committed) != 4 {
		t.Fatalf("expected 4 committed bookings, got %d", len(committed))
	}

	for i := 0; i < len(committed); i++ {
		for j := i + 1; j < len(committed); j++ {
			aStart, aEnd, _ := committed[i].minutes()
			bStart, bEnd, _ := committed[j].minutes()
			if Overlaps(aStart, aEnd, bStart, bEnd) {
				t.Fatalf("committed bookings %d and %d overlap", i, j)
			}
		}
	}
}
