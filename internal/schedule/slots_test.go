package schedule

import (
	"testing"
)

func TestAvailableSlotsEmptyDay(t *testing.T) {
	slots, err := AvailableSlots(SlotQuery{
		Days:        fullWeek(),
		Date:        testMonday,
		DurationMin: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 09:00..17:30 de 30 em 30 = 18 candidatos
	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d (%v)", len(slots), slots)
	}
	if slots[0] != "09:00" {
		t.Fatalf("first slot = %q, want 09:00", slots[0])
	}
	if slots[len(slots)-1] != "17:30" {
		t.Fatalf("last slot = %q, want 17:30", slots[len(slots)-1])
	}

	// ordem crescente
	for i := 1; i < len(slots); i++ {
		a, _ := ParseClock(slots[i-1])
		b, _ := ParseClock(slots[i])
		if b <= a {
			t.Fatalf("slots out of order: %q before %q", slots[i-1], slots[i])
		}
	}
}

func TestAvailableSlotsSundayOff(t *testing.T) {
	slots, err := AvailableSlots(SlotQuery{
		Days:        fullWeek(),
		Date:        testSunday,
		DurationMin: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots on sunday, got %v", slots)
	}
}

func TestAvailableSlotsSkipsConflicts(t *testing.T) {
	existing := []BookedInterval{
		{ID: 1, StartTime: "10:00", EndTime: "10:30", Status: "confirmed"},
	}

	slots, err := AvailableSlots(SlotQuery{
		Days:        fullWeek(),
		Date:        testMonday,
		DurationMin: 30,
		Existing:    existing,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contains(slots, "10:00") {
		t.Fatal("10:00 must be excluded")
	}
	if !contains(slots, "09:30") || !contains(slots, "10:30") {
		t.Fatalf("09:30 and 10:30 must stay available, got %v", slots)
	}
}

func TestAvailableSlotsCancelledReleasesSlot(t *testing.T) {
	existing := []BookedInterval{
		{ID: 1, StartTime: "10:00", EndTime: "10:30", Status: "cancelled"},
	}

	slots, err := AvailableSlots(SlotQuery{
		Days:        fullWeek(),
		Date:        testMonday,
		DurationMin: 30,
		Existing:    existing,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(slots, "10:00") {
		t.Fatal("cancelled appointment must release 10:00")
	}
}

func TestAvailableSlotsSpanMustFit(t *testing.T) {
	// granularidade de 15 deixa 17:45 na grade, mas o span
	// 17:45-18:15 cruza o fim do expediente
	slots, err := AvailableSlots(SlotQuery{
		Days:           fullWeek(),
		Date:           testMonday,
		DurationMin:    30,
		GranularityMin: 15,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !contains(slots, "17:30") {
		t.Fatal("17:30 must be included")
	}
	if contains(slots, "17:45") || contains(slots, "18:00") {
		t.Fatalf("slots crossing 18:00 must be excluded, got %v", slots)
	}
}

func TestAvailableSlotsInvalidDuration(t *testing.T) {
	if _, err := AvailableSlots(SlotQuery{
		Days:        fullWeek(),
		Date:        testMonday,
		DurationMin: 0,
	}); err == nil {
		t.Fatal("zero duration should error")
	}
}

// Propriedade de acordo: todo slot enumerado passa em ValidateBooking
// com as mesmas entradas, e todo candidato da grade aceito por
// ValidateBooking aparece na enumeração.
func TestSlotsAgreeWithValidation(t *testing.T) {
	existing := []BookedInterval{
		{ID: 1, StartTime: "09:45", EndTime: "10:45", Status: "pending"},
		{ID: 2, StartTime: "14:00", EndTime: "15:30", Status: "confirmed"},
		{ID: 3, StartTime: "11:00", EndTime: "12:00", Status: "cancelled"},
	}
	const dur = 45
	const step = 30

	slots, err := AvailableSlots(SlotQuery{
		Days:           fullWeek(),
		Date:           testMonday,
		DurationMin:    dur,
		Existing:       existing,
		GranularityMin: step,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enumerated := make(map[string]bool, len(slots))
	for _, s := range slots {
		enumerated[s] = true
		if _, err := ValidateBooking(BookingInput{
			Days:        fullWeek(),
			Date:        testMonday,
			StartTime:   s,
			DurationMin: dur,
			Existing:    existing,
			Today:       testToday,
		}); err != nil {
			t.Fatalf("enumerated slot %q fails validation: %v", s, err)
		}
	}

	win, _, _ := ResolveWorkingWindow(fullWeek(), testMonday)
	for cur := win.Start; cur+dur <= win.End; cur += step {
		start := FormatClock(cur)
		_, err := ValidateBooking(BookingInput{
			Days:        fullWeek(),
			Date:        testMonday,
			StartTime:   start,
			DurationMin: dur,
			Existing:    existing,
			Today:       testToday,
		})
		if err == nil && !enumerated[start] {
			t.Fatalf("slot %q accepted by validation but not enumerated", start)
		}
		if err != nil && enumerated[start] {
			t.Fatalf("slot %q enumerated but rejected by validation: %v", start, err)
		}
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
