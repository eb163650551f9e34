package schedule

import (
	"fmt"
	"time"
)

// ===============================
// Booked intervals
// ===============================

// BookedInterval é um agendamento já existente do barbeiro na data,
// visto pelo motor só como intervalo + status.
type BookedInterval struct {
	ID        uint
	StartTime string
	EndTime   string
	Status    string
}

// Só pending e confirmed seguram horário. Cancelados liberam o slot;
// completed é histórico (mesmo com data futura, não bloqueia).
func (b BookedInterval) blocks() bool {
	return b.Status == "pending" || b.Status == "confirmed"
}

// intervalo em minutos; malformados vindos do store são ignorados
// (o motor nunca quebra por dado sujo de linha antiga).
func (b BookedInterval) minutes() (int, int, bool) {
	start, err := ParseClock(b.StartTime)
	if err != nil {
		return 0, 0, false
	}
	end, err := ParseClock(b.EndTime)
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// ===============================
// Rejection
// ===============================

type RejectionReason string

const (
	ReasonPastDate      RejectionReason = "past_date"
	ReasonNotWorkingDay RejectionReason = "not_working_day"
	ReasonOutsideHours  RejectionReason = "outside_working_hours"
	ReasonSlotTaken     RejectionReason = "slot_taken"
)

// Rejection é uma recusa de negócio, não uma falha do sistema.
// Em slot_taken, ConflictID identifica o agendamento conflitante.
type Rejection struct {
	Reason     RejectionReason
	ConflictID uint
}

func (r *Rejection) Error() string {
	if r.Reason == ReasonSlotTaken && r.ConflictID != 0 {
		return fmt.Sprintf("%s (conflicts with appointment %d)", r.Reason, r.ConflictID)
	}
	return string(r.Reason)
}

// IsRejection extrai a Rejection de um erro do motor, se houver.
func IsRejection(err error) (*Rejection, bool) {
	rej, ok := err.(*Rejection)
	return rej, ok
}

// ===============================
// Booking validation
// ===============================

type BookingInput struct {
	Days        []WorkingDay
	Date        time.Time
	StartTime   string // HH:MM
	DurationMin int
	Existing    []BookedInterval

	// "agora" é injetado, nunca lido do relógio ambiente.
	Today time.Time
}

type BookingResult struct {
	EndTime string
}

// ValidateBooking aplica, em ordem e com curto-circuito:
//
//  1. data não está no passado (comparação de datas normalizadas);
//  2. o barbeiro trabalha nesse dia;
//  3. início e fim cabem dentro do expediente;
//  4. nenhum agendamento pending/confirmed sobrepõe o intervalo.
//
// Recusas de negócio voltam como *Rejection; entrada malformada
// (hora inválida, duração não positiva, template corrompido) volta
// como erro comum.
func ValidateBooking(in BookingInput) (BookingResult, error) {
	endTime, err := ComputeEndTime(in.StartTime, in.DurationMin)
	if err != nil {
		return BookingResult{}, err
	}

	startMin, _ := ParseClock(in.StartTime)
	endMin := startMin + in.DurationMin

	// 1. passado
	if !SameCalendarDayOrLater(in.Date, in.Today) {
		return BookingResult{}, &Rejection{Reason: ReasonPastDate}
	}

	// 2. dia de trabalho
	win, working, err := ResolveWorkingWindow(in.Days, in.Date)
	if err != nil {
		return BookingResult{}, err
	}
	if !working {
		return BookingResult{}, &Rejection{Reason: ReasonNotWorkingDay}
	}

	// 3. dentro do expediente
	if startMin < win.Start || endMin > win.End {
		return BookingResult{}, &Rejection{Reason: ReasonOutsideHours}
	}

	// 4. conflito
	for _, b := range in.Existing {
		if !b.blocks() {
			continue
		}
		bStart, bEnd, ok := b.minutes()
		if !ok {
			continue
		}
		if Overlaps(startMin, endMin, bStart, bEnd) {
			return BookingResult{}, &Rejection{Reason: ReasonSlotTaken, ConflictID: b.ID}
		}
	}

	return BookingResult{EndTime: endTime}, nil
}
