package schedule

import "time"

// DefaultGranularityMin é o passo padrão entre candidatos a slot.
const DefaultGranularityMin = 30

type SlotQuery struct {
	Days           []WorkingDay
	Date           time.Time
	DurationMin    int
	Existing       []BookedInterval
	GranularityMin int // 0 → DefaultGranularityMin
}

// AvailableSlots enumera os horários de início livres da data, em
// ordem crescente, do início do expediente até fim - duração
// (inclusive), pulando de GranularityMin em GranularityMin.
//
// Dia sem expediente devolve lista vazia, não erro. Um candidato
// entra somente se o span inteiro cabe na janela e não sobrepõe
// nenhum agendamento pending/confirmed, o mesmo critério de
// ValidateBooking, pelo mesmo predicado Overlaps.
func AvailableSlots(q SlotQuery) ([]string, error) {
	if q.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	step := q.GranularityMin
	if step <= 0 {
		step = DefaultGranularityMin
	}

	win, working, err := ResolveWorkingWindow(q.Days, q.Date)
	if err != nil {
		return nil, err
	}
	if !working {
		return []string{}, nil
	}

	// intervalos que seguram horário, parseados uma vez
	type span struct{ start, end int }
	busy := make([]span, 0, len(q.Existing))
	for _, b := range q.Existing {
		if !b.blocks() {
			continue
		}
		start, end, ok := b.minutes()
		if !ok {
			continue
		}
		busy = append(busy, span{start, end})
	}

	slots := []string{}
	for cur := win.Start; cur+q.DurationMin <= win.End; cur += step {
		free := true
		for _, s := range busy {
			if Overlaps(cur, cur+q.DurationMin, s.start, s.end) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, FormatClock(cur))
		}
	}

	return slots, nil
}
