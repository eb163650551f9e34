package schedule

import (
	"fmt"
	"time"
)

// ===============================
// Working window
// ===============================

// WorkingDay é uma entrada do template semanal do barbeiro.
type WorkingDay struct {
	Day       Weekday
	Active    bool
	StartTime string // HH:MM, obrigatório quando Active
	EndTime   string // HH:MM, obrigatório quando Active
}

// Window é o expediente de um dia, em minutos desde a meia-noite,
// semântica meio-aberta [Start, End).
type Window struct {
	Start int
	End   int
}

// ResolveWorkingWindow mapeia a data para o dia da semana e devolve a
// janela de expediente correspondente. Fonte única da verdade para
// "o barbeiro trabalha nesse dia": entrada ausente ou desativada
// resulta em (_, false, nil), nunca em erro.
func ResolveWorkingWindow(days []WorkingDay, date time.Time) (Window, bool, error) {
	target := WeekdayOf(date)

	for _, d := range days {
		if d.Day != target {
			continue
		}
		if !d.Active {
			return Window{}, false, nil
		}

		start, err := ParseClock(d.StartTime)
		if err != nil {
			return Window{}, false, err
		}
		end, err := ParseClock(d.EndTime)
		if err != nil {
			return Window{}, false, err
		}
		if start >= end {
			return Window{}, false, fmt.Errorf("working day %s: start %s not before end %s",
				d.Day, d.StartTime, d.EndTime)
		}

		return Window{Start: start, End: end}, true, nil
	}

	return Window{}, false, nil
}

// ValidateWorkingDays valida o template semanal inteiro antes de
// persistir. Qualquer entrada malformada rejeita o lote todo.
func ValidateWorkingDays(days []WorkingDay) error {
	seen := make(map[Weekday]bool, len(days))

	for _, d := range days {
		if !IsValidWeekday(d.Day) {
			return fmt.Errorf("unknown weekday %q", d.Day)
		}
		if seen[d.Day] {
			return fmt.Errorf("weekday %s appears more than once", d.Day)
		}
		seen[d.Day] = true

		if !d.Active {
			continue
		}

		start, err := ParseClock(d.StartTime)
		if err != nil {
			return fmt.Errorf("weekday %s: %w", d.Day, err)
		}
		end, err := ParseClock(d.EndTime)
		if err != nil {
			return fmt.Errorf("weekday %s: %w", d.Day, err)
		}
		if start >= end {
			return fmt.Errorf("weekday %s: start %s must be before end %s",
				d.Day, d.StartTime, d.EndTime)
		}
	}

	return nil
}
